package wordgen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/aretw0/staticfmt/internal/logging"
	"github.com/aretw0/staticfmt/pkg/alphabet"
)

// CoreImport is the import path of the package that defines Char and Nil.
const CoreImport = "github.com/aretw0/staticfmt"

var (
	// ErrUnknownRune is returned when no configured alphabet names a rune of the text.
	ErrUnknownRune = errors.New("unknown rune")
	// ErrInvalidUTF8 is returned for text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrInvalidName is returned for package names that are not Go identifiers,
	// declaration names that are not exported identifiers, and table names that
	// collide with a generated declaration.
	ErrInvalidName = errors.New("invalid identifier")
	// ErrNoWords is returned when a file would contain no declarations.
	ErrNoWords = errors.New("no words to generate")
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"marker": marker,
	"hex":    func(e alphabet.Entry) string { return fmt.Sprintf("0x%04X", e.Code) },
	"quote":  func(e alphabet.Entry) string { return strconv.QuoteRune(e.Code) },
}).ParseFS(templateFS, "templates/*.tmpl"))

// Word is a named literal to declare.
type Word struct {
	Name string `mapstructure:"name" json:"name"`
	Text string `mapstructure:"text" json:"text"`
}

// Generator turns literals into type expressions.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	alphabets  []*alphabet.Alphabet
	coreImport string
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabets sets the tables runes are resolved against, in priority order.
// The default is the builtin ASCII table followed by the extended table.
func WithAlphabets(alphabets ...*alphabet.Alphabet) Option {
	return func(g *Generator) {
		g.alphabets = alphabets
	}
}

// WithCoreImport overrides the import path of the core package (default: CoreImport).
func WithCoreImport(importPath string) Option {
	return func(g *Generator) {
		g.coreImport = importPath
	}
}

// WithLogger sets a structured logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		coreImport: CoreImport,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.alphabets == nil {
		g.alphabets = []*alphabet.Alphabet{alphabet.ASCII(), alphabet.Extended()}
	}
	return g
}

// TypeExpr returns the nested type expression that renders text.
// The empty text is the core package's Nil.
func (g *Generator) TypeExpr(text string) (string, error) {
	expr, _, err := g.expand(text)
	return expr, err
}

// Decl returns a type alias declaration for text.
func (g *Generator) Decl(name, text string) (string, error) {
	if !exported(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	expr, _, err := g.expand(text)
	if err != nil {
		return "", err
	}
	return "type " + name + " = " + expr, nil
}

type decl struct {
	Name string
	Text string
	Expr string
}

// File renders a gofmt-ed Go source file declaring every word in package pkg.
// Only the alphabets actually used are imported.
func (g *Generator) File(pkg string, words []Word) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidName, pkg)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	imports := []string{g.coreImport}
	decls := make([]decl, 0, len(words))
	for _, w := range words {
		if !exported(w.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, w.Name)
		}
		expr, used, err := g.expand(w.Text)
		if err != nil {
			return nil, fmt.Errorf("word %s: %w", w.Name, err)
		}
		for _, a := range used {
			if !slices.Contains(imports, a.Import) {
				imports = append(imports, a.Import)
			}
		}
		decls = append(decls, decl{Name: w.Name, Text: w.Text, Expr: expr})
	}
	slices.Sort(imports)

	src, err := execute("words.go.tmpl", map[string]any{
		"Package": pkg,
		"Imports": imports,
		"Decls":   decls,
	})
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Generated words file", "package", pkg, "words", len(decls), "imports", len(imports))
	return src, nil
}

// reserved names are declared by every registry package.
var reserved = []string{"All"}

// Registry renders the bindings package for a table.
// Tables binding a reserved name are rejected.
func (g *Generator) Registry(a *alphabet.Alphabet) ([]byte, error) {
	for _, name := range reserved {
		if _, ok := a.Lookup(name); ok {
			return nil, fmt.Errorf("%w: %q is declared by the registry package of %s", ErrInvalidName, name, a.Name)
		}
	}
	src, err := execute("registry.go.tmpl", map[string]any{
		"Package":    a.Package,
		"Core":       path.Base(g.coreImport),
		"CoreImport": g.coreImport,
		"Entries":    a.Entries(),
	})
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Generated registry", "alphabet", a.Name, "entries", a.Len())
	return src, nil
}

// expand builds the expression from the innermost tail outwards and reports the
// alphabets it referenced, in first-use order.
func (g *Generator) expand(text string) (string, []*alphabet.Alphabet, error) {
	var (
		names []string
		used  []*alphabet.Alphabet
	)
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[offset:]); size == 1 {
				return "", nil, fmt.Errorf("%w at offset %d", ErrInvalidUTF8, offset)
			}
		}
		a, e, ok := g.resolve(r)
		if !ok {
			return "", nil, fmt.Errorf("%w: %q (%U) at offset %d", ErrUnknownRune, r, r, offset)
		}
		if !slices.Contains(used, a) {
			used = append(used, a)
		}
		names = append(names, a.Package+"."+e.Name)
	}

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('[')
	}
	sb.WriteString(path.Base(g.coreImport))
	sb.WriteString(".Nil")
	sb.WriteString(strings.Repeat("]", len(names)))
	return sb.String(), used, nil
}

func (g *Generator) resolve(r rune) (*alphabet.Alphabet, alphabet.Entry, bool) {
	for _, a := range g.alphabets {
		if e, ok := a.ForRune(r); ok {
			return a, e, true
		}
	}
	return nil, alphabet.Entry{}, false
}

func exported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

func marker(e alphabet.Entry) string {
	return fmt.Sprintf("u%04X", e.Code)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", name, err)
	}
	return src, nil
}
