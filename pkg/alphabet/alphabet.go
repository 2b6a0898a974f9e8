package alphabet

import (
	"fmt"
	"go/token"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Entry binds a name to a single code point.
// Doc, when set, is a one-line description carried into the generated binding.
type Entry struct {
	Name    string   `mapstructure:"name" json:"name"`
	Code    rune     `mapstructure:"code" json:"code"`
	Aliases []string `mapstructure:"aliases" json:"aliases,omitempty"`
	Doc     string   `mapstructure:"doc" json:"doc,omitempty"`
}

// CodePoint formats the entry's rune as U+XXXX.
func (e Entry) CodePoint() string {
	return fmt.Sprintf("U+%04X", e.Code)
}

// Alphabet is a validated, immutable table of named characters.
type Alphabet struct {
	Name    string // Table name, e.g. "ascii"
	Package string // Go package the table is generated into
	Import  string // Import path of that package

	entries []Entry
	names   map[string]int
	runes   map[rune]int
}

type document struct {
	Name    string  `mapstructure:"name"`
	Package string  `mapstructure:"package"`
	Import  string  `mapstructure:"import"`
	Entries []Entry `mapstructure:"entries"`
}

// Load reads and parses a table.
func Load(r io.Reader) (*Alphabet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read alphabet: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML table and validates it.
func Parse(data []byte) (*Alphabet, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alphabet: %w", err)
	}

	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  codeHook,
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode alphabet: %w", err)
	}

	return build(doc)
}

func build(doc document) (*Alphabet, error) {
	if !token.IsIdentifier(doc.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, doc.Package)
	}
	if doc.Import == "" {
		return nil, fmt.Errorf("%w: missing import path for %q", ErrInvalidPackage, doc.Package)
	}

	a := &Alphabet{
		Name:    doc.Name,
		Package: doc.Package,
		Import:  doc.Import,
		entries: doc.Entries,
		names:   make(map[string]int, len(doc.Entries)),
		runes:   make(map[rune]int, len(doc.Entries)),
	}
	if a.Name == "" {
		a.Name = doc.Package
	}

	var errs []error
	for i, e := range doc.Entries {
		a.entries[i].Doc = strings.Join(strings.Fields(e.Doc), " ")

		if !utf8.ValidRune(e.Code) {
			errs = append(errs, &EntryError{Index: i, Name: e.Name, Err: fmt.Errorf("%w: %#x", ErrInvalidRune, e.Code)})
		} else if prev, ok := a.runes[e.Code]; ok {
			errs = append(errs, &EntryError{Index: i, Name: e.Name, Err: fmt.Errorf("%w: %s already bound to %s", ErrDuplicateRune, e.CodePoint(), doc.Entries[prev].Name)})
		} else {
			a.runes[e.Code] = i
		}

		for _, name := range append([]string{e.Name}, e.Aliases...) {
			if !token.IsIdentifier(name) || !token.IsExported(name) {
				errs = append(errs, &EntryError{Index: i, Name: name, Err: ErrInvalidName})
				continue
			}
			if _, ok := a.names[name]; ok {
				errs = append(errs, &EntryError{Index: i, Name: name, Err: ErrDuplicateName})
				continue
			}
			a.names[name] = i
		}
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return a, nil
}

// Lookup finds an entry by name or alias.
func (a *Alphabet) Lookup(name string) (Entry, bool) {
	i, ok := a.names[name]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// ForRune finds the entry bound to r.
func (a *Alphabet) ForRune(r rune) (Entry, bool) {
	i, ok := a.runes[r]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Entries returns a copy of the table in declaration order.
func (a *Alphabet) Entries() []Entry {
	return slices.Clone(a.entries)
}

// Len is the number of entries, aliases not counted.
func (a *Alphabet) Len() int {
	return len(a.entries)
}

var runeType = reflect.TypeOf(rune(0))

// codeHook accepts "U+XXXX" and one-character strings for rune fields.
func codeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != runeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRune, s)
		}
		return rune(v), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidRune, s)
}
