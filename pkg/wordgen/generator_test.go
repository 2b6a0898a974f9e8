package wordgen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeExpr(t *testing.T) {
	g := New()

	tests := []struct {
		text string
		want string
	}{
		{"", "staticfmt.Nil"},
		{"W", "ascii.W[staticfmt.Nil]"},
		{"Word", "ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]"},
		{"W\nord", "ascii.W[ascii.Nl[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]]"},
		{"a1 ", "ascii.LowerA[ascii.Digit1[ascii.Space[staticfmt.Nil]]]"},
		{"Ça", "extended.Ç[ascii.LowerA[staticfmt.Nil]]"},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.text), func(t *testing.T) {
			got, err := g.TypeExpr(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeExpr_Errors(t *testing.T) {
	g := New()

	_, err := g.TypeExpr("price: 5€")
	assert.ErrorIs(t, err, ErrUnknownRune)
	assert.Contains(t, err.Error(), "offset 8")

	_, err = g.TypeExpr("ok\xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	// A literal replacement character is valid UTF-8, just not in any table.
	_, err = g.TypeExpr("�")
	assert.ErrorIs(t, err, ErrUnknownRune)

	asciiOnly := New(WithAlphabets(alphabet.ASCII()))
	_, err = asciiOnly.TypeExpr("Ç")
	assert.ErrorIs(t, err, ErrUnknownRune)
}

func TestTypeExpr_AlphabetPriority(t *testing.T) {
	custom, err := alphabet.Parse([]byte("package: letters\nimport: example.com/letters\nentries:\n  - {name: Doubleu, code: W}\n"))
	require.NoError(t, err)

	g := New(WithAlphabets(custom, alphabet.ASCII()), WithCoreImport("example.com/core"))
	got, err := g.TypeExpr("Wo")
	require.NoError(t, err)
	assert.Equal(t, "letters.Doubleu[ascii.LowerO[core.Nil]]", got)
}

func TestDecl(t *testing.T) {
	g := New()

	got, err := g.Decl("Word", "Word")
	require.NoError(t, err)
	assert.Equal(t, "type Word = ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]", got)

	for _, name := range []string{"not valid", "word", "_Word"} {
		_, err = g.Decl(name, "x")
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestFile(t *testing.T) {
	g := New()

	src, err := g.File("greetings", []Word{
		{Name: "Hello", Text: "Hello"},
		{Name: "Empty", Text: ""},
		{Name: "Multiline", Text: "a\nb"},
	})
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by staticfmt word; DO NOT EDIT.\n"))
	assert.Contains(t, out, "type Hello = ascii.H[ascii.LowerE[ascii.LowerL[ascii.LowerL[ascii.LowerO[staticfmt.Nil]]]]]")
	assert.Contains(t, out, "type Empty = staticfmt.Nil")
	assert.Contains(t, out, `// Multiline renders "a\nb".`)

	f, err := parser.ParseFile(token.NewFileSet(), "words_gen.go", src, parser.ImportsOnly)
	require.NoError(t, err)
	assert.Equal(t, "greetings", f.Name.Name)

	var imports []string
	for _, imp := range f.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, `"`))
	}
	assert.Equal(t, []string{CoreImport, "github.com/aretw0/staticfmt/pkg/ascii"}, imports)
}

func TestFile_ImportsExtendedOnlyWhenUsed(t *testing.T) {
	src, err := New().File("main", []Word{{Name: "Cafe", Text: "Café"}})
	require.NoError(t, err)
	assert.Contains(t, string(src), `"github.com/aretw0/staticfmt/pkg/ascii/extended"`)
	assert.Contains(t, string(src), "extended.LowerÉ[staticfmt.Nil]")
}

func TestFile_Errors(t *testing.T) {
	g := New()

	_, err := g.File("main", nil)
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = g.File("my-pkg", []Word{{Name: "A", Text: "a"}})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = g.File("main", []Word{{Name: "1st", Text: "a"}})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = g.File("main", []Word{{Name: "greeting", Text: "a"}})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = g.File("main", []Word{{Name: "Euro", Text: "€"}})
	assert.ErrorIs(t, err, ErrUnknownRune)
	assert.Contains(t, err.Error(), "word Euro")
}

// The committed registry packages must match what the generator produces from
// the tables.
func TestRegistry_UpToDate(t *testing.T) {
	tests := []struct {
		alphabet *alphabet.Alphabet
		file     string
	}{
		{alphabet.ASCII(), filepath.Join("..", "ascii", "ascii_gen.go")},
		{alphabet.Extended(), filepath.Join("..", "ascii", "extended", "extended_gen.go")},
	}
	for _, tt := range tests {
		t.Run(tt.alphabet.Name, func(t *testing.T) {
			want, err := os.ReadFile(tt.file)
			require.NoError(t, err)

			got, err := New().Registry(tt.alphabet)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "run go generate ./pkg/ascii/...")
		})
	}
}

func TestRegistry_CustomTable(t *testing.T) {
	a, err := alphabet.Parse([]byte("package: arrows\nimport: example.com/arrows\nentries:\n  - {name: Right, code: U+2192, aliases: [To]}\n"))
	require.NoError(t, err)

	src, err := New().Registry(a)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "package arrows")
	assert.Contains(t, out, "func (u2192) Rune() rune { return 0x2192 }")
	assert.Contains(t, out, "// Right is '→' (U+2192).\ntype Right[T staticfmt.Word] = staticfmt.Char[u2192, T]")
	assert.Contains(t, out, "// To is an alias of Right.\ntype To[T staticfmt.Word] = staticfmt.Char[u2192, T]")
	assert.Contains(t, out, `{"Right", Right[staticfmt.Nil]{}},`)

	_, err = parser.ParseFile(token.NewFileSet(), "arrows_gen.go", src, parser.AllErrors)
	require.NoError(t, err)
}

func TestRegistry_Doc(t *testing.T) {
	a, err := alphabet.Parse([]byte("package: arrows\nimport: example.com/arrows\nentries:\n  - {name: Right, code: U+2192, doc: points right}\n  - {name: Left, code: U+2190}\n"))
	require.NoError(t, err)

	src, err := New().Registry(a)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Right is '→' (U+2192).\n// points right\ntype Right[T staticfmt.Word]")
	assert.Contains(t, out, "// Left is '←' (U+2190).\ntype Left[T staticfmt.Word]")
}

func TestRegistry_ReservedName(t *testing.T) {
	tables := map[string]string{
		"name":  "package: p\nimport: example.com/p\nentries:\n  - {name: All, code: U+0041}\n",
		"alias": "package: p\nimport: example.com/p\nentries:\n  - {name: A, code: U+0041, aliases: [All]}\n",
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			a, err := alphabet.Parse([]byte(table))
			require.NoError(t, err)

			_, err = New().Registry(a)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}
