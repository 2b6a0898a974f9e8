package staticfmt_test

import (
	"iter"
	"testing"
	"unicode/utf8"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/aretw0/staticfmt/pkg/ascii"
	"github.com/aretw0/staticfmt/pkg/ascii/extended"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Word is the nested form of "Word".
type Word = ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]

func TestNil(t *testing.T) {
	var n staticfmt.Nil
	assert.Equal(t, "", n.String())
	assert.Equal(t, "Nil", n.GoString())
}

func TestChar_Word(t *testing.T) {
	assert.Equal(t, "Word", Word{}.String())
	assert.Equal(t, "Word", staticfmt.Text[Word]())
	assert.Equal(t, "Char('W', Char('o', Char('r', Char('d', Nil))))", Word{}.GoString())
}

func TestChar_Identity(t *testing.T) {
	tables := []struct {
		alphabet *alphabet.Alphabet
		all      iter.Seq2[string, staticfmt.Word]
	}{
		{alphabet.ASCII(), ascii.All()},
		{alphabet.Extended(), extended.All()},
	}

	for _, tt := range tables {
		t.Run(tt.alphabet.Name, func(t *testing.T) {
			count := 0
			for name, w := range tt.all {
				entry, ok := tt.alphabet.Lookup(name)
				require.True(t, ok, "binding %s is not in the table", name)
				assert.Equal(t, string(entry.Code), w.String(), "binding %s", name)
				count++
			}
			assert.Equal(t, tt.alphabet.Len(), count)
		})
	}
}

func TestChar_ControlCharacterIsLiteral(t *testing.T) {
	word := ascii.W[ascii.Nl[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]]{}
	assert.Equal(t, "W\nord", word.String())
	assert.Equal(t, "\x00", ascii.Null[staticfmt.Nil]{}.String())
	assert.Equal(t, "\x7f", ascii.Delete[staticfmt.Nil]{}.String())

	// The structural form escapes it.
	assert.Equal(t, `Char('\n', Nil)`, ascii.Nl[staticfmt.Nil]{}.GoString())
}

func TestChar_Aliases(t *testing.T) {
	assert.Equal(t, ascii.Nl[staticfmt.Nil]{}, ascii.LineFeed[staticfmt.Nil]{})
	assert.Equal(t, ascii.Nl[staticfmt.Nil]{}, ascii.NewLine[staticfmt.Nil]{})
	assert.Equal(t, "\t", ascii.CharacterTabulation[staticfmt.Nil]{}.String())
}

func TestChar_MultiByte(t *testing.T) {
	word := extended.Ç[extended.LowerÀ[staticfmt.Nil]]{}
	s := word.String()
	assert.Equal(t, "Çà", s)
	assert.True(t, utf8.ValidString(s))

	box := extended.TopLeftDoubleLine[extended.DoubleHorizontalLine[extended.TopRightDoubleLine[staticfmt.Nil]]]{}
	assert.Equal(t, "╔═╗", box.String())
}

// Words of the same composed type are interchangeable unit values.
func TestChar_UnitValue(t *testing.T) {
	assert.Equal(t, Word{}, staticfmt.Of[Word]())
	var zero Word
	assert.Equal(t, Word{}, zero)
}
