package staticfmt_test

import (
	"strings"
	"testing"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/pkg/ascii"
	"github.com/stretchr/testify/assert"
)

type o = ascii.LowerO[staticfmt.Nil]

// negative is a count no builtin marker produces.
type negative struct{}

func (negative) Count() int { return -2 }

func TestRepeat_Boundaries(t *testing.T) {
	assert.Equal(t, "", staticfmt.Repeat[o, staticfmt.N0]{}.String())
	assert.Equal(t, "", staticfmt.Repeat[Word, staticfmt.N0]{}.String())
	assert.Equal(t, "o", staticfmt.Repeat[o, staticfmt.N1]{}.String())
	assert.Equal(t, o{}.String(), staticfmt.Repeat[o, staticfmt.N1]{}.String())
	assert.Equal(t, "ooo", staticfmt.Repeat[o, staticfmt.N3]{}.String())
	assert.Equal(t, "", staticfmt.Repeat[o, negative]{}.String())
}

func TestRepeat_Length(t *testing.T) {
	s := staticfmt.Repeat[Word, staticfmt.N16]{}.String()
	assert.Len(t, s, 16*len("Word"))
	assert.Equal(t, strings.Repeat("Word", 16), s)
}

func TestRepeat_Sequence(t *testing.T) {
	// W followed by three repetitions of "Wo".
	word := ascii.W[staticfmt.Repeat[ascii.W[ascii.LowerO[staticfmt.Nil]], staticfmt.N3]]{}
	assert.Equal(t, "WWoWoWo", word.String())
}

func TestRepeat_Nested(t *testing.T) {
	grid := staticfmt.Repeat[
		staticfmt.Chain[staticfmt.Repeat[ascii.NumberSign[staticfmt.Nil], staticfmt.N3], ascii.Nl[staticfmt.Nil]],
		staticfmt.N2,
	]{}
	assert.Equal(t, "###\n###\n", grid.String())
}

func TestCount_Arithmetic(t *testing.T) {
	tests := []struct {
		name  string
		count staticfmt.Count
		want  int
	}{
		{"N0", staticfmt.N0{}, 0},
		{"N16", staticfmt.N16{}, 16},
		{"Sum", staticfmt.Sum[staticfmt.N7, staticfmt.N9]{}, 16},
		{"Product", staticfmt.Product[staticfmt.N10, staticfmt.N10]{}, 100},
		{"Succ", staticfmt.Succ[staticfmt.N16]{}, 17},
		{"Nested", staticfmt.Succ[staticfmt.Product[staticfmt.N4, staticfmt.Sum[staticfmt.N2, staticfmt.N3]]]{}, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.count.Count())
		})
	}

	long := staticfmt.Repeat[ascii.Minus[staticfmt.Nil], staticfmt.Product[staticfmt.N8, staticfmt.N10]]{}
	assert.Equal(t, strings.Repeat("-", 80), long.String())
}

func TestRepeat_GoString(t *testing.T) {
	assert.Equal(t, "Repeat(Char('o', Nil), 3)", staticfmt.Repeat[o, staticfmt.N3]{}.GoString())
}
