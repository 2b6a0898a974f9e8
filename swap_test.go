package staticfmt_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/pkg/ascii"
	"github.com/stretchr/testify/assert"
)

// quoted has a primary and a secondary form that are both plain text.
type quoted struct{}

func (quoted) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "quoted")
	return int64(n), err
}

func (quoted) String() string { return "quoted" }
func (quoted) GoString() string { return `"quoted"` }

func TestDisplaySwap_Exchanges(t *testing.T) {
	var s staticfmt.DisplaySwap[quoted]
	assert.Equal(t, `"quoted"`, s.String())
	assert.Equal(t, "quoted", s.GoString())
}

func TestDisplaySwap_Involution(t *testing.T) {
	var twice staticfmt.DisplaySwap[staticfmt.DisplaySwap[quoted]]
	assert.Equal(t, quoted{}.String(), twice.String())
	assert.Equal(t, quoted{}.GoString(), twice.GoString())

	var o2 staticfmt.DisplaySwap[staticfmt.DisplaySwap[o]]
	assert.Equal(t, "o", o2.String())
	assert.Equal(t, "Char('o', Nil)", o2.GoString())
}

// The swapped primary form of a composed node is its structural description.
func TestDisplaySwap_SurfacesStructure(t *testing.T) {
	word := ascii.W[staticfmt.Chain[staticfmt.DisplaySwap[o], ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]{}
	assert.Equal(t, "WChar('o', Nil)rd", word.String())

	assert.Equal(t, "Nil", staticfmt.DisplaySwap[staticfmt.Nil]{}.String())
	assert.Equal(t, "", staticfmt.DisplaySwap[staticfmt.Nil]{}.GoString())
}

func TestDisplaySwap_Formatting(t *testing.T) {
	var s staticfmt.DisplaySwap[o]
	assert.Equal(t, "Char('o', Nil)", fmt.Sprint(s))
	assert.Equal(t, "o", fmt.Sprintf("%#v", s))
	assert.Equal(t, "o", fmt.Sprintf("%v", o{}))
	assert.Equal(t, "Char('o', Nil)", fmt.Sprintf("%#v", o{}))
}
