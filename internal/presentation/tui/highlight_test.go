package tui

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHighlight_AsciiProfileIsPlain(t *testing.T) {
	exprs := []string{
		"ascii.W[ascii.LowerO[staticfmt.Nil]]",
		"type Word = ascii.W[staticfmt.Nil]",
		"staticfmt.Nil",
	}
	for _, expr := range exprs {
		assert.Equal(t, expr, Highlight(expr, termenv.Ascii))
	}
}

func TestHighlight_ColorsIdentifiers(t *testing.T) {
	out := Highlight("ascii.W[staticfmt.Nil]", termenv.TrueColor)
	assert.NotEqual(t, "ascii.W[staticfmt.Nil]", out)
	assert.Contains(t, out, "W")
	assert.Contains(t, out, "Nil")
	assert.Contains(t, out, "\x1b[")
}
