package staticfmt

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// Char is a statically typed character followed by the tail T.
// A word is a chain of Char nodes whose innermost tail is Nil.
type Char[C Rune, T Word] struct{}

// WriteTo writes the character as its literal code point, then the tail.
func (Char[C, T]) WriteTo(w io.Writer) (int64, error) {
	var c C
	var tail T
	var buf [utf8.UTFMax]byte
	n, err := w.Write(buf[:utf8.EncodeRune(buf[:], c.Rune())])
	if err != nil {
		return int64(n), err
	}
	m, err := tail.WriteTo(w)
	return int64(n) + m, err
}

func (c Char[C, T]) String() string { return render(c) }

// GoString describes the node structurally; the rune is quoted so control
// characters stay visible.
func (Char[C, T]) GoString() string {
	var c C
	var tail T
	return "Char(" + strconv.QuoteRune(c.Rune()) + ", " + tail.GoString() + ")"
}
