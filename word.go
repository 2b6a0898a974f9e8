package staticfmt

import (
	"fmt"
	"io"
)

// Rune is implemented by character markers.
// A marker is a zero-size type whose only job is to name a code point.
type Rune interface {
	Rune() rune
}

// Count is implemented by repetition markers.
type Count interface {
	Count() int
}

// Dual exposes the two text forms of a value.
// String is the primary form (what %v prints), GoString the secondary,
// structural form (what %#v prints).
type Dual interface {
	fmt.Stringer
	fmt.GoStringer
}

// Word is anything that can be composed and rendered.
// WriteTo streams the primary form into a caller-owned sink.
type Word interface {
	Dual
	io.WriterTo
}

// Of returns the unit value of a composed type.
func Of[W Word]() W {
	var w W
	return w
}

// Text renders a composed type without naming a value.
func Text[W Word]() string {
	var w W
	return w.String()
}
