package staticfmt

import "io"

// Nil marks the end of a word. It renders as the empty string.
type Nil struct{}

func (Nil) WriteTo(io.Writer) (int64, error) { return 0, nil }

func (Nil) String() string { return "" }

func (Nil) GoString() string { return "Nil" }
