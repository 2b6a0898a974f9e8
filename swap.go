package staticfmt

import "io"

// DisplaySwap exchanges the two text forms of W: its String is W's GoString and
// its GoString is W's String. Applying it twice gives W's forms back.
//
// When W is a composed node, the primary form of the swap is W's structural
// description, verbatim. Nothing tries to hide that.
type DisplaySwap[W Word] struct{}

func (DisplaySwap[W]) WriteTo(w io.Writer) (int64, error) {
	var inner W
	n, err := io.WriteString(w, inner.GoString())
	return int64(n), err
}

func (DisplaySwap[W]) String() string {
	var inner W
	return inner.GoString()
}

func (DisplaySwap[W]) GoString() string {
	var inner W
	return inner.String()
}
