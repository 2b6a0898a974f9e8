package staticfmt

import (
	"io"
	"strconv"
)

// Repeat renders W back to back as many times as N counts.
// The count is part of the type: Repeat[W, N2] and Repeat[W, N3] are different
// types, not one value reconfigured. A count of zero or less renders nothing.
type Repeat[W Word, N Count] struct{}

func (Repeat[W, N]) WriteTo(w io.Writer) (int64, error) {
	var n N
	var total int64
	for range max(n.Count(), 0) {
		var inner W
		m, err := inner.WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r Repeat[W, N]) String() string { return render(r) }

func (Repeat[W, N]) GoString() string {
	var inner W
	var n N
	return "Repeat(" + inner.GoString() + ", " + strconv.Itoa(n.Count()) + ")"
}
