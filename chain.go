package staticfmt

import "io"

// Chain concatenates two words.
// Head and tail are rendered independently, so a Nil at the end of H does not
// stop T from being written.
type Chain[H, T Word] struct{}

func (Chain[H, T]) WriteTo(w io.Writer) (int64, error) {
	var head H
	var tail T
	n, err := head.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := tail.WriteTo(w)
	return n + m, err
}

func (c Chain[H, T]) String() string { return render(c) }

func (Chain[H, T]) GoString() string {
	var head H
	var tail T
	return "Chain(" + head.GoString() + ", " + tail.GoString() + ")"
}
