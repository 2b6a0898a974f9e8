package staticfmt

import (
	"io"
	"strings"
)

// Fprint renders words in order into w and reports the bytes written.
// It stops at the first write error.
func Fprint(w io.Writer, words ...Word) (int64, error) {
	var total int64
	for _, word := range words {
		n, err := word.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func render(w io.WriterTo) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_, _ = w.WriteTo(&sb)
	return sb.String()
}
