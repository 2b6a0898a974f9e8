package staticfmt_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/pkg/ascii"
	"github.com/aretw0/staticfmt/pkg/ascii/extended"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFull = errors.New("sink full")

// limitWriter accepts a fixed number of writes, then fails.
type limitWriter struct {
	buf       bytes.Buffer
	remaining int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errFull
	}
	w.remaining--
	return w.buf.Write(p)
}

func TestWriteTo_CountsBytes(t *testing.T) {
	var buf bytes.Buffer
	n, err := Word{}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "Word", buf.String())

	buf.Reset()
	n, err = extended.Ç[extended.Pound[staticfmt.Nil]]{}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "Ç£", buf.String())
}

func TestWriteTo_SinkError(t *testing.T) {
	tests := []struct {
		name      string
		word      staticfmt.Word
		remaining int
		want      string
	}{
		{"Char", Word{}, 2, "Wo"},
		{"Chain", staticfmt.Chain[ab, de]{}, 3, "abd"},
		{"Repeat", staticfmt.Repeat[o, staticfmt.N3]{}, 2, "oo"},
		{"DisplaySwap", staticfmt.DisplaySwap[o]{}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &limitWriter{remaining: tt.remaining}
			n, err := tt.word.WriteTo(w)
			assert.ErrorIs(t, err, errFull)
			assert.Equal(t, int64(len(tt.want)), n)
			assert.Equal(t, tt.want, w.buf.String())
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := staticfmt.Fprint(&buf, Word{}, ascii.Space[staticfmt.Nil]{}, staticfmt.Repeat[o, staticfmt.N2]{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "Word oo", buf.String())

	n, err = staticfmt.Fprint(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFprint_StopsAtFirstError(t *testing.T) {
	w := &limitWriter{remaining: 5}
	n, err := staticfmt.Fprint(w, Word{}, Word{}, Word{})
	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "WordW", w.buf.String())
}

func TestRender_Concurrent(t *testing.T) {
	type banner = staticfmt.Chain[
		staticfmt.Repeat[ascii.Asterisk[staticfmt.Nil], staticfmt.N8],
		staticfmt.Chain[staticfmt.DisplaySwap[o], Word],
	]
	want := staticfmt.Text[banner]()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = staticfmt.Text[banner]()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "********Char('o', Nil)Word", want)
}
