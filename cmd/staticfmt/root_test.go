package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/staticfmt"
	"github.com/aretw0/staticfmt/pkg/wordgen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of the command tree to its default.
// Slice flags append on Set, so they are replaced instead.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if s, ok := f.Value.(pflag.SliceValue); ok {
			_ = s.Replace(nil)
			if f.DefValue != "[]" {
				_ = s.Replace(strings.Split(strings.Trim(f.DefValue, "[]"), ","))
			}
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "staticfmt version "+staticfmt.Version+"\n", out)
}

func TestWordCommand(t *testing.T) {
	t.Run("declarations", func(t *testing.T) {
		out, err := run(t, "word", "Greeting=Hi")
		require.NoError(t, err)
		assert.Equal(t, "type Greeting = ascii.H[ascii.LowerI[staticfmt.Nil]]\n", out)
	})

	t.Run("expressions", func(t *testing.T) {
		out, err := run(t, "word", "--expr", "Hi", "")
		require.NoError(t, err)
		assert.Equal(t, "ascii.H[ascii.LowerI[staticfmt.Nil]]\nstaticfmt.Nil\n", out)
	})

	t.Run("no words", func(t *testing.T) {
		_, err := run(t, "word")
		assert.ErrorIs(t, err, wordgen.ErrNoWords)
	})

	t.Run("unknown rune", func(t *testing.T) {
		_, err := run(t, "word", "Snow=☃")
		assert.ErrorIs(t, err, wordgen.ErrUnknownRune)
	})
}

func TestGenRegistryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascii_gen.go")
	_, err := run(t, "gen", "registry", "--alphabet", "ascii", "-o", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "..", "pkg", "ascii", "ascii_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestWordCommand_FlagsDoNotLeak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words_gen.go")
	_, err := run(t, "word", "-p", "greetings", "-a", "extended", "-o", path, "Cafe=é")
	require.NoError(t, err)
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package greetings")

	out, err := run(t, "word", "Hi=Hi")
	require.NoError(t, err, "ascii is back in the alphabets")
	assert.Equal(t, "type Hi = ascii.H[ascii.LowerI[staticfmt.Nil]]\n", out, "output went to stdout")
}

func TestAlphabetCommand(t *testing.T) {
	out, err := run(t, "alphabet", "--raw", "extended")
	require.NoError(t, err)
	assert.Contains(t, out, "# extended")
	assert.Contains(t, out, "| DoubleHorizontalLine | `` '═' `` | U+2550 |")
}
