package alphabet

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"
)

var (
	//go:embed ascii.yaml
	asciiTable []byte
	//go:embed extended.yaml
	extendedTable []byte
)

var builtins = map[string]func() (*Alphabet, error){
	"ascii":    sync.OnceValues(func() (*Alphabet, error) { return Parse(asciiTable) }),
	"extended": sync.OnceValues(func() (*Alphabet, error) { return Parse(extendedTable) }),
}

// ASCII is the 7-bit table: control characters, printable ASCII and DEL.
func ASCII() *Alphabet { return mustBuiltin("ascii") }

// Extended is the table of the 8-bit extended characters (code page 437 order).
func Extended() *Alphabet { return mustBuiltin("extended") }

// Builtin returns an embedded table by name.
func Builtin(name string) (*Alphabet, error) {
	load, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
	return load()
}

// BuiltinNames lists the embedded tables.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the builtin table called ref, or parses the file at path ref.
func Resolve(ref string) (*Alphabet, error) {
	if _, ok := builtins[ref]; ok {
		return Builtin(ref)
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a builtin nor a readable file: %v", ErrUnknownAlphabet, ref, err)
	}
	defer f.Close()
	return Load(f)
}

func mustBuiltin(name string) *Alphabet {
	a, err := Builtin(name)
	if err != nil {
		panic(fmt.Sprintf("alphabet: builtin table %s is invalid: %v", name, err))
	}
	return a
}
