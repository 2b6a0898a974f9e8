// Package wordgen expands string literals into nested staticfmt types and writes
// the registry packages.
//
// Go has no macros, so the literal-sequence shorthand is a generator: "Word" becomes
//
//	ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]
//
// one Char node per rune, each later rune nested as the tail of the one before it.
// The result is meant to be committed and refreshed with go:generate.
package wordgen
