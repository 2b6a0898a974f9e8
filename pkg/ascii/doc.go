// Package ascii names every 7-bit ASCII character as a generic alias of
// staticfmt.Char, so words can be spelled by nesting names:
//
//	type Word = ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]
//
// Capital letters keep their letter (W), small letters are LowerA through LowerZ and
// digits are Digit0 through Digit9. Control characters use their long names (Nl, Tab,
// Escape, ...), and a few characters have additional aliases (LineFeed, NewLine).
//
// The bindings are generated from the alphabet table in pkg/alphabet.
package ascii

//go:generate go run github.com/aretw0/staticfmt/cmd/staticfmt gen registry --alphabet ascii -o ascii_gen.go
