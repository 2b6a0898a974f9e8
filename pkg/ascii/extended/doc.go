// Package extended names the 8-bit extended characters (code page 437 order) as
// generic aliases of staticfmt.Char.
package extended

//go:generate go run github.com/aretw0/staticfmt/cmd/staticfmt gen registry --alphabet extended -o extended_gen.go
