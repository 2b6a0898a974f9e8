/*
Package staticfmt encodes literal text as nested, zero-size types.

Every character is its own marker type and a word is a type built by nesting nodes, so
the text is fixed when the program is compiled and values carry no runtime payload. The
text only comes into existence when a value is rendered.

# Concept

The algebra is closed and small:

  - Nil is the end of a sequence and renders as "".
  - Char[C, T] renders the rune of marker C followed by its tail T.
  - Chain[H, T] renders H and then T.
  - Repeat[W, N] renders W as many times as the count marker N says.
  - DisplaySwap[W] exchanges the primary (String) and secondary (GoString) forms of W.

Each node is a struct{} instantiation, so the zero value is the only value and any two
values of the same composed type are interchangeable. Rendering walks the type
structure recursively and writes straight into the caller's io.Writer.

# Usage

Named characters come from the generated registry packages (pkg/ascii and
pkg/ascii/extended). Declaring a word is a matter of nesting them:

	package main

	import (
		"fmt"

		"github.com/aretw0/staticfmt"
		"github.com/aretw0/staticfmt/pkg/ascii"
	)

	type Word = ascii.W[ascii.LowerO[ascii.LowerR[ascii.LowerD[staticfmt.Nil]]]]

	type Wooord = ascii.W[staticfmt.Chain[
		staticfmt.Repeat[ascii.LowerO[staticfmt.Nil], staticfmt.N3],
		ascii.LowerR[ascii.LowerD[staticfmt.Nil]],
	]]

	func main() {
		fmt.Println(Word{})               // Word
		fmt.Println(staticfmt.Text[Wooord]()) // Wooord
	}

Long literals are easier to declare with the generator (`staticfmt word` or
pkg/wordgen), which expands a string into the nested form above.

# Limits

Nesting depth equals the number of nodes, and the only bound on it is whatever the Go
compiler accepts for nested type arguments.
*/
package staticfmt
