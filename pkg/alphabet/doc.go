// Package alphabet holds the named-character tables that the registry packages are
// generated from.
//
// A table is a YAML document:
//
//	name: ascii
//	package: ascii
//	import: github.com/aretw0/staticfmt/pkg/ascii
//	entries:
//	  - name: Tab
//	    code: U+0009
//	    aliases: [CharacterTabulation]
//
// The code of an entry may be written as "U+XXXX", as a one-character string or as an
// integer. Parse validates the table: every name and alias must be an exported Go
// identifier and unique, every code point valid and unique.
package alphabet
