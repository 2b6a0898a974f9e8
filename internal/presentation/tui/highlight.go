package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

// Palette used for type expressions.
const (
	qualifierColor = "#818cf8"
	nameColor      = "#f472b6"
	coreColor      = "#a78bfa"
)

// Highlight colors a generated type expression for the terminal: package
// qualifiers are dimmed, character names stand out and core types (Nil, Char,
// Chain, ...) get their own color. Brackets are left untouched.
func Highlight(expr string, p termenv.Profile) string {
	var sb strings.Builder
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		sb.WriteString(ident(expr[start:end], p))
		start = -1
	}

	for i, r := range expr {
		switch r {
		case '[', ']', ',', ' ', '=':
			flush(i)
			sb.WriteRune(r)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(expr))
	return sb.String()
}

func ident(s string, p termenv.Profile) string {
	qualifier, name, ok := strings.Cut(s, ".")
	if !ok {
		return p.String(s).Bold().String()
	}
	color := nameColor
	if qualifier == "staticfmt" {
		color = coreColor
	}
	return p.String(qualifier+".").Foreground(p.Color(qualifierColor)).Faint().String() +
		p.String(name).Foreground(p.Color(color)).String()
}
