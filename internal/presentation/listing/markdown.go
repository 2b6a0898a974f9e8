package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/staticfmt/pkg/alphabet"
)

// Markdown produces a table of every entry of a:
// - Name: the Go identifier of the binding
// - Char: the quoted rune, so control characters stay readable
// - Code: U+XXXX
// - Aliases: additional identifiers bound to the same rune
func Markdown(a *alphabet.Alphabet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", a.Name)
	fmt.Fprintf(&sb, "Package `%s` (%d characters)\n\n", a.Import, a.Len())
	sb.WriteString("| Name | Char | Code | Aliases |\n")
	sb.WriteString("|------|------|------|---------|\n")

	for _, e := range a.Entries() {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			e.Name,
			cell(strconv.QuoteRune(e.Code)),
			e.CodePoint(),
			strings.Join(e.Aliases, ", "),
		)
	}
	return sb.String()
}

// cell wraps s in a double-backtick code span, which tolerates a backtick
// inside, and escapes the column separator.
func cell(s string) string {
	return "`` " + strings.ReplaceAll(s, "|", `\|`) + " ``"
}
