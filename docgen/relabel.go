package docgen

// relabel.go — numbered-label rewriting.

import (
	"fmt"
	"regexp"
)

// numberLabelPattern matches one numeral label in any accepted shape:
// parenthesized "(1)" / "（1）", or a numeral followed by "." , "、",
// ")" or "）". Parenthesized labels are listed first so "(1)" is consumed
// whole instead of as "1)"; a single pass keeps replacements from being
// matched again.
var numberLabelPattern = regexp.MustCompile(`[(（][0-9]+[)）]\s*|[0-9]+[.、)）]\s*`)

var digitsPattern = regexp.MustCompile(`[0-9]+`)

// NumberRelabeler rewrites numeral labels like "1." or "（4）" into the
// uniform "(n) " form, assigning n sequentially in first-seen order of
// the original numerals. State is scoped to one relabeler; use a fresh
// one wherever numbering should restart.
type NumberRelabeler struct {
	next     int
	assigned map[string]int
}

// NewNumberRelabeler starts a relabeler counting from 1.
func NewNumberRelabeler() *NumberRelabeler {
	return &NumberRelabeler{next: 1, assigned: make(map[string]int)}
}

// Relabel rewrites every numeral label in text. A numeral keeps its
// assigned replacement for the life of the relabeler, so repeated labels
// map consistently within one section.
func (r *NumberRelabeler) Relabel(text string) string {
	return numberLabelPattern.ReplaceAllStringFunc(text, func(match string) string {
		original := digitsPattern.FindString(match)
		n, ok := r.assigned[original]
		if !ok {
			n = r.next
			r.assigned[original] = n
			r.next++
		}
		return fmt.Sprintf("(%d) ", n)
	})
}
