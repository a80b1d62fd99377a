package extract

import (
	"strings"
	"unicode"
)

// Render converts classified blocks back into markdown lines. Headings
// render title-cased behind "## " regardless of level (the heuristic
// distinguishes no other level); indented blocks become four-space code
// continuations; list items and paragraphs pass through verbatim.
// Consecutive blanks collapse to a single blank line.
func Render(blocks []Block) []string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading:
			lines = append(lines, "## "+TitleCase(strings.TrimSpace(b.Text)))
		case KindIndented:
			lines = append(lines, "    "+strings.TrimSpace(b.Text))
		case KindBlank:
			lines = append(lines, "")
		default:
			lines = append(lines, b.Text)
		}
	}
	return CollapseBlanks(lines)
}

// CollapseBlanks reduces every run of empty lines to a single empty line
// and drops leading blanks. The pass is idempotent.
func CollapseBlanks(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := true // swallow leading blanks
	for _, line := range lines {
		if line == "" {
			if prevBlank {
				continue
			}
			prevBlank = true
		} else {
			prevBlank = false
		}
		out = append(out, line)
	}
	return out
}

// TitleCase upper-cases the first letter of every letter run and
// lower-cases the rest, so "REVENUE REPORT" renders as "Revenue Report".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
		} else {
			b.WriteRune(r)
			inWord = false
		}
	}
	return b.String()
}
