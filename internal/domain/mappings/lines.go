package mappings

import "strings"

const arrowSeparator = " -> "

// line is one non-blank, non-comment line of a mapping file.
type line struct {
	number int // 1-based
	text   string
}

func (l line) isMember() bool {
	return l.text[0] == ' ' || l.text[0] == '\t'
}

// splitLines returns the declaration lines of a mapping file in order.
// Comments and blank lines are dropped; line numbers are kept for errors.
func splitLines(text string) []line {
	raw := strings.Split(text, "\n")
	lines := make([]line, 0, len(raw))

	for i, s := range raw {
		s = strings.TrimRight(s, "\r")

		trimmed := strings.TrimSpace(s)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines = append(lines, line{number: i + 1, text: s})
	}

	return lines
}
