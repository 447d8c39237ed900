package adapter

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiffer renders a line diff between two texts.
type TextDiffer interface {
	// Diff returns changed lines prefixed with "-" or "+", or "" when the
	// texts are equal.
	Diff(before, after string) string
}

// LineDiffer implements TextDiffer with diffmatchpatch in line mode.
type LineDiffer struct{}

// NewLineDiffer constructs a LineDiffer.
func NewLineDiffer() *LineDiffer {
	return &LineDiffer{}
}

// Diff implements TextDiffer.
func (d *LineDiffer) Diff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, diff := range diffs {
		var prefix string

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			continue
		}

		for _, l := range strings.SplitAfter(diff.Text, "\n") {
			if l == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(l, "\n"))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
