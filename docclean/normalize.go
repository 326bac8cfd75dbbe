package docclean

import (
	"strings"
	"unicode"
)

// NormalizePage converts line-ending variants (\r\n, \r) to \n, tabs
// to single spaces, strips trailing whitespace from every line, and
// collapses runs of two or more blank lines to exactly one. Leading
// whitespace survives: PDFs sometimes indent intentionally.
//
// Total and idempotent — re-applying to its own output is a no-op.
func NormalizePage(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return strings.Join(out, "\n")
}
