package docclean

import "strings"

// StripBoilerplate removes running header/footer lines from the top
// and bottom scan zones of a page. Lines outside both zones are never
// removed, whatever their content. On short pages the zones can
// overlap; each check applies independently per line. Surviving lines
// keep their relative order.
func StripBoilerplate(text string, cfg CleanConfig) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		inHeader := i < cfg.HeaderScanLines
		inFooter := i >= len(lines)-cfg.FooterScanLines
		if (inHeader || inFooter) && isBoilerplate(line, cfg) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isBoilerplate classifies one line as running header/footer content.
// Blank lines never match.
func isBoilerplate(line string, cfg CleanConfig) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if isPageNumber(s) {
		return true
	}
	for _, exact := range cfg.HeaderFooterExact {
		if s == exact {
			return true
		}
	}
	for _, prefix := range cfg.HeaderFooterPrefixes {
		// "Chapter" is the one marker matched case-insensitively:
		// real PDFs flip between "Chapter 3" and "CHAPTER 3". Every
		// other prefix stays case-sensitive.
		if strings.EqualFold(prefix, "chapter") {
			if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
				return true
			}
		} else if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// isPageNumber reports a bare 1-3 digit line: "1", "12", "103".
func isPageNumber(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
