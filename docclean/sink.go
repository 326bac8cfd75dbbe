package docclean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SavePages writes cleaned pages to a single text artifact. Each page
// is preceded by a blank-line-padded "===== PAGE <n> =====" separator
// (1-indexed) and written trimmed with a trailing newline, in page
// order. Parent directories are created if absent.
func SavePages(pages []string, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("docclean: mkdir %s: %w", dir, err)
		}
	}

	var sb strings.Builder
	for i, page := range pages {
		fmt.Fprintf(&sb, "\n\n===== PAGE %d =====\n\n", i+1)
		sb.WriteString(strings.TrimSpace(page))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("docclean: write %s: %w", outPath, err)
	}
	return nil
}
