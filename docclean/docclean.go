// Package docclean turns raw per-page PDF text into normalized,
// header/footer-stripped, paragraph-joined plain text ready for
// downstream chunking.
//
// Three pure stages run per page, in order:
//
//   - normalize — line endings, tabs, trailing whitespace, blank runs
//   - strip     — positional header/footer removal (CleanConfig)
//   - join      — soft-wrap merging with hyphenation repair
//
// Pages are independent; no state crosses a page boundary, so the
// stages are safe to run concurrently across pages if a caller wants
// to.
//
// Usage:
//
//	c := docclean.New(docclean.Config{})
//	pages, err := c.CleanDocument(ctx, "policy.pdf")
//	err = docclean.SavePages(pages, "data/processed/policy.cleaned.txt")
package docclean

import (
	"context"
	"log/slog"

	"github.com/guardianrag/kengine/pdftext"
)

// PageSource yields the raw extracted text of each page of a
// document, in page order. Implementations must release any
// underlying resource handle on both success and failure paths.
type PageSource interface {
	Pages(ctx context.Context, path string) ([]string, error)
}

// Cleaner is the document-cleaning engine.
type Cleaner struct {
	cfg    Config
	source PageSource
	logger *slog.Logger
}

// New creates a Cleaner with the given configuration.
func New(cfg Config) *Cleaner {
	cfg.defaults()
	if cfg.Source == nil {
		cfg.Source = pdftext.New(pdftext.Config{Logger: cfg.Logger})
	}
	return &Cleaner{
		cfg:    cfg,
		source: cfg.Source,
		logger: cfg.Logger,
	}
}

// CleanPage runs the three cleaning stages on one page's raw text.
func (c *Cleaner) CleanPage(text string) string {
	norm := NormalizePage(text)
	stripped := StripBoilerplate(norm, c.cfg.Clean)
	return JoinWrappedLines(stripped)
}

// CleanDocument extracts and cleans every page of the document at
// path, in page order. A page-source failure propagates unmodified
// and no partial result is returned.
func (c *Cleaner) CleanDocument(ctx context.Context, path string) ([]string, error) {
	raw, err := c.source.Pages(ctx, path)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("cleaning document", "path", path, "pages", len(raw))

	cleaned := make([]string, len(raw))
	for i, page := range raw {
		cleaned[i] = c.CleanPage(page)
		c.logger.Debug("cleaned page",
			"page", i+1, "chars_in", len(page), "chars_out", len(cleaned[i]))
	}
	return cleaned, nil
}
