// Package pdftext is the pipeline's page source. It validates a PDF
// path (exists, .pdf extension, nonzero size) and returns the raw
// extracted text of each page, in page order, plus quality metrics
// that flag scans needing OCR.
//
// Extraction walks pdfcpu content streams directly — pure Go,
// CGO_ENABLED=0 compatible. Failures are one of four typed errors:
// *NotFoundError, *InvalidFormatError, *EmptyInputError,
// *ExtractionError. None are retried; all indicate an unusable input.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Config configures an Extractor.
type Config struct {
	// MaxFileSize rejects inputs larger than this (default: 100 MB).
	MaxFileSize int64

	// Logger for debug messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor extracts per-page text from PDF files.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg, logger: cfg.Logger}
}

// Result is one successful extraction.
type Result struct {
	// Pages holds the raw text of every page, in page order. Pages
	// without extractable text are present as empty strings so page
	// numbering stays aligned with the source document.
	Pages []string

	// Quality scores the extraction as a whole.
	Quality *Quality
}

// Extract validates path and returns the raw text of every page. The
// underlying file handle is released on every path, including errors.
func (e *Extractor) Extract(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, &InvalidFormatError{Path: path}
	}
	if info.Size() == 0 {
		return nil, &EmptyInputError{Path: path}
	}
	if info.Size() > e.cfg.MaxFileSize {
		return nil, &ExtractionError{Path: path,
			Cause: fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), e.cfg.MaxFileSize)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}
	defer f.Close()

	pctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, &ExtractionError{Path: path, Cause: err}
	}

	e.logger.Debug("pdf opened", "path", path, "pages", pctx.PageCount)

	pages := make([]string, 0, pctx.PageCount)
	totalRunes := 0
	var all strings.Builder
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		text := pageText(pctx, pageNr)
		e.logger.Debug("extracted page", "page", pageNr, "chars", len(text))
		pages = append(pages, text)
		totalRunes += len([]rune(text))
		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(text)
	}

	return &Result{
		Pages:   pages,
		Quality: measureQuality(pctx, all.String(), totalRunes),
	}, nil
}

// Pages returns just the raw page texts. It satisfies the cleaning
// pipeline's PageSource contract.
func (e *Extractor) Pages(ctx context.Context, path string) ([]string, error) {
	res, err := e.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	return res.Pages, nil
}
