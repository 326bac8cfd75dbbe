// Command docclean cleans an extracted PDF into paragraph-joined
// plain text with page separators.
//
// Usage:
//
//	docclean -pdf policy.pdf                          # data/processed/policy.cleaned.txt
//	docclean -pdf policy.pdf -out clean.txt -db runs.db
//	docclean -pdf policy.pdf -config docclean.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/guardianrag/kengine/catalog"
	"github.com/guardianrag/kengine/docclean"
	"github.com/guardianrag/kengine/pdftext"
)

func main() {
	pdfPath := flag.String("pdf", "", "path to the input PDF")
	outPath := flag.String("out", "", "output .txt path (default: <out_dir>/<stem>.cleaned.txt)")
	configPath := flag.String("config", "", "path to docclean.yaml")
	dbPath := flag.String("db", "", "optional SQLite run catalog")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *pdfPath == "" {
		fmt.Fprintln(os.Stderr, "usage: docclean -pdf <file> [-out <file>] [-config <file>] [-db <file>]")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *pdfPath, *outPath, *dbPath); err != nil {
		logger.Error("docclean: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, pdfPath, outPath, dbPath string) error {
	cfg := &docclean.Config{}
	if configPath != "" {
		loaded, err := docclean.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Logger = logger

	extractor := pdftext.New(pdftext.Config{Logger: logger})
	cfg.Source = extractor
	cleaner := docclean.New(*cfg)

	if outPath == "" {
		outDir := cfg.OutDir
		if outDir == "" {
			outDir = docclean.DefaultOutDir
		}
		stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
		outPath = filepath.Join(outDir, stem+".cleaned.txt")
	}

	start := time.Now()
	res, err := extractor.Extract(ctx, pdfPath)
	if err != nil {
		return err
	}

	pages := make([]string, len(res.Pages))
	for i, raw := range res.Pages {
		pages[i] = cleaner.CleanPage(raw)
	}

	q := res.Quality
	logger.Info("extraction quality",
		"pages", q.PageCount,
		"chars_per_page", q.CharsPerPage,
		"printable_ratio", q.PrintableRatio,
		"needs_ocr", q.NeedsOCR())

	if err := docclean.SavePages(pages, outPath); err != nil {
		return err
	}
	logger.Info("saved cleaned output", "path", outPath, "pages", len(pages))

	if dbPath == "" {
		dbPath = cfg.CatalogPath
	}
	if dbPath != "" {
		store, err := catalog.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer store.Close()

		runID, err := store.Record(ctx, catalog.Run{
			SourcePath:     pdfPath,
			OutputPath:     outPath,
			PageCount:      q.PageCount,
			CharsPerPage:   q.CharsPerPage,
			PrintableRatio: q.PrintableRatio,
			NeedsOCR:       q.NeedsOCR(),
			DurationMs:     time.Since(start).Milliseconds(),
		})
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		logger.Info("recorded run", "run_id", runID, "db", dbPath)
	}
	return nil
}
