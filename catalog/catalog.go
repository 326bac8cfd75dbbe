// Package catalog persists a record of every cleaning run to SQLite
// so repeated ingestions of a corpus can be inspected later.
//
// The caller must blank-import a driver registering as "sqlite":
//
//	import _ "modernc.org/sqlite"
//
// In tests:
//
//	store := catalog.OpenMemory(t)
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guardianrag/kengine/idgen"
)

// Run is one recorded cleaning run.
type Run struct {
	RunID          string
	SourcePath     string
	OutputPath     string
	PageCount      int
	CharsPerPage   float64
	PrintableRatio float64
	NeedsOCR       bool
	DurationMs     int64
	CreatedAt      time.Time
}

// Store is the catalog database handle.
type Store struct {
	db    *sql.DB
	newID idgen.Generator
}

// Option configures Open.
type Option func(*Store)

// WithIDGenerator overrides the run ID generator. Default: "run_"
// prefixed UUIDv7.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Store) { s.newID = gen }
}

// Open opens (or creates) the catalog at path, applying WAL and
// busy-timeout pragmas plus the schema. Parent directories are
// created.
func Open(path string, opts ...Option) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("catalog: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: schema: %w", err)
	}

	s := &Store{db: db, newID: idgen.Prefixed("run_", idgen.Default)}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// OpenMemory opens an in-memory catalog for tests. MaxOpenConns is
// pinned to 1 so every query hits the same in-memory database; Close
// is registered with t.Cleanup.
func OpenMemory(t testing.TB, opts ...Option) *Store {
	t.Helper()
	s, err := Open(":memory:", opts...)
	if err != nil {
		t.Fatalf("catalog.OpenMemory: %v", err)
	}
	s.db.SetMaxOpenConns(1)
	t.Cleanup(func() { s.Close() })
	return s
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a run and returns its ID. An empty RunID is
// generated; a zero CreatedAt defaults to now.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = s.newID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clean_runs (
			run_id, source_path, output_path, page_count,
			chars_per_page, printable_ratio, needs_ocr,
			duration_ms, created_at
		) VALUES (?,?,?,?,?,?,?,?,?)`,
		run.RunID, run.SourcePath, run.OutputPath, run.PageCount,
		run.CharsPerPage, run.PrintableRatio, run.NeedsOCR,
		run.DurationMs, run.CreatedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("catalog: record run: %w", err)
	}
	return run.RunID, nil
}

// Recent returns the most recent runs, newest first. limit <= 0 means
// 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, source_path, output_path, page_count,
		       chars_per_page, printable_ratio, needs_ocr,
		       duration_ms, created_at
		FROM clean_runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.RunID, &r.SourcePath, &r.OutputPath,
			&r.PageCount, &r.CharsPerPage, &r.PrintableRatio,
			&r.NeedsOCR, &r.DurationMs, &created); err != nil {
			return nil, fmt.Errorf("catalog: scan run: %w", err)
		}
		r.CreatedAt = time.Unix(created, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
