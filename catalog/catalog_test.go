package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestRecordAndRecent(t *testing.T) {
	s := OpenMemory(t)
	ctx := context.Background()

	runID, err := s.Record(ctx, Run{
		SourcePath:     "data/raw/policy.pdf",
		OutputPath:     "data/processed/policy.cleaned.txt",
		PageCount:      12,
		CharsPerPage:   1840.5,
		PrintableRatio: 0.99,
		NeedsOCR:       false,
		DurationMs:     340,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "run_") {
		t.Errorf("run ID = %q, want run_ prefix", runID)
	}

	runs, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.RunID != runID {
		t.Errorf("run ID = %q, want %q", got.RunID, runID)
	}
	if got.SourcePath != "data/raw/policy.pdf" || got.PageCount != 12 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.CharsPerPage != 1840.5 || got.PrintableRatio != 0.99 {
		t.Errorf("metric round-trip mismatch: %+v", got)
	}
	if got.NeedsOCR {
		t.Error("needs_ocr flipped on round-trip")
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not defaulted")
	}
}

func TestRecent_OrderAndLimit(t *testing.T) {
	s := OpenMemory(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, Run{
			SourcePath: "doc.pdf",
			OutputPath: "out.txt",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.After(runs[i-1].CreatedAt) {
			t.Errorf("runs not newest-first: %v before %v",
				runs[i-1].CreatedAt, runs[i].CreatedAt)
		}
	}
}

func TestRecord_ExplicitID(t *testing.T) {
	s := OpenMemory(t)

	runID, err := s.Record(context.Background(), Run{
		RunID:      "run_custom",
		SourcePath: "doc.pdf",
		OutputPath: "out.txt",
	})
	if err != nil {
		t.Fatal(err)
	}
	if runID != "run_custom" {
		t.Errorf("run ID = %q, want run_custom", runID)
	}

	// Duplicate IDs must be rejected by the primary key.
	if _, err := s.Record(context.Background(), Run{
		RunID:      "run_custom",
		SourcePath: "doc.pdf",
		OutputPath: "out.txt",
	}); err == nil {
		t.Fatal("expected duplicate run_id to fail")
	}
}

func TestWithIDGenerator(t *testing.T) {
	s := OpenMemory(t, WithIDGenerator(func() string { return "fixed-id" }))

	runID, err := s.Record(context.Background(), Run{
		SourcePath: "doc.pdf",
		OutputPath: "out.txt",
	})
	if err != nil {
		t.Fatal(err)
	}
	if runID != "fixed-id" {
		t.Errorf("run ID = %q, want fixed-id", runID)
	}
}
