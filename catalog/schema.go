package catalog

// schema is applied on every Open; CREATE IF NOT EXISTS keeps it
// idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS clean_runs (
	run_id          TEXT PRIMARY KEY,
	source_path     TEXT NOT NULL,
	output_path     TEXT NOT NULL,
	page_count      INTEGER NOT NULL,
	chars_per_page  REAL NOT NULL DEFAULT 0,
	printable_ratio REAL NOT NULL DEFAULT 0,
	needs_ocr       INTEGER NOT NULL DEFAULT 0,
	duration_ms     INTEGER NOT NULL DEFAULT 0,
	created_at      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clean_runs_created
	ON clean_runs(created_at DESC);
`
