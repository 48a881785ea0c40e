package store

// Schema DDL for the results database.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    command TEXT NOT NULL,
    family_type TEXT NOT NULL,
    sampling_strategy TEXT NOT NULL,
    seed INTEGER NOT NULL,
    n_samples INTEGER NOT NULL,
    params_hash TEXT NOT NULL
);`

	createRecords = `CREATE TABLE IF NOT EXISTS records (
    run_id TEXT NOT NULL,
    curve_index INTEGER NOT NULL,
    family_type TEXT NOT NULL,
    curve_json TEXT NOT NULL,
    line_bundle_degree INTEGER NOT NULL,
    genus INTEGER NOT NULL,
    canonical_degree INTEGER NOT NULL,
    is_smooth INTEGER NOT NULL,
    invariants_json TEXT NOT NULL,
    PRIMARY KEY (run_id, curve_index),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxRunsFamily    = `CREATE INDEX IF NOT EXISTS idx_runs_family ON runs(family_type);`
	idxRecordsSmooth = `CREATE INDEX IF NOT EXISTS idx_records_smooth ON records(is_smooth);`
	idxRecordsGenus  = `CREATE INDEX IF NOT EXISTS idx_records_genus ON records(genus);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRuns,
	createRecords,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRunsFamily,
	idxRecordsSmooth,
	idxRecordsGenus,
}
