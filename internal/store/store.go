// Package store persists sampling runs and their invariant records in a
// SQLite database, as an optional alternative to plain JSON artifacts.
// One results.db accumulates runs across invocations, so families can
// be compared after the fact with plain SQL.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/moduli/internal/runmeta"
	"github.com/mesh-intelligence/moduli/pkg/types"
)

// DBFileName is the results database file inside the output directory.
const DBFileName = "results.db"

// Store lifecycle errors.
var (
	ErrClosed = errors.New("store is closed")
)

// Store wraps the SQLite results database.
type Store struct {
	db *sql.DB
}

// Open creates or opens results.db inside dir, applying the schema and
// indexes idempotently.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// SaveRun persists one run's metadata and its record sequence in a
// single transaction.
func (s *Store) SaveRun(meta runmeta.Metadata, records []types.InvariantRecord) error {
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, created_at, command, family_type, sampling_strategy, seed, n_samples, params_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.RunID, time.Now().UTC().Format(time.RFC3339), meta.Command,
		meta.FamilyType, meta.Strategy, meta.Seed, len(records), meta.ParamsHash,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO records (run_id, curve_index, family_type, curve_json, line_bundle_degree, genus, canonical_degree, is_smooth, invariants_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		curveJSON, err := json.Marshal(r.Curve)
		if err != nil {
			return fmt.Errorf("marshal curve %d: %w", r.CurveIndex, err)
		}
		invJSON, err := json.Marshal(r.Invariants)
		if err != nil {
			return fmt.Errorf("marshal invariants %d: %w", r.CurveIndex, err)
		}
		smooth := 0
		if r.IsSmooth {
			smooth = 1
		}
		if _, err := stmt.Exec(
			meta.RunID, r.CurveIndex, r.FamilyType, string(curveJSON),
			r.LineBundleDegree, r.Genus, r.CanonicalDegree, smooth, string(invJSON),
		); err != nil {
			return fmt.Errorf("insert record %d: %w", r.CurveIndex, err)
		}
	}

	return tx.Commit()
}

// LoadRecords reads back the record sequence of a run in curve order.
func (s *Store) LoadRecords(runID string) ([]types.InvariantRecord, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT r.curve_index, r.family_type, r.curve_json, r.line_bundle_degree,
		        r.genus, r.canonical_degree, r.is_smooth, r.invariants_json,
		        runs.sampling_strategy, runs.seed
		 FROM records r JOIN runs ON runs.run_id = r.run_id
		 WHERE r.run_id = ? ORDER BY r.curve_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []types.InvariantRecord
	for rows.Next() {
		var r types.InvariantRecord
		var curveJSON, invJSON string
		var smooth int
		if err := rows.Scan(&r.CurveIndex, &r.FamilyType, &curveJSON,
			&r.LineBundleDegree, &r.Genus, &r.CanonicalDegree, &smooth, &invJSON,
			&r.SamplingStrategy, &r.Seed); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(curveJSON), &r.Curve); err != nil {
			return nil, fmt.Errorf("parse curve json: %w", err)
		}
		if err := json.Unmarshal([]byte(invJSON), &r.Invariants); err != nil {
			return nil, fmt.Errorf("parse invariants json: %w", err)
		}
		r.IsSmooth = smooth != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRuns returns the number of persisted runs.
func (s *Store) CountRuns() (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}
