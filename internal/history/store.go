// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of completed extractions so that a
// site's stylesheet changes can be traced back to the run that wrote them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/extract-css/pkg/types"
)

// DefaultPath is where the ledger lives when no path is configured.
const DefaultPath = ".extract-css/history.db"

const defaultLimit = 20

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger at path, creating its directory and
// schema if needed.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			raw_chars INTEGER NOT NULL,
			bytes_written INTEGER NOT NULL,
			sha256 TEXT NOT NULL,
			ran_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_output ON runs(output)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends a run to the ledger and returns its ID.
func (s *Store) Record(ctx context.Context, run types.Run) (int64, error) {
	ranAt := run.RanAt
	if ranAt.IsZero() {
		ranAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input, output, raw_chars, bytes_written, sha256, ran_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Input, run.Output, run.RawChars, run.BytesWritten, run.SHA256,
		ranAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit runs, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, raw_chars, bytes_written, sha256, ran_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var r types.Run
		var ranAt string
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &r.RawChars, &r.BytesWritten, &r.SHA256, &ranAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.RanAt, err = time.Parse(time.RFC3339Nano, ranAt)
		if err != nil {
			return nil, fmt.Errorf("parsing ran_at %q: %w", ranAt, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Latest returns the most recent run that wrote output, or nil if there is
// none.
func (s *Store) Latest(ctx context.Context, output string) (*types.Run, error) {
	var r types.Run
	var ranAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input, output, raw_chars, bytes_written, sha256, ran_at
		 FROM runs WHERE output = ? ORDER BY id DESC LIMIT 1`, output,
	).Scan(&r.ID, &r.Input, &r.Output, &r.RawChars, &r.BytesWritten, &r.SHA256, &ranAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest run: %w", err)
	}
	if r.RanAt, err = time.Parse(time.RFC3339Nano, ranAt); err != nil {
		return nil, fmt.Errorf("parsing ran_at %q: %w", ranAt, err)
	}
	return &r, nil
}
