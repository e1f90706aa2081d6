// Package sqlite implements the run catalog on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexipack/pkg/lexipack/category"
	"github.com/cognicore/lexipack/pkg/lexipack/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite run catalog with WAL mode enabled, creating the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	total_before INTEGER NOT NULL,
	total_after INTEGER NOT NULL,
	duplicates_removed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_categories (
	run_id TEXT NOT NULL,
	category TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, category),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS run_files (
	run_id TEXT NOT NULL,
	filename TEXT NOT NULL,
	words INTEGER NOT NULL,
	PRIMARY KEY(run_id, filename),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// RecordRun writes a run and its per-category and per-file counts in one
// transaction.
func (s *sqliteStore) RecordRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, total_before, total_after, duplicates_removed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.FinishedAt.UTC().Format(time.RFC3339Nano),
		r.TotalBefore, r.TotalAfter, r.DuplicatesRemoved)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.ID, err)
	}

	for cat, count := range r.CategoryCounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_categories (run_id, category, count) VALUES (?, ?, ?)`,
			r.ID, cat.String(), count); err != nil {
			return fmt.Errorf("insert run category: %w", err)
		}
	}

	for name, count := range r.FileCounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, filename, words) VALUES (?, ?, ?)`,
			r.ID, name, count); err != nil {
			return fmt.Errorf("insert run file: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun returns one run with its counts.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var r store.Run
	var started, finished string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, total_before, total_after, duplicates_removed
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &started, &finished, &r.TotalBefore, &r.TotalAfter, &r.DuplicatesRemoved)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}

	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return store.Run{}, false, fmt.Errorf("parse started_at: %w", err)
	}
	if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return store.Run{}, false, fmt.Errorf("parse finished_at: %w", err)
	}

	if err := s.loadCounts(ctx, &r); err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	runs := make([]store.Run, 0, len(ids))
	for _, id := range ids {
		r, ok, err := s.GetRun(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			runs = append(runs, r)
		}
	}
	return runs, nil
}

func (s *sqliteStore) loadCounts(ctx context.Context, r *store.Run) error {
	r.CategoryCounts = make(map[category.Category]int)
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, count FROM run_categories WHERE run_id = ?`, r.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return err
		}
		cat, err := category.Parse(name)
		if err != nil {
			return err
		}
		r.CategoryCounts[cat] = count
	}
	if err := rows.Err(); err != nil {
		return err
	}

	r.FileCounts = make(map[string]int)
	fileRows, err := s.db.QueryContext(ctx,
		`SELECT filename, words FROM run_files WHERE run_id = ?`, r.ID)
	if err != nil {
		return err
	}
	defer fileRows.Close()
	for fileRows.Next() {
		var name string
		var count int
		if err := fileRows.Scan(&name, &count); err != nil {
			return err
		}
		r.FileCounts[name] = count
	}
	return fileRows.Err()
}
