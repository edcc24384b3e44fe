// Package history journals applied version bumps in a local sqlite
// database. The journal is advisory: callers treat failures as warnings.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nsbackup/relkit/internal/release"
	"github.com/nsbackup/relkit/internal/semver"
)

// Store wraps the sqlite journal.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the journal at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	store := &Store{db: db}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS bumps (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    bumped_at    TEXT NOT NULL,
    release_type TEXT NOT NULL,
    component    TEXT NOT NULL,
    from_version TEXT NOT NULL,
    to_version   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bumps_bumped_at ON bumps (bumped_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}

// Record journals one change row per bumped component.
func (s *Store) Record(ctx context.Context, t semver.ReleaseType, changes []release.Change) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, c := range changes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bumps (bumped_at, release_type, component, from_version, to_version)
			 VALUES (?, ?, ?, ?, ?)`,
			now, string(t), c.Component, c.From.String(), c.To.String())
		if err != nil {
			return fmt.Errorf("failed to journal change for %s: %w", c.Component, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history transaction: %w", err)
	}
	return nil
}

// Record is one journaled component change.
type Record struct {
	ID          int64
	BumpedAt    time.Time
	ReleaseType string
	Component   string
	From        string
	To          string
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bumped_at, release_type, component, from_version, to_version
		 FROM bumps ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var r Record
		var bumpedAt string
		if err := rows.Scan(&r.ID, &bumpedAt, &r.ReleaseType, &r.Component, &r.From, &r.To); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, bumpedAt); parseErr == nil {
			r.BumpedAt = ts
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return records, nil
}

// Close closes the journal.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close history database: %w", err)
	}
	return nil
}
