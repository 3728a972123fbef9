// Package history records application launches in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// Store manages the SQLite database of launch history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and runs
// migrations.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close() //nolint:errcheck,gosec // best-effort cleanup on error path
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS launches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_id TEXT NOT NULL,
			launched_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_launches_entry ON launches(entry_id);
	`)
	if err != nil {
		return fmt.Errorf("creating launches table: %w", err)
	}

	return nil
}

// RecordLaunch stores one launch of the given entry.
func (s *Store) RecordLaunch(entryID string) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO launches (entry_id, launched_at) VALUES (?, ?)
	`, entryID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording launch: %w", err)
	}

	return nil
}

// Recent returns the most recently launched entry ids, most recent
// first, deduplicated.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.QueryContext(context.Background(), `
		SELECT entry_id FROM launches
		GROUP BY entry_id
		ORDER BY MAX(id) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent launches: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning recent launch: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent launches: %w", err)
	}

	return ids, nil
}

// LaunchCount returns how many times the entry was launched.
func (s *Store) LaunchCount(entryID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(context.Background(), `
		SELECT COUNT(*) FROM launches WHERE entry_id = ?
	`, entryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting launches: %w", err)
	}

	return n, nil
}
