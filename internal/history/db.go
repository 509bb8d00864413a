// Package history persists solved scrambles to a local SQLite database, an
// optional outer layer the core solver never reads from. Grounded on
// SeamusWaldron-gocube_ble_library's internal/app/storage package: same
// Open/MigrateUp/PRAGMA sequence, same *sql.DB-embedding DB wrapper.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection backing solve history.
type DB struct {
	*sql.DB
	path string
}

// DefaultDBPath returns ~/.cube/history.db, creating the directory if needed.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("history: failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("history: failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (or creates) the SQLite database at dbPath, enabling foreign
// keys and WAL journaling.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("history: failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: failed to enable WAL mode: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// OpenDefault opens the database at DefaultDBPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

// MigrateUp creates the solves/steps schema if it does not already exist.
func (db *DB) MigrateUp() error {
	const schema = `
CREATE TABLE IF NOT EXISTS solves (
	solve_id   TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	scramble   TEXT NOT NULL,
	solution   TEXT NOT NULL,
	move_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS solve_steps (
	solve_id   TEXT NOT NULL REFERENCES solves(solve_id) ON DELETE CASCADE,
	step_index INTEGER NOT NULL,
	step_name  TEXT NOT NULL,
	moves      TEXT NOT NULL,
	move_count INTEGER NOT NULL,
	PRIMARY KEY (solve_id, step_index)
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("history: failed to apply schema: %w", err)
	}
	return nil
}

// execer is the subset of *sql.Tx a Transaction callback needs.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Transaction runs fn inside a database transaction, rolling back on error
// and committing otherwise.
func (db *DB) Transaction(fn func(execer) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("history: failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("history: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: failed to commit transaction: %w", err)
	}

	return nil
}
