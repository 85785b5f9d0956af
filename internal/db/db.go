// Package db opens the SQLite property database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMS is set on every pooled connection through the DSN so a CLI
// save and a running server can share one database file.
const busyTimeoutMS = 5000

// pragmas persist in the database file and only need running once per open.
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
}

// DefaultPath returns ~/.carpet/properties.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".carpet", "properties.db"), nil
}

// Open opens or creates the property database at path and brings the
// schema up to date.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := setup(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}

	return db, nil
}

func setup(db *sql.DB) error {
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("executing %s: %w", p, err)
		}
	}
	if err := migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
