package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of idempotent schema statements.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		name         TEXT PRIMARY KEY CHECK (length(trim(name)) > 0),
		rooms_json   TEXT NOT NULL,
		room_count   INTEGER NOT NULL,
		total_sqft   REAL NOT NULL,
		total_sqyd   REAL NOT NULL,
		claimed_sqft REAL NOT NULL,
		claimed_sqyd REAL NOT NULL,
		saved_at     DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
