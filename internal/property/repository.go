package property

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/evcraddock/carpet/internal/area"
)

// Repository stores properties in the SQLite properties table. It satisfies
// Backend: Write replaces the table contents in a single transaction.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO properties
	(name, rooms_json, room_count, total_sqft, total_sqyd, claimed_sqft, claimed_sqyd)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

const selectSQL = `SELECT name, rooms_json, room_count, total_sqft, total_sqyd, claimed_sqft, claimed_sqyd
	FROM properties ORDER BY name`

// Read returns every stored property keyed by name.
func (r *Repository) Read() (props map[string]*Property, err error) {
	rows, err := r.db.Query(selectSQL)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	props = make(map[string]*Property)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props[p.Name] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return props, nil
}

// Write replaces all stored properties with props.
func (r *Repository) Write(props map[string]*Property) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := writeAll(tx, props); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing properties: %w", err)
	}
	return nil
}

func writeAll(tx *sql.Tx, props map[string]*Property) error {
	if _, err := tx.Exec("DELETE FROM properties"); err != nil {
		return fmt.Errorf("clearing properties: %w", err)
	}

	for name, p := range props {
		rooms, err := json.Marshal(p.Rooms)
		if err != nil {
			return fmt.Errorf("marshaling rooms for %s: %w", name, err)
		}
		if _, err := tx.Exec(insertSQL,
			name, string(rooms), len(p.Rooms),
			p.TotalSqft, p.TotalSqyd, p.ClaimedSqft, p.ClaimedSqyd,
		); err != nil {
			return fmt.Errorf("inserting property %s: %w", name, err)
		}
	}

	return nil
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var roomsJSON string
	var roomCount int

	err := row.Scan(
		&p.Name, &roomsJSON, &roomCount,
		&p.TotalSqft, &p.TotalSqyd, &p.ClaimedSqft, &p.ClaimedSqyd,
	)
	if err != nil {
		return nil, err
	}

	var rooms []area.Room
	if err := json.Unmarshal([]byte(roomsJSON), &rooms); err != nil {
		return nil, fmt.Errorf("parsing rooms of %s: %w", p.Name, err)
	}
	if len(rooms) != roomCount {
		return nil, fmt.Errorf("rooms of %s: recorded %d, found %d", p.Name, roomCount, len(rooms))
	}
	p.Rooms = rooms

	return &p, nil
}
