// Package property provides named property snapshots and their persistence.
package property

import (
	"fmt"
	"strings"

	"github.com/evcraddock/carpet/internal/area"
)

// Property is a named snapshot of a room list and its totals.
// Totals are frozen when the property is created and never recomputed.
type Property struct {
	Name  string      `json:"-"`
	Rooms []area.Room `json:"rooms"`
	area.Totals
}

// ValidationError is returned when a save is attempted with missing data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ValidateSave checks the preconditions for saving a property: a non-blank
// name without path separators and at least one room. Names are addressed
// as a single URL path segment, so "/" is not allowed.
func ValidateSave(name string, rooms []area.Room) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.Contains(name, "/") {
		return &ValidationError{Field: "name", Reason: "must not contain /"}
	}
	if len(rooms) == 0 {
		return &ValidationError{Field: "rooms", Reason: "must not be empty"}
	}
	return nil
}

// New validates the save preconditions and freezes the totals for rooms.
func New(name string, rooms []area.Room) (*Property, error) {
	if err := ValidateSave(name, rooms); err != nil {
		return nil, err
	}

	totals, err := area.Summarize(rooms)
	if err != nil {
		return nil, fmt.Errorf("summarizing rooms: %w", err)
	}

	copied := make([]area.Room, len(rooms))
	copy(copied, rooms)

	return &Property{
		Name:   strings.TrimSpace(name),
		Rooms:  copied,
		Totals: totals,
	}, nil
}

// Named pairs a property with its name for API payloads, where the name is
// not the document key.
type Named struct {
	Name string `json:"name"`
	Property
}

// WithName returns p wrapped with its name.
func (p *Property) WithName() Named {
	return Named{Name: p.Name, Property: *p}
}

// Unwrap returns the property with its name restored.
func (n Named) Unwrap() *Property {
	p := n.Property
	p.Name = n.Name
	return &p
}
