// Package calc runs the full computation for one set of form inputs:
// rooms, then totals, then the floorplan.
package calc

import (
	"errors"
	"fmt"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/layout"
)

// Result is the output of one run. Totals and Plan are nil when no rooms
// were selected, so callers can suppress those sections instead of showing zeros.
type Result struct {
	Rooms    []area.Room  `json:"rooms"`
	Totals   *area.Totals `json:"totals,omitempty"`
	Plan     *layout.Plan `json:"layout"`
	HasRooms bool         `json:"has_rooms"`
}

// Run recomputes everything from scratch. Only input validation can fail.
func Run(in area.Input) (*Result, error) {
	rooms, err := area.BuildRooms(in)
	if err != nil {
		return nil, err
	}
	return FromRooms(rooms)
}

// FromRooms computes totals and layout for an already built room list.
func FromRooms(rooms []area.Room) (*Result, error) {
	res := &Result{Rooms: rooms}
	if res.Rooms == nil {
		res.Rooms = []area.Room{}
	}

	totals, err := area.Summarize(rooms)
	switch {
	case errors.Is(err, area.ErrNoRooms):
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("summarizing rooms: %w", err)
	}

	plan, err := layout.Generate(rooms)
	if err != nil {
		return nil, fmt.Errorf("generating layout: %w", err)
	}

	res.Totals = &totals
	res.Plan = plan
	res.HasRooms = true
	return res, nil
}
