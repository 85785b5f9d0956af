// Package layout places rooms on a diagrammatic floorplan.
//
// Rooms are stacked in a single column in input order. The result is for
// display only; it does not model real adjacency.
package layout

import (
	"errors"
	"fmt"

	"github.com/evcraddock/carpet/internal/area"
)

const (
	// Gap is the vertical space left between consecutive rooms.
	Gap = 1.0
	// Margin is added to the canvas width and height.
	Margin = 5.0
)

// ErrNothingToRender is returned by Generate when there are no rooms.
var ErrNothingToRender = errors.New("no rooms to render")

// Placement is one room's rectangle. Y grows downward.
type Placement struct {
	Room   string  `json:"room"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Plan is the full diagram: one placement per room and the canvas bounds.
type Plan struct {
	Placements []Placement `json:"placements"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
}

// Generate stacks the rooms top to bottom, leaving Gap between them.
// Zero-area rooms still take a slot.
func Generate(rooms []area.Room) (*Plan, error) {
	if len(rooms) == 0 {
		return nil, ErrNothingToRender
	}

	plan := &Plan{Placements: make([]Placement, 0, len(rooms))}

	var offset, maxWidth float64
	for _, r := range rooms {
		plan.Placements = append(plan.Placements, Placement{
			Room:   r.Name,
			Label:  fmt.Sprintf("%s (%.1f)", r.Name, r.AreaSqft),
			X:      0,
			Y:      offset,
			Width:  r.LengthFt,
			Height: r.BreadthFt,
		})
		if r.LengthFt > maxWidth {
			maxWidth = r.LengthFt
		}
		offset += r.BreadthFt + Gap
	}

	plan.Width = maxWidth + Margin
	plan.Height = offset + Margin
	return plan, nil
}
