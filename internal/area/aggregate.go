package area

import "errors"

const (
	// EfficiencyRatio is the carpet to super built-up area ratio.
	EfficiencyRatio = 0.75
	// SqftPerSqyd converts square feet to square yards.
	SqftPerSqyd = 9
)

// ErrNoRooms is returned by Summarize when there is nothing to aggregate.
var ErrNoRooms = errors.New("no rooms to aggregate")

// Totals holds the aggregate figures for a set of rooms.
type Totals struct {
	TotalSqft   float64 `json:"total_sqft"`
	TotalSqyd   float64 `json:"total_sqyd"`
	ClaimedSqft float64 `json:"claimed_area"`
	ClaimedSqyd float64 `json:"claimed_area_sqyd"`
}

// Summarize sums room areas, zero-area rooms included, and derives the
// square yard and claimed figures. Empty input returns zero Totals and ErrNoRooms.
// Totals too large to represent are rejected with a *ValidationError.
func Summarize(rooms []Room) (Totals, error) {
	if len(rooms) == 0 {
		return Totals{}, ErrNoRooms
	}

	var total float64
	for _, r := range rooms {
		total += r.AreaSqft
	}

	claimed := total / EfficiencyRatio
	if !IsFinite(claimed) {
		return Totals{}, &ValidationError{Field: "rooms", Reason: "total area is too large"}
	}
	return Totals{
		TotalSqft:   total,
		TotalSqyd:   total / SqftPerSqyd,
		ClaimedSqft: claimed,
		ClaimedSqyd: claimed / SqftPerSqyd,
	}, nil
}
