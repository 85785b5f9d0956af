package property

// Comparison is one row of the side-by-side property comparison.
type Comparison struct {
	Name        string  `json:"name"`
	RoomCount   int     `json:"room_count"`
	TotalSqft   float64 `json:"total_sqft"`
	TotalSqyd   float64 `json:"total_sqyd"`
	ClaimedSqft float64 `json:"claimed_area"`
	ClaimedSqyd float64 `json:"claimed_area_sqyd"`
	Largest     bool    `json:"largest"`
}

// Compare builds comparison rows in the given order and marks every
// property sharing the largest carpet area.
func Compare(props []*Property) []Comparison {
	rows := make([]Comparison, 0, len(props))

	var largest float64
	for i, p := range props {
		if i == 0 || p.TotalSqft > largest {
			largest = p.TotalSqft
		}
		rows = append(rows, Comparison{
			Name:        p.Name,
			RoomCount:   len(p.Rooms),
			TotalSqft:   p.TotalSqft,
			TotalSqyd:   p.TotalSqyd,
			ClaimedSqft: p.ClaimedSqft,
			ClaimedSqyd: p.ClaimedSqyd,
		})
	}

	for i := range rows {
		rows[i].Largest = rows[i].TotalSqft == largest
	}

	return rows
}
