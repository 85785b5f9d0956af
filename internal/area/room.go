package area

import (
	"fmt"
	"strings"
)

// Category is one of the fixed room categories.
type Category string

const (
	CategoryBedrooms    Category = "Bedrooms"
	CategoryToilets     Category = "Toilets"
	CategoryDrawingRoom Category = "Drawing Room"
	CategoryFoyer       Category = "Foyer"
	CategoryDining      Category = "Dining"
	CategoryKitchen     Category = "Kitchen"
	CategoryWashArea    Category = "Wash Area"
	CategoryBalcony     Category = "Balcony"
	CategoryStoreRoom   Category = "Store Room"
)

// categories holds every category in display order with its room name prefix.
var categories = []struct {
	category Category
	prefix   string
}{
	{CategoryBedrooms, "Bedroom"},
	{CategoryToilets, "Toilet"},
	{CategoryDrawingRoom, "Drawing"},
	{CategoryFoyer, "Foyer"},
	{CategoryDining, "Dining"},
	{CategoryKitchen, "Kitchen"},
	{CategoryWashArea, "Wash"},
	{CategoryBalcony, "Balcony"},
	{CategoryStoreRoom, "Store"},
}

// Categories returns all room categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.category
	}
	return out
}

// Prefix returns the short name used for individual rooms, e.g. "Bedroom".
// Unknown categories return their own label.
func (c Category) Prefix() string {
	for _, e := range categories {
		if e.category == c {
			return e.prefix
		}
	}
	return string(c)
}

// Valid returns true if c is a known category.
func (c Category) Valid() bool {
	for _, e := range categories {
		if e.category == c {
			return true
		}
	}
	return false
}

// ParseCategory matches a category label or prefix, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, e := range categories {
		if strings.EqualFold(s, string(e.category)) || strings.EqualFold(s, e.prefix) {
			return e.category, nil
		}
	}
	return "", fmt.Errorf("unknown room category: %q", s)
}

// Room is one measured room. AreaSqft is always derived from the dimensions.
type Room struct {
	Name      string   `json:"Room"`
	Category  Category `json:"Category"`
	LengthFt  float64  `json:"Length (ft)"`
	BreadthFt float64  `json:"Breadth (ft)"`
	AreaSqft  float64  `json:"Area (sqft)"`
}

// NewRoom builds the index-th room (starting at 1) of a category.
func NewRoom(category Category, index int, length, breadth Dimension) Room {
	l := length.Decimal()
	b := breadth.Decimal()
	return Room{
		Name:      fmt.Sprintf("%s %d", category.Prefix(), index),
		Category:  category,
		LengthFt:  l,
		BreadthFt: b,
		AreaSqft:  RoomArea(l, b),
	}
}

// RoomArea returns length times breadth. Zero dimensions give zero area.
func RoomArea(lengthFt, breadthFt float64) float64 {
	return lengthFt * breadthFt
}
