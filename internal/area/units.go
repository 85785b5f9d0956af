// Package area converts room measurements, computes room areas and
// aggregates them into carpet and claimed area totals.
package area

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InchesPerFoot is the sub-unit divisor used by ToFeet.
const InchesPerFoot = 12

// ToFeet converts a feet and inches pair into decimal feet.
// Inches are not clamped: 10 ft 18 in is 11.5 ft.
func ToFeet(feet, inches float64) float64 {
	return feet + inches/InchesPerFoot
}

// Dimension is a measurement entered as whole feet plus inches.
type Dimension struct {
	Feet   float64 `json:"ft" yaml:"ft" validate:"finite,gte=0"`
	Inches float64 `json:"in" yaml:"in" validate:"finite,gte=0"`
}

// Decimal returns the dimension in decimal feet.
func (d Dimension) Decimal() float64 {
	return ToFeet(d.Feet, d.Inches)
}

// String formats the dimension as 10'6".
func (d Dimension) String() string {
	return fmt.Sprintf("%s'%s\"", formatNumber(d.Feet), formatNumber(d.Inches))
}

// ParseDimension parses a dimension typed on the command line.
// Accepted forms: 10'6, 10'6", 10-6, 10ft6in, 10ft, 10 and 10.5 (decimal
// feet). A bare value with an inch suffix, such as 6in or 6", is inches only.
func ParseDimension(s string) (Dimension, error) {
	raw := strings.TrimSpace(strings.ToLower(s))
	if raw == "" {
		return Dimension{}, fmt.Errorf("empty dimension")
	}

	trimmed := strings.TrimSuffix(raw, `"`)
	trimmed = strings.TrimSuffix(trimmed, "in")
	inchSuffix := trimmed != raw

	var ftPart, inPart string
	switch {
	case strings.Contains(trimmed, "'"):
		ftPart, inPart, _ = strings.Cut(trimmed, "'")
	case strings.Contains(trimmed, "ft"):
		ftPart, inPart, _ = strings.Cut(trimmed, "ft")
	case strings.Contains(trimmed, "-"):
		ftPart, inPart, _ = strings.Cut(trimmed, "-")
	case inchSuffix:
		inches, err := parseMeasure(trimmed)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid inches in %q", s)
		}
		return Dimension{Inches: inches}, nil
	default:
		ftPart = trimmed
	}

	feet, err := parseMeasure(ftPart)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid feet in %q", s)
	}

	var inches float64
	if in := strings.TrimSpace(inPart); in != "" {
		inches, err = parseMeasure(in)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid inches in %q", s)
		}
	}

	return Dimension{Feet: feet, Inches: inches}, nil
}

// parseMeasure parses one finite number. Inf and NaN spellings are rejected.
func parseMeasure(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !IsFinite(v) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// formatNumber renders a float as a plain decimal without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
