package measurement

import "math"

// Dimensions is a dual-unit (feet + inches) rectangular measurement as entered
// on site. Inches are conceptually in [0, 12) but never rejected; absent or
// negative components simply contribute nothing.
type Dimensions struct {
	LengthFeet   int
	LengthInches int
	WidthFeet    int
	WidthInches  int
}

// IsSet reports whether the rectangle was actually measured. LengthFeet > 0 is
// the authoritative signal: an SQFT item without it is a flat-quantity entry
// (irregular area), not a zero-sized room.
func (d Dimensions) IsSet() bool {
	return d.LengthFeet > 0
}

// Area returns the area in square feet, rounded half-up to 2 decimals.
// 9'6" x 7'0" -> 66.50, 12'3" x 8'9" -> 107.19.
func (d Dimensions) Area() float64 {
	length := float64(d.LengthFeet) + float64(d.LengthInches)/12
	width := float64(d.WidthFeet) + float64(d.WidthInches)/12
	return Round2(length * width)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
