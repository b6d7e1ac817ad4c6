package tolerance

import "math"

// fractionTable maps canonical fractional-inch values to display labels, in
// ascending order. Field reports call out corrections in these increments.
var fractionTable = []struct {
	in    float64
	label string
}{
	{0, `0"`},
	{0.0625, `1/16"`},
	{0.125, `1/8"`},
	{0.1875, `3/16"`},
	{0.25, `1/4"`},
	{0.3125, `5/16"`},
	{0.375, `3/8"`},
	{0.4375, `7/16"`},
	{0.5, `1/2"`},
	{0.625, `5/8"`},
	{0.75, `3/4"`},
	{0.875, `7/8"`},
	{1, `1"`},
	{1.125, `1 1/8"`},
	{1.25, `1 1/4"`},
	{1.5, `1 1/2"`},
	{2, `2"`},
	{3, `3"`},
}

// NearestFraction returns the display label of the table entry closest to
// |valueIn|; values beyond the table clamp to its last entry. Ties keep the
// lower table index (strictly-less comparison). This is a lossy display
// transform only: pass/fail always compares the raw numbers.
func NearestFraction(valueIn float64) string {
	v := math.Abs(valueIn)
	best := 0
	bestDiff := math.Abs(v - fractionTable[0].in)
	for i := 1; i < len(fractionTable); i++ {
		if d := math.Abs(v - fractionTable[i].in); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return fractionTable[best].label
}
