// Package survey holds the measurement-side primitives of the runway
// inspection engine: station grids, imported survey series, and the package
// logger. Positions are feet along the runway axis; measured values are
// inches.
package survey

import (
	"fmt"
	"math"
)

// endEpsilonFt absorbs accumulated float error so an end-of-span station that
// lands on an exact multiple of the spacing is still emitted.
const endEpsilonFt = 1e-9

// BuildStations generates the ordered station grid start, start+spacing,
// start+2*spacing, ... using closed semantics: the end-of-span station is
// included whenever it lands on (or within epsilon of) start+length. The last
// column line of a runway is always a real survey station, so one inclusive
// rule applies everywhere.
//
// Non-positive length or spacing is a configuration error: the caller gets a
// nil grid and an error to surface, never a panic into the render path.
func BuildStations(startFt, lengthFt, spacingFt float64) ([]float64, error) {
	if lengthFt <= 0 {
		return nil, fmt.Errorf("station grid: span length must be positive, got %g ft", lengthFt)
	}
	if spacingFt <= 0 {
		return nil, fmt.Errorf("station grid: station spacing must be positive, got %g ft", spacingFt)
	}
	end := startFt + lengthFt
	var stations []float64
	for i := 0; ; i++ {
		pos := startFt + float64(i)*spacingFt
		if pos > end+endEpsilonFt {
			break
		}
		stations = append(stations, pos)
	}
	return stations, nil
}

// GoverningLength returns the span both sides of a runway share. When the two
// designed lengths differ the shorter governs: rail-to-rail comparisons past
// the shorter span are undefined.
func GoverningLength(aFt, bFt float64) float64 {
	return math.Min(aFt, bFt)
}
