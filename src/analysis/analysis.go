// Package analysis evaluates measured survey series against tolerance models:
// per-station pass/fail, rate-of-change between stations, and aggregate
// verdicts. Everything here is a pure function over its inputs; the caller
// owns display and persistence.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

// DefaultReferenceDistanceFt is the rate-of-change normalization distance
// used in the field when none is configured.
const DefaultReferenceDistanceFt = 20.0

// EvaluateOptions controls one evaluation pass.
type EvaluateOptions struct {
	// RateToleranceIn is the allowed rate of change per reference distance.
	// Note a zero tolerance is taken literally (only an exactly flat series
	// passes); use RateCheckDisabled to skip the rate check entirely.
	RateToleranceIn float64
	// ReferenceDistanceFt normalizes rates; zero means the 20 ft default.
	ReferenceDistanceFt float64
	// AdjacentOnly compares each point to its predecessor instead of scanning
	// for the neighbor nearest the reference distance. Use it for evenly
	// spaced generated grids; the scan variant handles irregular imports.
	AdjacentOnly bool
	// RateCheckDisabled marks every rate as passing regardless of tolerance.
	RateCheckDisabled bool
}

// EvaluatedPoint is one station's verdict.
type EvaluatedPoint struct {
	PositionFt float64 `json:"position_ft"`
	ValueIn    float64 `json:"value_in"`
	AllowedIn  float64 `json:"allowed_in"`
	Pass       bool    `json:"pass"`
	RateIn     float64 `json:"rate_in"`
	RatePass   bool    `json:"rate_pass"`
}

// EvaluatedSeries is the result of one evaluation pass plus summary figures
// for charts and report rows.
type EvaluatedSeries struct {
	Points []EvaluatedPoint `json:"points"`
	// Pass is the logical AND over every point's Pass and RatePass.
	Pass bool `json:"pass"`
	// MaxAbsIn is the largest absolute deviation; MaxAbsIdx its point index
	// (-1 for an empty series).
	MaxAbsIn  float64 `json:"max_abs_in"`
	MaxAbsIdx int     `json:"max_abs_idx"`
	// MeanAbsIn is the mean absolute deviation across stations.
	MeanAbsIn float64 `json:"mean_abs_in"`
	FailCount int     `json:"fail_count"`
}

// Evaluate checks values (inches) measured at positions (feet) against the
// tolerance model. Inputs must be parallel slices with positions sorted
// ascending; neither slice is mutated, and evaluating the same inputs twice
// yields identical results.
//
// Per-point pass is |value| <= resolved tolerance, boundary inclusive. The
// rate at each point is the deviation against a neighbor normalized as if it
// occurred over exactly the reference distance:
//
//	rate = |v_i - v_j| * refDist / |p_i - p_j|
//
// The neighbor scan is quadratic in station count, which is fine at field
// scale (tens to low hundreds of stations).
func Evaluate(positions, values []float64, model tolerance.Model, opts EvaluateOptions) EvaluatedSeries {
	refDist := opts.ReferenceDistanceFt
	if refDist <= 0 {
		refDist = DefaultReferenceDistanceFt
	}
	n := len(positions)
	if len(values) < n {
		n = len(values)
	}
	out := EvaluatedSeries{Pass: true, MaxAbsIdx: -1}
	if n == 0 {
		return out
	}
	out.Points = make([]EvaluatedPoint, 0, n)
	absVals := make([]float64, n)
	for i := 0; i < n; i++ {
		p := EvaluatedPoint{PositionFt: positions[i], ValueIn: values[i]}
		p.AllowedIn = model.Resolve(p.PositionFt)
		p.Pass = math.Abs(p.ValueIn) <= p.AllowedIn
		p.RateIn = rateAt(i, positions[:n], values[:n], refDist, opts.AdjacentOnly)
		p.RatePass = opts.RateCheckDisabled || p.RateIn <= opts.RateToleranceIn
		if !p.Pass || !p.RatePass {
			out.Pass = false
			out.FailCount++
		}
		absVals[i] = math.Abs(p.ValueIn)
		out.Points = append(out.Points, p)
	}
	out.MaxAbsIdx = floats.MaxIdx(absVals)
	out.MaxAbsIn = absVals[out.MaxAbsIdx]
	out.MeanAbsIn = stat.Mean(absVals, nil)
	return out
}

// rateAt computes the normalized rate of change for point i. Points sharing
// i's exact position are excluded (zero-distance guard); with no valid
// neighbor the rate is 0 and passes.
func rateAt(i int, positions, values []float64, refDist float64, adjacentOnly bool) float64 {
	if adjacentOnly {
		if i == 0 {
			return 0
		}
		dx := math.Abs(positions[i] - positions[i-1])
		if dx == 0 {
			return 0
		}
		return math.Abs(values[i]-values[i-1]) * refDist / dx
	}
	// Nearest-to-reference-distance neighbor; strictly-less comparison keeps
	// the first-encountered candidate on ties.
	best := -1
	var bestDiff float64
	for j := range positions {
		if j == i || positions[j] == positions[i] {
			continue
		}
		d := math.Abs(math.Abs(positions[i]-positions[j]) - refDist)
		if best == -1 || d < bestDiff {
			best, bestDiff = j, d
		}
	}
	if best == -1 {
		return 0
	}
	dx := math.Abs(positions[i] - positions[best])
	return math.Abs(values[i]-values[best]) * refDist / dx
}

// FailSpan returns the position range [firstFt, lastFt] covering every
// failing station, and false when nothing fails. The schematic renderer
// brackets this range.
func (s *EvaluatedSeries) FailSpan() (firstFt, lastFt float64, ok bool) {
	for _, p := range s.Points {
		if p.Pass && p.RatePass {
			continue
		}
		if !ok {
			firstFt, lastFt, ok = p.PositionFt, p.PositionFt, true
			continue
		}
		lastFt = p.PositionFt
	}
	return firstFt, lastFt, ok
}

// CorrectionIn returns the excess deviation to remove at a point:
// max(0, |value| - allowed). Zero for passing points.
func (p EvaluatedPoint) CorrectionIn() float64 {
	c := math.Abs(p.ValueIn) - p.AllowedIn
	if c < 0 {
		return 0
	}
	return c
}
