package survey

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Series is one imported survey: parallel channels sampled at the same
// stations. StationsFt is sorted ascending. RailA/RailB (top-of-rail
// elevations or offsets, inches) are always present; BeamA/BeamB (supporting
// beam reference elevations) are optional and either both empty or the same
// length as StationsFt.
type Series struct {
	StationsFt []float64
	RailA      []float64
	RailB      []float64
	BeamA      []float64
	BeamB      []float64
	// Rejected counts imported rows dropped for failing numeric parse on a
	// required column. Aggregates downstream reflect accepted rows only.
	Rejected int
}

// Len returns the number of surveyed stations.
func (s *Series) Len() int { return len(s.StationsFt) }

// HasBeams reports whether the optional beam reference channels were imported.
func (s *Series) HasBeams() bool { return len(s.BeamA) == s.Len() && s.Len() > 0 }

// CrossLevel returns the rail A minus rail B elevation difference per station.
func (s *Series) CrossLevel() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.RailA[i] - s.RailB[i]
	}
	return out
}

// EccentricityA returns rail A minus beam A per station (rail centerline
// offset from its supporting beam). Nil when beams were not surveyed.
func (s *Series) EccentricityA() []float64 { return eccentricity(s.RailA, s.BeamA) }

// EccentricityB returns rail B minus beam B per station. Nil when beams were
// not surveyed.
func (s *Series) EccentricityB() []float64 { return eccentricity(s.RailB, s.BeamB) }

func eccentricity(rail, beam []float64) []float64 {
	if len(beam) != len(rail) || len(rail) == 0 {
		return nil
	}
	out := make([]float64, len(rail))
	for i := range out {
		out[i] = rail[i] - beam[i]
	}
	return out
}

// Column header names accepted on import (matched case-insensitively, spaces
// normalized to underscores).
const (
	colStation = "station"
	colRailA   = "rail_a"
	colRailB   = "rail_b"
	colBeamA   = "beam_a"
	colBeamB   = "beam_b"
)

// ParseSurveyTable converts headered rows (first record is the header) into a
// Series. Required columns: station, rail_a, rail_b. Optional: beam_a, beam_b
// (both or neither). Rows failing numeric parse on any imported column are
// dropped deterministically and counted in Rejected; fewer than 2 surviving
// rows is a reportable input error. Rows are sorted by station ascending.
func ParseSurveyTable(records [][]string) (*Series, error) {
	if len(records) < 1 {
		return nil, fmt.Errorf("survey import: no header row")
	}
	idx := map[string]int{}
	for i, h := range records[0] {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	for _, required := range []string{colStation, colRailA, colRailB} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("survey import: missing required column %q", required)
		}
	}
	beamACol, hasBeamA := idx[colBeamA]
	beamBCol, hasBeamB := idx[colBeamB]
	hasBeams := hasBeamA && hasBeamB

	type row struct {
		station, railA, railB, beamA, beamB float64
	}
	var rows []row
	rejected := 0
	for n, rec := range records[1:] {
		field := func(col int) (float64, bool) {
			if col >= len(rec) {
				return 0, false
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
			return v, err == nil
		}
		r := row{}
		var ok bool
		if r.station, ok = field(idx[colStation]); !ok {
			Debugf("survey import: dropping row %d: bad station value", n+2)
			rejected++
			continue
		}
		if r.railA, ok = field(idx[colRailA]); !ok {
			Debugf("survey import: dropping row %d: bad rail_a value", n+2)
			rejected++
			continue
		}
		if r.railB, ok = field(idx[colRailB]); !ok {
			Debugf("survey import: dropping row %d: bad rail_b value", n+2)
			rejected++
			continue
		}
		if hasBeams {
			okA, okB := false, false
			r.beamA, okA = field(beamACol)
			r.beamB, okB = field(beamBCol)
			if !okA || !okB {
				Debugf("survey import: dropping row %d: bad beam value", n+2)
				rejected++
				continue
			}
		}
		rows = append(rows, r)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("survey import: need at least 2 valid rows, got %d (%d rejected)", len(rows), rejected)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].station < rows[j].station })

	s := &Series{Rejected: rejected}
	for _, r := range rows {
		s.StationsFt = append(s.StationsFt, r.station)
		s.RailA = append(s.RailA, r.railA)
		s.RailB = append(s.RailB, r.railB)
		if hasBeams {
			s.BeamA = append(s.BeamA, r.beamA)
			s.BeamB = append(s.BeamB, r.beamB)
		}
	}
	if rejected > 0 {
		Infof("survey import: accepted %d rows, rejected %d", len(rows), rejected)
	}
	return s, nil
}
