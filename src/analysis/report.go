package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

// CheckRow is one line of the inspection results table.
type CheckRow struct {
	Description string `json:"description"`
	Measured    string `json:"measured"`
	Allowed     string `json:"allowed"`
	Pass        bool   `json:"pass"`
	Reference   string `json:"reference,omitempty"`
	// Suggestion is a plain-language correction hint, set on failing rows.
	Suggestion string `json:"suggestion,omitempty"`
}

// SegmentCheck evaluates a designed-vs-actual length (feet on both sides,
// e.g. a column-to-column distance or a rail-to-rail span). The deviation is
// converted to inches to match the rest of the report.
func SegmentCheck(description string, designedFt, actualFt, tolIn float64, reference string) CheckRow {
	devIn := math.Abs(actualFt-designedFt) * 12
	row := CheckRow{
		Description: description,
		Measured:    fmt.Sprintf("%.3f\" deviation (designed %.2f ft, actual %.2f ft)", devIn, designedFt, actualFt),
		Allowed:     fmt.Sprintf("%.3f\"", tolIn),
		Pass:        devIn <= tolIn,
		Reference:   reference,
	}
	if !row.Pass {
		row.Suggestion = Suggest(description)
	}
	return row
}

// StationRows converts an evaluated series into one report row per station,
// in position order. The description prefix names the check ("Rail A
// elevation", "Cross-level", ...).
func StationRows(prefix string, series EvaluatedSeries, reference string) []CheckRow {
	rows := make([]CheckRow, 0, len(series.Points))
	for _, p := range series.Points {
		row := CheckRow{
			Description: fmt.Sprintf("%s @ sta %g ft", prefix, p.PositionFt),
			Measured:    fmt.Sprintf("%.3f\" (rate %.3f\")", p.ValueIn, p.RateIn),
			Allowed:     fmt.Sprintf("%.3f\" (%s)", p.AllowedIn, tolerance.NearestFraction(p.AllowedIn)),
			Pass:        p.Pass && p.RatePass,
			Reference:   reference,
		}
		if !row.Pass {
			row.Suggestion = Suggest(row.Description)
		}
		rows = append(rows, row)
	}
	return rows
}

// Suggestion texts by check category. Matching is a lowercase substring test
// against the row description, with a generic fallback for categories the
// matcher does not recognize.
var suggestions = []struct {
	keyword string
	text    string
}{
	{"distance", "Re-measure the column-to-column distance and shim or slot the rail clips to restore the designed spacing."},
	{"baseline", "Re-shoot the baseline datum, then re-shim the rail pads to bring the running surface back to the design elevation."},
	{"cross-level", "Shim the low rail at the flagged stations until both rails read a common elevation."},
	{"span", "Re-gauge the rail-to-rail span at the flagged stations; loosen the clips, pull to the design span, and re-torque."},
	{"straightness", "Realign the rail laterally over the flagged run so the rail centerline tracks its design line."},
	{"eccentricity", "Shift the rail on its pads so the rail centerline returns over the supporting beam centerline."},
	{"elevation", "Shim the rail pads at the flagged stations to return the top of rail to the design elevation."},
}

// Suggest returns the plain-language correction suggestion for a failing
// check description.
func Suggest(description string) string {
	d := strings.ToLower(description)
	for _, s := range suggestions {
		if strings.Contains(d, s.keyword) {
			return s.text
		}
	}
	return "Investigate the flagged stations and correct the runway geometry to within the listed tolerance."
}
