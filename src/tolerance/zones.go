package tolerance

import (
	"strconv"
	"strings"

	"github.com/ncarbonia/TR-13-app/src/survey"
)

// ParseZoneTable parses a free-text zone table: one zone per non-blank line,
// "startFt, endFt, tolIn". Malformed lines are skipped with a debug log, not
// errors: the table is hand-typed in the field. Zero valid lines yields an
// empty slice and the caller falls back to a constant model.
func ParseZoneTable(text string) []Zone {
	var zones []Zone
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			survey.Debugf("zone table: skipping line %d: want 3 comma-separated fields, got %d", n+1, len(parts))
			continue
		}
		start, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		end, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		tol, err3 := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			survey.Debugf("zone table: skipping line %d: non-numeric field", n+1)
			continue
		}
		if end < start || tol < 0 {
			survey.Debugf("zone table: skipping line %d: inverted range or negative tolerance", n+1)
			continue
		}
		zones = append(zones, Zone{StartFt: start, EndFt: end, TolIn: tol})
	}
	return zones
}
