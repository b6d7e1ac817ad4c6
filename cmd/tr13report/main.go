// tr13report entrypoint.
//
// Two modes:
//  1. Report mode (default): read a survey CSV, evaluate every check against
//     the selected inspection profile (plus an optional zoned elevation
//     tolerance table), and write report.json plus the schematic and chart
//     SVGs into -out-dir.
//  2. Field-sheet mode (-survey omitted, -length-a-ft given): print the
//     station grid a crew should measure at and exit; with both -length-a-ft
//     and -length-b-ft the shorter span governs the grid.
//
// Design notes:
// - Parse and configuration errors exit nonzero with a logged message;
//   degenerate-but-valid surveys still produce placeholder diagrams.
// - Dependency direction: main -> analysis/diagram for evaluation and
//   rendering; survey/tolerance for ingest and configuration only.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ncarbonia/TR-13-app/src/analysis"
	"github.com/ncarbonia/TR-13-app/src/diagram"
	"github.com/ncarbonia/TR-13-app/src/survey"
	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

// report is the JSON document written next to the SVGs.
type report struct {
	GeneratedAt string              `json:"generated_at"`
	Profile     string              `json:"profile"`
	Pass        bool                `json:"pass"`
	Rows        []analysis.CheckRow `json:"rows"`
}

func main() {
	surveyPath := flag.String("survey", "", "Path to survey CSV (headers: station, rail_a, rail_b; optional beam_a, beam_b)")
	profilesPath := flag.String("profiles", "", "Optional path to inspection profiles YAML")
	profileName := flag.String("profile", "", "Profile name to select from -profiles (default: built-in CMAA Class A-D)")
	zonesPath := flag.String("zones", "", "Optional path to a zoned elevation tolerance table (lines: startFt, endFt, tolIn)")
	outDir := flag.String("out-dir", ".", "Directory for report.json and SVG output")
	refDistance := flag.Float64("ref-distance", 0, "Rate-of-change reference distance in ft (0 = profile value)")
	designedSpan := flag.Float64("designed-span-ft", 0, "Designed rail-to-rail span in ft (0 skips the span segment check)")
	actualSpan := flag.Float64("actual-span-ft", 0, "Measured rail-to-rail span in ft")
	lengthA := flag.Float64("length-a-ft", 0, "Designed runway length side A in ft (field-sheet mode)")
	lengthB := flag.Float64("length-b-ft", 0, "Designed runway length side B in ft (0 = same as side A)")
	startFt := flag.Float64("start-ft", 0, "First station position in ft (field-sheet mode)")
	spacing := flag.Float64("spacing-ft", 0, "Station spacing in ft (0 = profile value)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	survey.SetLogLevel(*logLevel)

	prof := tolerance.DefaultProfile()
	if *profilesPath != "" {
		ps, err := tolerance.LoadProfiles(*profilesPath)
		if err != nil {
			survey.Errorf("%v", err)
			os.Exit(1)
		}
		if *profileName != "" {
			p, ok := ps.Find(*profileName)
			if !ok {
				survey.Errorf("profile %q not found in %s", *profileName, *profilesPath)
				os.Exit(1)
			}
			prof = p
		} else {
			prof = ps.Profiles[0]
		}
	}
	if *refDistance > 0 {
		prof.ReferenceDistanceFt = *refDistance
	}
	if *spacing > 0 {
		prof.StationSpacingFt = *spacing
	}

	if *surveyPath == "" {
		if *lengthA > 0 {
			printFieldSheet(*startFt, *lengthA, *lengthB, prof.StationSpacingFt)
			return
		}
		survey.Errorf("either -survey or -length-a-ft is required")
		flag.Usage()
		os.Exit(2)
	}

	ser, err := loadSurvey(*surveyPath)
	if err != nil {
		survey.Errorf("%v", err)
		os.Exit(1)
	}
	survey.Infof("survey: %d stations from %g to %g ft (%d rows rejected)",
		ser.Len(), ser.StationsFt[0], ser.StationsFt[ser.Len()-1], ser.Rejected)

	elevationModel := tolerance.NewConstant(prof.ElevationTolIn)
	if *zonesPath != "" {
		text, rerr := os.ReadFile(*zonesPath)
		if rerr != nil {
			survey.Errorf("read zones: %v", rerr)
			os.Exit(1)
		}
		if zones := tolerance.ParseZoneTable(string(text)); len(zones) > 0 {
			elevationModel = tolerance.NewZoned(zones, prof.ElevationTolIn)
		} else {
			survey.Warnf("zone table %s had no valid lines; using constant %.3f\"", *zonesPath, prof.ElevationTolIn)
		}
	}

	// Imported stations may be irregular, so the nearest-to-reference
	// neighbor variant applies (AdjacentOnly stays false).
	opts := analysis.EvaluateOptions{
		RateToleranceIn:     prof.RateTolIn,
		ReferenceDistanceFt: prof.ReferenceDistanceFt,
	}
	railA := analysis.Evaluate(ser.StationsFt, ser.RailA, elevationModel, opts)
	railB := analysis.Evaluate(ser.StationsFt, ser.RailB, elevationModel, opts)
	crossModel := tolerance.NewConstant(prof.CrossLevelTolIn)
	cross := analysis.Evaluate(ser.StationsFt, ser.CrossLevel(), crossModel, opts)

	rep := report{GeneratedAt: time.Now().UTC().Format(time.RFC3339), Profile: prof.Name, Pass: true}
	if *designedSpan > 0 {
		rep.Rows = append(rep.Rows, analysis.SegmentCheck("Rail-to-rail span deviation", *designedSpan, *actualSpan, prof.SpanTolIn, prof.Reference))
	}
	rep.Rows = append(rep.Rows, analysis.StationRows("Rail A elevation", railA, prof.Reference)...)
	rep.Rows = append(rep.Rows, analysis.StationRows("Rail B elevation", railB, prof.Reference)...)
	rep.Rows = append(rep.Rows, analysis.StationRows("Cross-level", cross, prof.Reference)...)

	charts := []struct {
		file string
		spec diagram.ChartSpec
	}{
		{"elevation_chart.svg", diagram.ChartSpec{
			Title: "Rail Elevation vs Baseline",
			Channels: []diagram.Channel{
				{Name: "Rail A", PositionsFt: ser.StationsFt, ValuesIn: ser.RailA},
				{Name: "Rail B", PositionsFt: ser.StationsFt, ValuesIn: ser.RailB},
			},
			Model: elevationModel,
		}},
		{"cross_level_chart.svg", diagram.ChartSpec{
			Title:    "Cross-Level (Rail A - Rail B)",
			Channels: []diagram.Channel{{Name: "Cross-level", PositionsFt: ser.StationsFt, ValuesIn: ser.CrossLevel()}},
			Model:    crossModel,
		}},
	}

	if ser.HasBeams() {
		eccModel := tolerance.NewConstant(prof.StraightnessTolIn)
		eccA := analysis.Evaluate(ser.StationsFt, ser.EccentricityA(), eccModel, opts)
		eccB := analysis.Evaluate(ser.StationsFt, ser.EccentricityB(), eccModel, opts)
		rep.Rows = append(rep.Rows, analysis.StationRows("Rail A eccentricity", eccA, prof.Reference)...)
		rep.Rows = append(rep.Rows, analysis.StationRows("Rail B eccentricity", eccB, prof.Reference)...)
		charts = append(charts, struct {
			file string
			spec diagram.ChartSpec
		}{"eccentricity_chart.svg", diagram.ChartSpec{
			Title: "Rail Eccentricity over Beam Centerline",
			Channels: []diagram.Channel{
				{Name: "Rail A - Beam A", PositionsFt: ser.StationsFt, ValuesIn: ser.EccentricityA()},
				{Name: "Rail B - Beam B", PositionsFt: ser.StationsFt, ValuesIn: ser.EccentricityB()},
			},
			Model: eccModel,
		}})
	} else {
		// Still emit the document so the report layout stays stable.
		charts = append(charts, struct {
			file string
			spec diagram.ChartSpec
		}{"eccentricity_chart.svg", diagram.ChartSpec{Title: "Rail Eccentricity over Beam Centerline"}})
	}

	for _, row := range rep.Rows {
		if !row.Pass {
			rep.Pass = false
			break
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		survey.Errorf("out dir: %v", err)
		os.Exit(1)
	}
	if err := writeJSON(filepath.Join(*outDir, "report.json"), rep); err != nil {
		survey.Errorf("write report: %v", err)
		os.Exit(1)
	}
	if err := writeSVG(filepath.Join(*outDir, "schematic.svg"), func(f *os.File) error {
		return diagram.RenderSchematic(f, diagram.Schematic{
			Title:           "Cross-Level Schematic",
			RailTopLabel:    "RAIL A",
			RailBottomLabel: "RAIL B",
			Series:          cross,
		})
	}); err != nil {
		survey.Errorf("write schematic: %v", err)
		os.Exit(1)
	}
	for _, c := range charts {
		spec := c.spec
		if err := writeSVG(filepath.Join(*outDir, c.file), func(f *os.File) error {
			return diagram.RenderChart(f, spec)
		}); err != nil {
			survey.Errorf("write %s: %v", c.file, err)
			os.Exit(1)
		}
	}

	verdict := "PASS"
	if !rep.Pass {
		verdict = "FAIL"
	}
	survey.Infof("report: %d rows, verdict %s, output in %s", len(rep.Rows), verdict, *outDir)
	if !rep.Pass {
		for _, row := range rep.Rows {
			if !row.Pass {
				survey.Warnf("FAIL %s: measured %s, allowed %s", row.Description, row.Measured, row.Allowed)
			}
		}
	}
}

// loadSurvey reads the CSV and hands the raw records to the survey importer.
func loadSurvey(path string) (*survey.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read survey csv: %w", err)
	}
	return survey.ParseSurveyTable(records)
}

// printFieldSheet emits the station grid a crew should measure at.
func printFieldSheet(startFt, lengthA, lengthB, spacingFt float64) {
	length := lengthA
	if lengthB > 0 {
		length = survey.GoverningLength(lengthA, lengthB)
	}
	stations, err := survey.BuildStations(startFt, length, spacingFt)
	if err != nil {
		survey.Errorf("%v", err)
		os.Exit(1)
	}
	fmt.Printf("station,rail_a,rail_b,beam_a,beam_b\n")
	for _, s := range stations {
		fmt.Printf("%g,,,,\n", s)
	}
	survey.Infof("field sheet: %d stations over %g ft at %g ft spacing", len(stations), length, spacingFt)
}

func writeJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeSVG(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
