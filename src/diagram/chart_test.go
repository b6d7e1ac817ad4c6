package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

func TestRenderChartEmptyInputPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	err := RenderChart(&buf, ChartSpec{Title: "Rail Elevation"})
	if err != nil {
		t.Fatalf("empty chart must render a placeholder, got error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected an SVG document, got: %.80s", out)
	}
	if !strings.Contains(out, "No survey data available") {
		t.Fatalf("expected placeholder message in output")
	}
}

func TestRenderChartTwoChannels(t *testing.T) {
	var buf bytes.Buffer
	spec := ChartSpec{
		Title: "Rail Elevation vs Baseline",
		Channels: []Channel{
			{Name: "Rail A", PositionsFt: []float64{0, 20, 40, 60}, ValuesIn: []float64{0, 0.2, -0.1, 0.05}},
			{Name: "Rail B", PositionsFt: []float64{0, 20, 40, 60}, ValuesIn: []float64{0.05, -0.3, 0.1, 0}},
		},
		Model: tolerance.NewConstant(0.25),
	}
	if err := RenderChart(&buf, spec); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected SVG output")
	}
	// Legend entries for both channels.
	if !strings.Contains(out, "Rail A") || !strings.Contains(out, "Rail B") {
		t.Fatalf("expected channel names in output")
	}
	// Max-deviation labels are drawn as text.
	if !strings.Contains(out, "max ") {
		t.Fatalf("expected max-deviation annotations")
	}
}

func TestRenderChartZonedEnvelope(t *testing.T) {
	var buf bytes.Buffer
	spec := ChartSpec{
		Title:    "Elevation",
		Channels: []Channel{{Name: "Rail A", PositionsFt: []float64{0, 50, 100}, ValuesIn: []float64{0.1, 0.2, 0.3}}},
		Model: tolerance.NewZoned([]tolerance.Zone{
			{StartFt: 0, EndFt: 50, TolIn: 0.25},
			{StartFt: 50, EndFt: 100, TolIn: 0.5},
		}, 0.25),
	}
	if err := RenderChart(&buf, spec); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Tolerance") {
		t.Fatalf("expected tolerance envelope legend entry")
	}
}

func TestRenderChartSingleStation(t *testing.T) {
	// A zero position span must not divide by zero; the channel is padded.
	var buf bytes.Buffer
	spec := ChartSpec{
		Title:    "Single",
		Channels: []Channel{{Name: "Rail A", PositionsFt: []float64{30}, ValuesIn: []float64{0.1}}},
		Model:    tolerance.NewConstant(0.25),
	}
	if err := RenderChart(&buf, spec); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected SVG output")
	}
}

func TestEnvelopeSeriesStepsAtZoneEdges(t *testing.T) {
	m := tolerance.NewZoned([]tolerance.Zone{
		{StartFt: 0, EndFt: 50, TolIn: 0.25},
		{StartFt: 50, EndFt: 100, TolIn: 0.5},
	}, 0.25)
	series := envelopeSeries(m, 0, 100)
	if len(series) != 2 {
		t.Fatalf("expected upper and lower bound series, got %d", len(series))
	}
}

func TestChannelExtentsZeroSpanGuard(t *testing.T) {
	lo, hi, maxAbs := channelExtents([]Channel{{Name: "A", PositionsFt: []float64{30}, ValuesIn: []float64{-0.4}}})
	if hi-lo < 1 {
		t.Fatalf("expected minimum span of 1, got [%g,%g]", lo, hi)
	}
	if maxAbs != 0.4 {
		t.Fatalf("expected max |dev| 0.4 got %g", maxAbs)
	}
}
