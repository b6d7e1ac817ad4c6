package diagram

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ncarbonia/TR-13-app/src/analysis"
	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

// Schematic describes the rail-pair schematic: two parallel reference lines
// with a dimension line and value bubble per station, fail highlighting,
// correction callouts, and a bracket over the failing range.
type Schematic struct {
	Title           string
	RailTopLabel    string
	RailBottomLabel string
	Series          analysis.EvaluatedSeries
	// Width/Height default to 1180x360.
	Width  int
	Height int
}

// Schematic layout constants (pixels).
const (
	schMarginLeft  = 70
	schMarginRight = 70
	schRailTopY    = 140
	schRailBotY    = 250
	schCalloutY    = 64
	schBracketY    = 106
	schBubbleR     = 16.0
)

var (
	failStroke = chart.ColorRed
	failFill   = drawing.Color{R: 255, G: 228, B: 225, A: 255}
	okFill     = drawing.ColorWhite
)

// RenderSchematic draws the schematic as SVG. An empty series renders a
// placeholder document; a zero position span substitutes a minimum span of
// 1 ft so the horizontal scale never divides by zero.
func RenderSchematic(w io.Writer, sch Schematic) error {
	width, height := sch.Width, sch.Height
	if width <= 0 {
		width = 1180
	}
	if height <= 0 {
		height = 360
	}
	pts := sch.Series.Points
	if len(pts) == 0 {
		return renderPlaceholder(w, width, height, sch.Title, "No survey stations to draw.")
	}

	r, err := chart.SVG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFont(font)

	posMin := pts[0].PositionFt
	posMax := pts[len(pts)-1].PositionFt
	span := posMax - posMin
	if span < 1 {
		span = 1
	}
	innerW := float64(width - schMarginLeft - schMarginRight)
	xAt := func(posFt float64) int {
		return schMarginLeft + int((posFt-posMin)/span*innerW)
	}

	// Title and rail labels.
	r.SetFontColor(chart.ColorBlack)
	if sch.Title != "" {
		r.SetFontSize(14)
		r.Text(sch.Title, 16, 28)
	}
	r.SetFontSize(10)
	if sch.RailTopLabel != "" {
		r.Text(sch.RailTopLabel, 8, schRailTopY-8)
	}
	if sch.RailBottomLabel != "" {
		r.Text(sch.RailBottomLabel, 8, schRailBotY+20)
	}

	// The two reference rails.
	r.SetStrokeColor(chart.ColorBlack)
	r.SetStrokeWidth(2.0)
	for _, y := range []int{schRailTopY, schRailBotY} {
		r.MoveTo(schMarginLeft-10, y)
		r.LineTo(width-schMarginRight+10, y)
		r.Stroke()
	}

	midY := (schRailTopY + schRailBotY) / 2
	for _, p := range pts {
		x := xAt(p.PositionFt)
		fail := !(p.Pass && p.RatePass)

		// Station dimension line between the rails.
		r.SetStrokeColor(chart.ColorAlternateGray)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x, schRailTopY)
		r.LineTo(x, schRailBotY)
		r.Stroke()

		// Value bubble with the human-readable fraction label.
		stroke, fill := chart.ColorBlack, okFill
		if fail {
			stroke, fill = failStroke, failFill
		}
		r.SetStrokeColor(stroke)
		r.SetFillColor(fill)
		r.SetStrokeWidth(1.5)
		r.Circle(schBubbleR, x, midY)
		r.FillStroke()
		label := tolerance.NearestFraction(p.ValueIn)
		r.SetFontSize(10)
		r.SetFontColor(stroke)
		r.Text(label, x-r.MeasureText(label).Width()/2, midY+4)

		// Station position below the bottom rail.
		sta := fmt.Sprintf("%g'", p.PositionFt)
		r.SetFontColor(chart.ColorBlack)
		r.Text(sta, x-r.MeasureText(sta).Width()/2, schRailBotY+36)

		if fail {
			drawCorrectionCallout(r, x, p)
		}
	}

	if firstFt, lastFt, ok := sch.Series.FailSpan(); ok {
		drawAdjustmentBracket(r, xAt(firstFt), xAt(lastFt))
	}
	return r.Save(w)
}

// drawCorrectionCallout boxes the correction amount above the top rail. The
// prefix gives the direction: a positive measured value must come down, a
// negative one up.
func drawCorrectionCallout(r chart.Renderer, x int, p analysis.EvaluatedPoint) {
	prefix := "-"
	if p.ValueIn < 0 {
		prefix = "+"
	}
	label := prefix + tolerance.NearestFraction(p.CorrectionIn())
	r.SetFontSize(10)
	tw := r.MeasureText(label).Width()
	boxW := tw + 12
	boxH := 20
	x0, y0 := x-boxW/2, schCalloutY-boxH/2
	r.SetStrokeColor(failStroke)
	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeWidth(1.0)
	r.MoveTo(x0, y0)
	r.LineTo(x0+boxW, y0)
	r.LineTo(x0+boxW, y0+boxH)
	r.LineTo(x0, y0+boxH)
	r.Close()
	r.FillStroke()
	r.SetFontColor(failStroke)
	r.Text(label, x-tw/2, schCalloutY+4)
	// Leader down to the top rail.
	r.SetStrokeColor(failStroke)
	r.MoveTo(x, y0+boxH)
	r.LineTo(x, schRailTopY)
	r.Stroke()
}

// drawAdjustmentBracket spans the first-to-last failing station with a marker
// line and the adjustments label.
func drawAdjustmentBracket(r chart.Renderer, x0, x1 int) {
	// A single failing station still gets a visible bracket.
	if x1-x0 < 40 {
		mid := (x0 + x1) / 2
		x0, x1 = mid-20, mid+20
	}
	r.SetStrokeColor(failStroke)
	r.SetStrokeWidth(1.5)
	r.MoveTo(x0, schBracketY)
	r.LineTo(x1, schBracketY)
	r.Stroke()
	for _, x := range []int{x0, x1} {
		r.MoveTo(x, schBracketY)
		r.LineTo(x, schBracketY+8)
		r.Stroke()
	}
	label := "ADJUSTMENTS REQUIRED"
	r.SetFontSize(11)
	r.SetFontColor(failStroke)
	r.Text(label, (x0+x1)/2-r.MeasureText(label).Width()/2, schBracketY-6)
}
