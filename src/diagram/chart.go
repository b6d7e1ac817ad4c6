// Package diagram renders evaluated survey series into vector documents for
// the printable report: a per-station rail schematic and tolerance line
// charts. All output is SVG so the print shell can embed it directly.
package diagram

import (
	"fmt"
	"io"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

// Channel is one plotted polyline: values (inches) sampled at positions
// (feet). Typical channels: the two rails, or a rail-minus-beam eccentricity
// line.
type Channel struct {
	Name        string
	PositionsFt []float64
	ValuesIn    []float64
}

// ChartSpec describes one tolerance chart.
type ChartSpec struct {
	Title    string
	Channels []Channel
	Model    tolerance.Model
	// XGridStepFt / YGridStepIn default to 50 ft and 0.5 in.
	XGridStepFt float64
	YGridStepIn float64
	// Width/Height default to 1024x480.
	Width  int
	Height int
}

var channelPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
}

// RenderChart draws the chart as SVG: one polyline per channel, a dashed
// tolerance envelope (+/- the model's resolved tolerance per position), a
// marker with label at each channel's maximum absolute deviation, and a
// legend. An empty spec renders a placeholder document instead of failing.
func RenderChart(w io.Writer, spec ChartSpec) error {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 480
	}
	channels := validChannels(spec.Channels)
	if len(channels) == 0 {
		return renderPlaceholder(w, width, height, spec.Title, "No survey data available for this chart.")
	}
	xStep := spec.XGridStepFt
	if xStep <= 0 {
		xStep = 50
	}
	yStep := spec.YGridStepIn
	if yStep <= 0 {
		yStep = 0.5
	}

	posMin, posMax, maxAbs := channelExtents(channels)
	// Symmetric y range scaled past the larger of data and tolerance, with a
	// floor so an all-zero survey still gets a readable plot.
	yMax := math.Max(maxAbs, spec.Model.MaxTolerance()) * 1.25
	if yMax < 1.0 {
		yMax = 1.0
	}

	var series []chart.Series
	// Zero axis line (unnamed: kept out of the legend).
	series = append(series, chart.ContinuousSeries{
		XValues: []float64{posMin, posMax},
		YValues: []float64{0, 0},
		Style:   chart.Style{StrokeColor: chart.ColorBlack.WithAlpha(72), StrokeWidth: 1.0},
	})
	series = append(series, envelopeSeries(spec.Model, posMin, posMax)...)
	for i, c := range channels {
		col := channelPalette[i%len(channelPalette)]
		xs, ys := padToTwo(c.PositionsFt, c.ValuesIn)
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.75},
		})
		// Max-deviation marker.
		idx := maxAbsIndex(c.ValuesIn)
		series = append(series, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: c.PositionsFt[idx],
				YValue: c.ValuesIn[idx],
				Label:  fmt.Sprintf("max %.3f\"", c.ValuesIn[idx]),
			}},
			Style: chart.Style{StrokeColor: col, FillColor: col.WithAlpha(32)},
		})
	}

	gridStyle := chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1.0}
	xLo := math.Floor(posMin/xStep) * xStep
	xHi := math.Ceil(posMax/xStep) * xStep
	if xHi <= xLo {
		xHi = xLo + xStep
	}
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Station (ft)",
			Range:          &chart.ContinuousRange{Min: xLo, Max: xHi},
			Ticks:          stepTicks(xLo, xHi, xStep, "%g"),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Deviation (in)",
			Range:          &chart.ContinuousRange{Min: -yMax, Max: yMax},
			Ticks:          stepTicks(-math.Floor(yMax/yStep)*yStep, math.Floor(yMax/yStep)*yStep, yStep, "%.2f"),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.SVG, w)
}

// envelopeSeries samples the tolerance model over [posMin, posMax] into
// dashed upper/lower bound polylines. Zone edges are sampled twice (just
// before and at the edge) so zoned envelopes step instead of ramping.
func envelopeSeries(model tolerance.Model, posMin, posMax float64) []chart.Series {
	xs := []float64{posMin, posMax}
	for _, z := range model.Zones() {
		for _, edge := range []float64{z.StartFt, z.EndFt} {
			if edge > posMin && edge < posMax {
				xs = append(xs, edge-1e-6, edge)
			}
		}
	}
	sort.Float64s(xs)
	upper := make([]float64, len(xs))
	lower := make([]float64, len(xs))
	for i, x := range xs {
		tol := model.Resolve(x)
		upper[i] = tol
		lower[i] = -tol
	}
	dashed := chart.Style{
		StrokeColor:     chart.ColorAlternateGray,
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{5.0, 5.0},
	}
	return []chart.Series{
		chart.ContinuousSeries{Name: "Tolerance", XValues: xs, YValues: upper, Style: dashed},
		chart.ContinuousSeries{XValues: xs, YValues: lower, Style: dashed},
	}
}

func validChannels(in []Channel) []Channel {
	var out []Channel
	for _, c := range in {
		if len(c.PositionsFt) > 0 && len(c.PositionsFt) == len(c.ValuesIn) {
			out = append(out, c)
		}
	}
	return out
}

func channelExtents(channels []Channel) (posMin, posMax, maxAbs float64) {
	posMin, posMax = channels[0].PositionsFt[0], channels[0].PositionsFt[0]
	for _, c := range channels {
		for i, p := range c.PositionsFt {
			if p < posMin {
				posMin = p
			}
			if p > posMax {
				posMax = p
			}
			if a := math.Abs(c.ValuesIn[i]); a > maxAbs {
				maxAbs = a
			}
		}
	}
	// Zero-span guard: a single-station chart still needs a horizontal scale.
	if posMax-posMin < 1 {
		posMax = posMin + 1
	}
	return posMin, posMax, maxAbs
}

func maxAbsIndex(vals []float64) int {
	idx := 0
	for i, v := range vals {
		if math.Abs(v) > math.Abs(vals[idx]) {
			idx = i
		}
	}
	return idx
}

// padToTwo pads a single-point channel to two X values so go-chart can draw a
// line for it.
func padToTwo(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}

func stepTicks(lo, hi, step float64, format string) []chart.Tick {
	var ticks []chart.Tick
	// Index-based stepping avoids accumulation error producing "-0.00" labels.
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+1e-9 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return ticks
}

// renderPlaceholder writes a minimal framed SVG with an explanatory message,
// used whenever a diagram has nothing meaningful to draw.
func renderPlaceholder(w io.Writer, width, height int, title, msg string) error {
	r, err := chart.SVG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetStrokeColor(chart.ColorLightGray)
	r.SetStrokeWidth(1.0)
	r.MoveTo(0, 0)
	r.LineTo(width-1, 0)
	r.LineTo(width-1, height-1)
	r.LineTo(0, height-1)
	r.Close()
	r.Stroke()
	r.SetFont(font)
	r.SetFontColor(chart.ColorAlternateGray)
	if title != "" {
		r.SetFontSize(14)
		r.Text(title, 16, 28)
	}
	r.SetFontSize(12)
	r.Text(msg, 16, height/2)
	return r.Save(w)
}
