// Package tolerance resolves allowed deviations along a runway and formats
// correction amounts for report callouts. A Model is a tagged variant:
// either one constant tolerance for the whole span or a zoned table with
// positional lookup.
package tolerance

// Kind selects the tolerance variant.
type Kind int

const (
	Constant Kind = iota
	Zoned
)

// Zone applies one tolerance over an inclusive position range.
type Zone struct {
	StartFt float64
	EndFt   float64
	TolIn   float64
}

// Model resolves the allowed deviation (inches) at a linear position (feet).
type Model struct {
	kind       Kind
	constIn    float64
	zones      []Zone
	fallbackIn float64
}

// NewConstant returns a Model that resolves the same tolerance at every
// position. A negative input clamps to zero: a zero allowance is the
// conservative reading of invalid configuration.
func NewConstant(tolIn float64) Model {
	if tolIn < 0 {
		tolIn = 0
	}
	return Model{kind: Constant, constIn: tolIn}
}

// NewZoned returns a Model that resolves by first-match-wins linear scan over
// zones (inclusive both ends). Positions outside every zone resolve to
// fallbackIn. Zones with a negative tolerance or an inverted range are
// dropped. The scan is linear in zone count: zone tables are field-entered
// and rarely more than a handful of lines.
func NewZoned(zones []Zone, fallbackIn float64) Model {
	if fallbackIn < 0 {
		fallbackIn = 0
	}
	kept := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if z.TolIn < 0 || z.EndFt < z.StartFt {
			continue
		}
		kept = append(kept, z)
	}
	return Model{kind: Zoned, zones: kept, fallbackIn: fallbackIn}
}

// Kind reports which variant this model is.
func (m Model) Kind() Kind { return m.kind }

// Resolve returns the allowed deviation at posFt.
func (m Model) Resolve(posFt float64) float64 {
	if m.kind == Zoned {
		for _, z := range m.zones {
			if posFt >= z.StartFt && posFt <= z.EndFt {
				return z.TolIn
			}
		}
		return m.fallbackIn
	}
	return m.constIn
}

// MaxTolerance returns the largest value Resolve can return; the chart
// renderer uses it to scale the tolerance envelope.
func (m Model) MaxTolerance() float64 {
	if m.kind == Constant {
		return m.constIn
	}
	max := m.fallbackIn
	for _, z := range m.zones {
		if z.TolIn > max {
			max = z.TolIn
		}
	}
	return max
}

// Zones returns the zone table (nil for constant models). The chart renderer
// samples zone edges so the envelope steps where the tolerance changes.
func (m Model) Zones() []Zone { return m.zones }
