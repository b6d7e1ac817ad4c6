package tolerance

import "testing"

func TestConstantResolve(t *testing.T) {
	m := NewConstant(0.25)
	for _, pos := range []float64{-10, 0, 57.3, 1e6} {
		if got := m.Resolve(pos); got != 0.25 {
			t.Fatalf("resolve(%g): expected 0.25 got %g", pos, got)
		}
	}
	if m.Kind() != Constant {
		t.Fatalf("expected Constant kind")
	}
}

func TestConstantClampsNegative(t *testing.T) {
	if got := NewConstant(-0.5).Resolve(0); got != 0 {
		t.Fatalf("negative tolerance should clamp to zero, got %g", got)
	}
}

func TestZonedResolve(t *testing.T) {
	m := NewZoned([]Zone{
		{StartFt: 0, EndFt: 50, TolIn: 0.25},
		{StartFt: 50, EndFt: 100, TolIn: 0.5},
	}, 0.125)
	if got := m.Resolve(25); got != 0.25 {
		t.Fatalf("resolve(25): expected 0.25 got %g", got)
	}
	if got := m.Resolve(75); got != 0.5 {
		t.Fatalf("resolve(75): expected 0.5 got %g", got)
	}
	// Inclusive bounds, first match wins at the shared edge.
	if got := m.Resolve(50); got != 0.25 {
		t.Fatalf("resolve(50): expected first zone 0.25 got %g", got)
	}
	// Outside every zone: the caller-supplied fallback.
	if got := m.Resolve(150); got != 0.125 {
		t.Fatalf("resolve(150): expected fallback 0.125 got %g", got)
	}
}

func TestZonedDropsInvalidZones(t *testing.T) {
	m := NewZoned([]Zone{
		{StartFt: 40, EndFt: 10, TolIn: 0.5},  // inverted range
		{StartFt: 0, EndFt: 20, TolIn: -0.5},  // negative tolerance
		{StartFt: 0, EndFt: 20, TolIn: 0.375}, // valid
	}, 0)
	if got := m.Resolve(10); got != 0.375 {
		t.Fatalf("expected surviving zone 0.375 got %g", got)
	}
	if len(m.Zones()) != 1 {
		t.Fatalf("expected 1 surviving zone got %d", len(m.Zones()))
	}
}

func TestMaxTolerance(t *testing.T) {
	if got := NewConstant(0.25).MaxTolerance(); got != 0.25 {
		t.Fatalf("constant max: expected 0.25 got %g", got)
	}
	m := NewZoned([]Zone{
		{StartFt: 0, EndFt: 50, TolIn: 0.25},
		{StartFt: 50, EndFt: 100, TolIn: 0.5},
	}, 0.125)
	if got := m.MaxTolerance(); got != 0.5 {
		t.Fatalf("zoned max: expected 0.5 got %g", got)
	}
}
