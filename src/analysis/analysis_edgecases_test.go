package analysis

import (
	"reflect"
	"testing"

	"github.com/ncarbonia/TR-13-app/src/tolerance"
)

func TestEvaluateEmptySeries(t *testing.T) {
	res := Evaluate(nil, nil, tolerance.NewConstant(0.25), EvaluateOptions{})
	if !res.Pass || len(res.Points) != 0 {
		t.Fatalf("empty series: expected vacuous pass with no points, got %+v", res)
	}
	if res.MaxAbsIdx != -1 {
		t.Fatalf("empty series: expected MaxAbsIdx -1 got %d", res.MaxAbsIdx)
	}
	if _, _, ok := res.FailSpan(); ok {
		t.Fatalf("empty series has no fail span")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	positions := []float64{0, 10, 20, 30}
	values := []float64{0.1, 0.4, 0.2, 0.05}
	posCopy := append([]float64(nil), positions...)
	valCopy := append([]float64(nil), values...)
	m := tolerance.NewConstant(0.25)
	opts := EvaluateOptions{RateToleranceIn: 0.25}

	first := Evaluate(positions, values, m, opts)
	second := Evaluate(positions, values, m, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluation is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
	if !reflect.DeepEqual(positions, posCopy) || !reflect.DeepEqual(values, valCopy) {
		t.Fatalf("inputs were mutated")
	}
}

func TestEvaluateZeroTolerance(t *testing.T) {
	// All-zero tolerance is valid-but-strict, not an error.
	res := Evaluate([]float64{0, 20}, []float64{0, 0.01}, tolerance.NewConstant(0), EvaluateOptions{RateCheckDisabled: true})
	if !res.Points[0].Pass {
		t.Fatalf("zero deviation passes a zero tolerance")
	}
	if res.Points[1].Pass || res.Pass {
		t.Fatalf("any deviation fails a zero tolerance")
	}
}

func TestEvaluateMismatchedLengths(t *testing.T) {
	// Extra positions without values are ignored rather than read past.
	res := Evaluate([]float64{0, 10, 20}, []float64{0.1, 0.2}, tolerance.NewConstant(1), EvaluateOptions{RateCheckDisabled: true})
	if len(res.Points) != 2 {
		t.Fatalf("expected evaluation over the shorter channel, got %d points", len(res.Points))
	}
}
