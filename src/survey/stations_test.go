package survey

import (
	"math"
	"testing"
)

func TestBuildStationsEndInclusive(t *testing.T) {
	// Length an exact multiple of spacing: closed semantics must include the
	// end-of-span station.
	got, err := BuildStations(0, 60, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []float64{0, 10, 20, 30, 40, 50, 60}
	if len(got) != len(want) {
		t.Fatalf("expected %d stations got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("station %d: expected %g got %g", i, want[i], got[i])
		}
	}
}

func TestBuildStationsPartialLastInterval(t *testing.T) {
	got, err := BuildStations(0, 55, 10)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 55 is not a station; the grid stops at 50.
	if len(got) != 6 || got[len(got)-1] != 50 {
		t.Fatalf("expected grid ending at 50, got %v", got)
	}
}

func TestBuildStationsNonZeroStart(t *testing.T) {
	got, err := BuildStations(5, 20, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(got) != 5 || got[0] != 5 || got[len(got)-1] != 25 {
		t.Fatalf("unexpected grid %v", got)
	}
}

func TestBuildStationsRejectsBadConfig(t *testing.T) {
	if _, err := BuildStations(0, 0, 10); err == nil {
		t.Fatalf("expected error for zero length")
	}
	if _, err := BuildStations(0, -5, 10); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if _, err := BuildStations(0, 60, 0); err == nil {
		t.Fatalf("expected error for zero spacing")
	}
}

func TestGoverningLength(t *testing.T) {
	if got := GoverningLength(120, 100); got != 100 {
		t.Fatalf("expected shorter span 100 got %g", got)
	}
	if got := GoverningLength(80, 80); got != 80 {
		t.Fatalf("expected 80 got %g", got)
	}
}
