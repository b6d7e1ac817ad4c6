package tolerance

import "testing"

func TestNearestFraction(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.0, `0"`},
		{0.26, `1/4"`}, // 0.01 from 1/4 vs 0.0525 from 5/16
		{0.30, `5/16"`},
		{0.5, `1/2"`},
		{1.3, `1 1/4"`},
		{10.0, `3"`}, // clamps to the largest table entry
		{-0.125, `1/8"`},
	}
	for _, c := range cases {
		if got := NearestFraction(c.in); got != c.want {
			t.Errorf("NearestFraction(%g): expected %s got %s", c.in, c.want, got)
		}
	}
}

func TestNearestFractionTieKeepsLowerEntry(t *testing.T) {
	// 0.09375 is exactly midway between 1/16 and 1/8; the strictly-less
	// comparison keeps the lower table index.
	if got := NearestFraction(0.09375); got != `1/16"` {
		t.Fatalf("tie break: expected 1/16\" got %s", got)
	}
}
