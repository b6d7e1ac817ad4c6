package tolerance

import "testing"

func TestParseZoneTable(t *testing.T) {
	text := "0, 50, 0.25\n\n50, 100, 0.5\n"
	zones := ParseZoneTable(text)
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones got %d: %v", len(zones), zones)
	}
	if zones[0] != (Zone{StartFt: 0, EndFt: 50, TolIn: 0.25}) {
		t.Fatalf("unexpected first zone %+v", zones[0])
	}
	if zones[1] != (Zone{StartFt: 50, EndFt: 100, TolIn: 0.5}) {
		t.Fatalf("unexpected second zone %+v", zones[1])
	}
}

func TestParseZoneTableSkipsMalformedLines(t *testing.T) {
	text := "0, 50, 0.25\nnot a zone\n10, 20\n30, 40, abc\n100, 50, 0.5\n0, 10, -1\n50, 100, 0.5\n"
	zones := ParseZoneTable(text)
	if len(zones) != 2 {
		t.Fatalf("expected only the 2 well-formed zones, got %d: %v", len(zones), zones)
	}
}

func TestParseZoneTableEmpty(t *testing.T) {
	if zones := ParseZoneTable("  \n\n"); len(zones) != 0 {
		t.Fatalf("expected no zones got %v", zones)
	}
	if zones := ParseZoneTable("garbage\n"); len(zones) != 0 {
		t.Fatalf("expected no zones got %v", zones)
	}
}
