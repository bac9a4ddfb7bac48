package discriminant

import "testing"

func TestLookupKnownDiscriminants(t *testing.T) {
	for _, d := range []int64{-3, -4, -7, -8, -11, -19, -43, -67, -163, -15, -20, -24} {
		entries := Lookup(d)
		if len(entries) == 0 {
			t.Fatalf("expected entry for D=%d", d)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	if Lookup(-999999) != nil {
		t.Fatal("expected nil for an out-of-table discriminant")
	}
}

func TestDegreesAscending(t *testing.T) {
	ds := Degrees()
	if len(ds) == 0 {
		t.Fatal("expected nonempty degree walk")
	}
	prevDeg := -1
	for _, d := range ds {
		e := Lookup(d)[0]
		if e.Degree < prevDeg {
			t.Fatalf("degrees not ascending at D=%d", d)
		}
		prevDeg = e.Degree
	}
}

func TestCheckInvariant(t *testing.T) {
	for _, d := range []int64{-3, -4, -7, -8, -11, -19, -43, -67, -163, -15, -20, -24} {
		if !CheckInvariant(d) {
			t.Errorf("D=%d failed the fundamental-discriminant congruence check", d)
		}
	}
}
