package poly

import (
	"testing"

	gmath "github.com/bfix/primus/math"
)

func TestReduceModN(t *testing.T) {
	n := gmath.NewInt(7)
	p := New(gmath.NewInt(10), gmath.NewInt(15), gmath.ZERO)
	r := ReduceModN(p, n)
	if r.Degree() != 1 {
		t.Fatalf("expected degree 1 after trimming, got %d", r.Degree())
	}
	if !r[0].Equals(gmath.THREE) || !r[1].Equals(gmath.ONE) {
		t.Fatalf("unexpected reduction: %v", r)
	}
}

func TestRootsModPLinear(t *testing.T) {
	n := gmath.NewInt(101)
	// (x-5)(x-17) = x^2 - 22x + 85
	p := New(gmath.NewInt(85), gmath.NewInt(-22).Mod(n), gmath.ONE)
	roots, err := RootsModP(p, n)
	if err != nil {
		t.Fatalf("RootsModP failed: %v", err)
	}
	found := map[string]bool{}
	for _, r := range roots {
		found[r.String()] = true
	}
	if !found["5"] || !found["17"] {
		t.Fatalf("expected roots {5,17}, got %v", roots)
	}
}

func TestGCD(t *testing.T) {
	n := gmath.NewInt(101)
	a := New(gmath.NewInt(85), gmath.NewInt(-22).Mod(n), gmath.ONE) // (x-5)(x-17)
	b := New(gmath.NewInt(-5).Mod(n), gmath.ONE)                   // (x-5)
	g, err := GCD(a, b, n)
	if err != nil {
		t.Fatalf("GCD failed: %v", err)
	}
	g, err = Monic(g, n)
	if err != nil {
		t.Fatalf("Monic failed: %v", err)
	}
	if g.Degree() != 1 || !g[0].Equals(gmath.NewInt(-5).Mod(n)) {
		t.Fatalf("expected gcd = (x-5), got %v", g)
	}
}
