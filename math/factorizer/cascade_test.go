package factorizer

import (
	"testing"

	"github.com/bfix/primus/math"
)

func TestFactorSmallComposite(t *testing.T) {
	n := math.NewInt(2 * 3 * 5 * 7 * 11 * 13)
	factors := Factor(n)
	prod := math.ONE
	for _, f := range factors {
		prod = prod.Mul(f)
	}
	if !prod.Equals(n) {
		t.Fatalf("product of factors %v != %s", factors, n)
	}
}

func TestFactorOnceClassifies(t *testing.T) {
	n := math.NewInt(91) // 7*13
	_, kind := FactorOnce(n, new(Pollard_rho))
	if kind == NoFactor {
		t.Skip("pollard rho found no factor this run (randomized, acceptable)")
	}
	if kind != PrimeFactor {
		t.Fatalf("a factor of 91 is 7 or 13, want PrimeFactor, got %v", kind)
	}
}

func TestCheckForFactorConsultsSavedCache(t *testing.T) {
	saved := []*math.Int{math.NewInt(7)}
	m := math.NewInt(7 * 104729) // 7 * a large prime
	fmin := math.NewInt(100)
	res, f := CheckForFactor(m, fmin, 2, &saved)
	if res != Found {
		t.Fatalf("expected Found via saved cache, got %v (%v)", res, f)
	}
	if !f.Equals(math.NewInt(104729)) {
		t.Fatalf("expected cofactor 104729, got %s", f)
	}
}
