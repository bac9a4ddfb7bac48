package primus

import (
	"testing"

	gmath "github.com/bfix/primus/math"
)

func TestProveBLS75SmallPrime(t *testing.T) {
	// 1013-1 = 2^2 * 11 * 23, fully smooth; the distinct primes give
	// F = 2*11*23 = 506 > sqrt(1013).
	n := gmath.NewInt(1013)
	ok, cert := ProveBLS75(n)
	if !ok {
		t.Fatalf("expected BLS75 to certify 1013 as prime")
	}
	if cert == "" {
		t.Fatalf("expected non-empty certificate text")
	}
}

func TestProveBLS75RejectsComposite(t *testing.T) {
	// 1012 - 1 = 1011 = 3*337; BLS75's witness search must fail somewhere.
	n := gmath.NewInt(1012)
	if ok, _ := ProveBLS75(n); ok {
		t.Fatalf("BLS75 must not certify a composite as prime")
	}
}
