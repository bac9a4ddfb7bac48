package primus

import (
	"testing"

	gmath "github.com/bfix/primus/math"
)

func TestIsProbPrime(t *testing.T) {
	if !IsProbPrime(gmath.NewInt(97)) {
		t.Errorf("97 should pass BPSW")
	}
	if IsProbPrime(gmath.NewInt(91)) {
		t.Errorf("91 = 7*13 must fail BPSW")
	}
}

func TestFactorSmall(t *testing.T) {
	n := gmath.NewInt(360) // 2^3 * 3^2 * 5
	factors := Factor(n)
	product := gmath.ONE
	for _, f := range factors {
		if !f.ProbablyPrime(64) {
			t.Errorf("Factor returned a non-prime factor: %s", f)
		}
		product = product.Mul(f)
	}
	if !product.Equals(n) {
		t.Errorf("factors multiply to %s, want %s", product, n)
	}
}

func TestIsPrimeSmallDeterministic(t *testing.T) {
	// below 2^64 BPSW alone is deterministic, so IsPrime never needs its
	// extra MR rounds or the 200-bit BLS75 gate to settle these.
	if v := IsPrime(gmath.NewInt(997)); v != VerdictPrime {
		t.Errorf("997 should be prime, got %v", v)
	}
	if v := IsPrime(gmath.NewInt(999)); v != VerdictComposite {
		t.Errorf("999 should be composite, got %v", v)
	}
}

func TestIsProvablePrimeCertificate(t *testing.T) {
	v, cert := IsProvablePrime(gmath.NewInt(997), true)
	if v != VerdictPrime {
		t.Errorf("997 should be proven prime, got %v", v)
	}
	if cert == "" {
		t.Errorf("want_proof=true should yield a non-empty certificate")
	}
	v, cert = IsProvablePrime(gmath.NewInt(997), false)
	if v != VerdictPrime || cert != "" {
		t.Errorf("want_proof=false should yield verdict only, got %v %q", v, cert)
	}
	v, _ = IsProvablePrime(gmath.NewInt(999), true)
	if v != VerdictComposite {
		t.Errorf("999 should be proven composite, got %v", v)
	}
}
