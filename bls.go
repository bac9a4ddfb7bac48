package primus

import (
	"github.com/bfix/primus/errors"
	gmath "github.com/bfix/primus/math"
	"github.com/bfix/primus/math/factorizer"
)

// ProveBLS75 attempts a Pocklington-Lehmer (Brillhart-Lehmer-Selfridge
// 1975, theorem 5's simpler F > sqrt(N) corollary) n-1 certificate: factor
// n-1 with the general cascade, and if the fully-factored portion F
// already exceeds sqrt(n), n-1 = F*R needs no further splitting of R --
// Pocklington's criterion alone proves n prime. This is the cheap path
// tried before falling back to ECPP, since n-1 is often smooth enough to
// factor completely well before an ECPP search would find a usable curve.
func ProveBLS75(n *gmath.Int) (bool, string) {
	if n.Cmp(gmath.THREE) < 0 {
		return false, ""
	}
	nMinus1 := n.Sub(gmath.ONE)
	primeFactors := factorizer.Factor(nMinus1)
	if len(primeFactors) == 0 {
		return false, ""
	}

	// dedup the prime factors of n-1
	distinct := make(map[string]*gmath.Int)
	for _, p := range primeFactors {
		if !p.ProbablyPrime(64) {
			continue // a cofactor the cascade left unsplit is not part of F
		}
		distinct[p.String()] = p
	}

	f := gmath.ONE
	for _, p := range distinct {
		f = f.Mul(p)
	}
	sqrtN := n.NthRoot(2, true)
	if f.Cmp(sqrtN) < 0 {
		// the cascade didn't fully crack n-1 down to F > sqrt(N); not
		// enough to certify via Pocklington, fall back to ECPP.
		return false, ""
	}

	for _, p := range distinct {
		a, err := findWitness(n, nMinus1, p)
		if err != nil {
			return false, ""
		}
		if a == nil {
			return false, ""
		}
	}

	return true, certText(n, distinct)
}

// findWitness looks for a base a, 2 <= a < 200, with a^(n-1) = 1 (mod n)
// and gcd(a^((n-1)/p) - 1, n) = 1, the per-prime-factor condition
// Pocklington's criterion requires.
func findWitness(n, nMinus1, p *gmath.Int) (*gmath.Int, error) {
	exp := nMinus1.Div(p)
	for a := gmath.TWO; a.Cmp(gmath.NewInt(200)) < 0; a = a.Add(gmath.ONE) {
		if a.ModPow(nMinus1, n).Cmp(gmath.ONE) != 0 {
			continue
		}
		d := a.ModPow(exp, n).Sub(gmath.ONE).GCD(n)
		if d.Cmp(gmath.ONE) == 0 {
			return a, nil
		}
		if d.Cmp(gmath.ONE) > 0 && d.Cmp(n) < 0 {
			return nil, errors.New(errors.ErrCompositeWitness, "gcd(a^((n-1)/p)-1,n)=%s", d)
		}
	}
	return nil, nil
}

// certText renders a minimal BLS75 certificate line: n and n-1's
// distinct prime factors, whose product exceeded sqrt(n).
func certText(n *gmath.Int, factors map[string]*gmath.Int) string {
	line := n.String() + " : BLS75 :"
	for _, p := range factors {
		line += " " + p.String()
	}
	return line + "\n"
}
