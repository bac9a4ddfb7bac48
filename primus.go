// Package primus is an arbitrary-precision primality-proving and
// integer-factoring library: BPSW probable-primality, a BLS75 n-1
// partial-factorization certificate for moderate sizes, full ECPP proofs
// for anything BLS75 can't reach, and a general-purpose factoring
// cascade. The teacher's own top-level packages each expose their own API
// (math, bitcoin/ecc, crypto, ...); this module has no such analogue, so
// the façade composing bpsw/ecpp/factorizer/curve into one public surface
// (C11) is new rather than adapted.
package primus

import (
	"github.com/bfix/primus/bpsw"
	"github.com/bfix/primus/curve"
	"github.com/bfix/primus/ecpp"
	gmath "github.com/bfix/primus/math"
	"github.com/bfix/primus/math/factorizer"
	"github.com/bfix/primus/rng"
)

// Verdict is the public primality verdict returned by IsPrime.
type Verdict int

const (
	// VerdictComposite: n is proven composite.
	VerdictComposite Verdict = iota
	// VerdictProbablePrime: BPSW passed but no certificate was produced;
	// not proof, just very strong evidence (no known BPSW counterexample).
	VerdictProbablePrime
	// VerdictPrime: n is proven prime, either BPSW's deterministic bound,
	// a BLS75 certificate, or a full ECPP certificate.
	VerdictPrime
)

// IsProbPrime runs BPSW (Miller-Rabin base 2 + strong Lucas-Selfridge) and
// reports whether n passes. A false is conclusive (n is composite); a true
// is conclusive only below 2^64, otherwise it is evidence, not proof.
func IsProbPrime(n *gmath.Int) bool {
	return bpsw.IsProbablePrime(n) != bpsw.Composite
}

// MillerRabin runs a single base-2 strong Miller-Rabin round.
func MillerRabin(n *gmath.Int) bool {
	return bpsw.MillerRabinBase2(n)
}

// MillerRabinRandom runs k Miller-Rabin rounds against bases drawn from
// randBase.
func MillerRabinRandom(n *gmath.Int, k int, randBase func() *gmath.Int) bool {
	return bpsw.MillerRabinRandomBases(n, k, randBase)
}

// IsStrongLucasPseudoprime runs the strong Lucas-Selfridge test alone.
func IsStrongLucasPseudoprime(n *gmath.Int) bool {
	return bpsw.StrongLucasSelfridge(n)
}

// extraMRRounds picks the "2-5 by size" extra random Miller-Rabin round
// count spec.md 6's is_prime row calls for: BPSW alone is already
// deterministic below 2^64, so the extra rounds only matter above that,
// and grow with n since a single round's false-positive bound is a
// shrinking fraction of the space being tested.
func extraMRRounds(bits int) int {
	switch {
	case bits > 1024:
		return 5
	case bits > 512:
		return 4
	case bits > 256:
		return 3
	default:
		return 2
	}
}

// IsPrime implements spec.md 6's is_prime(n): BPSW, then a handful of
// extra random-base Miller-Rabin rounds, then (only for n <= 200 bits) a
// BLS75 n-1 certificate attempt. It never runs full ECPP -- that escalation
// is IsProvablePrime's job.
func IsPrime(n *gmath.Int) Verdict {
	switch bpsw.IsProbablePrime(n) {
	case bpsw.Composite:
		return VerdictComposite
	case bpsw.Prime:
		return VerdictPrime
	}

	bits := n.BitLen()
	upper := n.Sub(gmath.TWO)
	for i, rounds := 0, extraMRRounds(bits); i < rounds; i++ {
		a := rng.RandBigInt(gmath.TWO, upper)
		if !bpsw.MillerRabinRandomBases(n, 1, func() *gmath.Int { return a }) {
			return VerdictComposite
		}
	}

	if bits <= 200 {
		if ok, _ := ProveBLS75(n); ok {
			return VerdictPrime
		}
	}
	return VerdictProbablePrime
}

// IsProvablePrime implements spec.md 6's is_provable_prime(n, want_proof):
// BLS75 n-1 first (any size), ECPP if still only probable. A BPSW-proven
// prime gets a BLS75 certificate when wantProof is set. The proof text is
// only returned when wantProof is set; ECPP always builds its proof text,
// and it is dropped here when the caller did not ask for it.
func IsProvablePrime(n *gmath.Int, wantProof bool) (Verdict, string) {
	switch bpsw.IsProbablePrime(n) {
	case bpsw.Composite:
		return VerdictComposite, ""
	case bpsw.Prime:
		if wantProof {
			if ok, cert := ProveBLS75(n); ok {
				return VerdictPrime, cert
			}
		}
		return VerdictPrime, ""
	}

	if ok, cert := ProveBLS75(n); ok {
		if wantProof {
			return VerdictPrime, cert
		}
		return VerdictPrime, ""
	}

	r, proofText := ecpp.ProveOuter(n)
	switch r {
	case ecpp.CompositeResult:
		return VerdictComposite, ""
	case ecpp.PrimeDeterministic, ecpp.Proven:
		if wantProof {
			return VerdictPrime, proofText
		}
		return VerdictPrime, ""
	default:
		return VerdictProbablePrime, ""
	}
}

// Factor fully decomposes n into prime factors via the escalation
// cascade (trial division, Pollard rho/Brent, Hart's OLF, Shanks'
// SQUFOF, p-1, Lenstra ECM).
func Factor(n *gmath.Int) []*gmath.Int {
	return factorizer.Factor(n)
}

// ECPPValidateCurve re-checks one ECPP witness point against its claimed
// curve, m, and q -- the external-verifier half of the proof (spec.md 6).
func ECPPValidateCurve(a, b, n, m, q, px, py *gmath.Int) bool {
	c := curve.New(a, b, n)
	p := &curve.Point{X: px, Y: py}
	return c.ValidateCurve(p, m, q)
}
