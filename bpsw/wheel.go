package bpsw

import gmath "github.com/bfix/primus/math"

// smallPrimes is the wheel used to gate BPSW's fast path: divisibility by
// the first few primes, then a single gcd against their primorial for the
// rest of the small-prime sieve (spec.md names the wheel 2*3*5*7*11*13*17*19*23
// explicitly; the sieve below additionally folds in primes up to 997, the
// primorial of the first 168 primes, matching the "bigcd against primorial
// of first 168 primes" step).
var smallPrimes = sieveUpTo(1000)

func sieveUpTo(limit int) []int {
	isComposite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if !isComposite[i] {
			primes = append(primes, i)
			for j := i * i; j <= limit; j += i {
				isComposite[j] = true
			}
		}
	}
	return primes
}

var primorial168 = computePrimorial()

func computePrimorial() *gmath.Int {
	p := gmath.ONE
	for _, sp := range smallPrimes {
		p = p.Mul(gmath.NewInt(int64(sp)))
	}
	return p
}

// trialDivide checks divisibility of n by the wheel's small primes,
// returning (factor, true) on the first hit, or (nil, false) if n is
// coprime to all of them.
func trialDivide(n *gmath.Int) (*gmath.Int, bool) {
	for _, p := range smallPrimes {
		bp := gmath.NewInt(int64(p))
		if n.Equals(bp) {
			return bp, true
		}
		if n.Mod(bp).Sign() == 0 {
			return bp, true
		}
	}
	return nil, false
}

// smallPrimeGCD reports whether n shares a nontrivial factor with the
// primorial of the first 168 primes -- the "bigcd" fast-reject step.
func smallPrimeGCD(n *gmath.Int) bool {
	g := n.GCD(primorial168)
	return !g.Equals(gmath.ONE)
}
