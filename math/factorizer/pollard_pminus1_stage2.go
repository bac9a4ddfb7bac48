package factorizer

import "github.com/bfix/primus/math"

// Pollard_Pminus1_Stage2 extends stage 1's smooth-cofactor search: having
// computed x = a^M mod n with M a multiple of lcm(2..B1) and found no factor, it looks
// for a prime p with p-1 = (smooth part) * q for a single prime q in
// (B1,B2] by testing x^q - 1 for each such q, stepping prime-to-prime via a
// precomputed cache of x^(2k) gap powers (k=1..gapCacheSize) instead of a
// full modexp per prime.
type Pollard_Pminus1_Stage2 struct {
	B1, B2 int64
}

// gapCacheSize bounds the precomputed even-gap power table; spec.md names
// a cache of size 111 entries for stage 2's prime-gap powers.
const gapCacheSize = 111

// GetFactor runs stage-1 accumulation up to B1, then the stage-2 large-prime
// continuation up to B2.
func (f *Pollard_Pminus1_Stage2) GetFactor(n *math.Int) *math.Int {
	B1 := f.B1
	B2 := f.B2
	if B1 <= 0 {
		B1 = PM1_BMAX
	}
	if B2 <= B1 {
		B2 = B1 * 50
	}

	for range PM1_RETRY {
		a := math.NewIntRnd(n)
		if a.Cmp(math.TWO) < 0 {
			a = math.TWO
		}
		d := a.GCD(n)
		if d.Cmp(math.ONE) > 0 && d.Cmp(n) < 0 {
			return d
		}

		// stage 1: x = a^M mod n, M = product over every p in 2..B1 of its
		// largest power <= B1 (a multiple of lcm(2..B1))
		x := a
		for p := int64(2); p <= B1; p++ {
			pw := math.NewInt(p)
			k := int64(1)
			for {
				next := pw.Mul(math.NewInt(p))
				if next.Cmp(math.NewInt(B1)) > 0 {
					break
				}
				pw = next
				k++
			}
			x = x.ModPow(pw, n)
		}
		g := n.GCD(x.Sub(math.ONE).Mod(n))
		if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
			return g
		}
		if g.Equals(n) {
			continue
		}

		// stage 2: gap-power cache of x^(2k) for k=1..gapCacheSize
		gapPow := make([]*math.Int, gapCacheSize+1)
		x2 := x.ModPow(math.TWO, n)
		gapPow[1] = x2
		for k := 2; k <= gapCacheSize; k++ {
			gapPow[k] = gapPow[k-1].Mul(x2).Mod(n)
		}

		q := math.NewInt(B1).NextProbablePrime(128)
		xq := x.ModPow(q, n)
		accum := math.ONE
		upper := math.NewInt(B2)
		for q.Cmp(upper) <= 0 {
			accum = accum.Mul(xq.Sub(math.ONE)).Mod(n)
			next := q.NextProbablePrime(128)
			gap := next.Sub(q).Int64() / 2
			if gap >= 1 && gap <= gapCacheSize {
				xq = xq.Mul(gapPow[gap]).Mod(n)
			} else {
				xq = xq.ModPow(next, n) // fallback for an out-of-cache gap
			}
			q = next
		}
		g = n.GCD(accum)
		if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
			return g
		}
	}
	return nil
}
