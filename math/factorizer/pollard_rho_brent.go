package factorizer

import (
	"github.com/bfix/primus/math"
	"github.com/bfix/primus/rng"
)

// Algorithm constants for Brent's cycle-finding variant.
const (
	BRENT_RETRY = 100
	BRENT_LOOP  = 8192
	BRENT_BATCH = 256 // accumulate this many differences before a gcd
)

// Pollard_rho_Brent finds a factor using Pollard's rho with Brent's
// improvement: instead of Floyd's tortoise-and-hare, it accumulates a
// running product of differences and takes a gcd every BRENT_BATCH steps,
// trading a little extra bookkeeping for fewer, cheaper gcd calls.
type Pollard_rho_Brent struct{}

// GetFactor implements Brent's variant of Pollard's rho.
func (f *Pollard_rho_Brent) GetFactor(n *math.Int) *math.Int {
	for range BRENT_RETRY {
		c := rng.RandBigInt(math.ONE, n)
		y := rng.RandBigInt(math.ZERO, n)
		m := math.NewInt(BRENT_BATCH)
		r, q := math.ONE, math.ONE
		var x, ys *math.Int
		var g *math.Int = math.ONE

		for g.Equals(math.ONE) {
			x = y
			for i := math.ZERO; i.Cmp(r) < 0; i = i.Add(math.ONE) {
				y = y.Mul(y).Add(c).Mod(n)
			}
			k := math.ZERO
			for k.Cmp(r) < 0 && g.Equals(math.ONE) {
				ys = y
				lim := m
				if r.Sub(k).Cmp(m) < 0 {
					lim = r.Sub(k)
				}
				for i := math.ZERO; i.Cmp(lim) < 0; i = i.Add(math.ONE) {
					y = y.Mul(y).Add(c).Mod(n)
					q = q.Mul(x.Sub(y).Abs()).Mod(n)
				}
				g = n.GCD(q)
				k = k.Add(m)
			}
			r = r.Mul(math.TWO)
			if r.Cmp(math.NewInt(BRENT_LOOP)) > 0 {
				break
			}
		}
		if g.Equals(n) {
			for {
				ys = ys.Mul(ys).Add(c).Mod(n)
				g = n.GCD(x.Sub(ys).Abs())
				if g.Cmp(math.ONE) > 0 {
					break
				}
			}
		}
		if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
			return g
		}
	}
	return nil
}
