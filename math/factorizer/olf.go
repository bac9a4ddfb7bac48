package factorizer

import "github.com/bfix/primus/math"

// OLF implements Hart's "One Line Factorization": for n = p*q with p,q
// close together, premultiplying n by a small constant makes some k*n a
// near-perfect square sooner; the algorithm scans k*n for s = ceil(sqrt(k*n))
// and tests whether s^2 - k*n is itself a perfect square.
type OLF struct {
	Rounds        int
	Premultiplier int64
}

// defaultOLFPremultiplier is the premultiplier spec.md names for OLF.
const defaultOLFPremultiplier = 480

// GetFactor runs Hart's OLF search.
func (f *OLF) GetFactor(n *math.Int) *math.Int {
	rounds := f.Rounds
	if rounds <= 0 {
		rounds = 1 << 20
	}
	premult := f.Premultiplier
	if premult <= 0 {
		premult = defaultOLFPremultiplier
	}
	mult := math.NewInt(premult)
	kn0 := n.Mul(mult)

	for k := int64(1); k <= int64(rounds); k++ {
		kn := kn0.Mul(math.NewInt(k))
		s := kn.NthRoot(2, true)
		t := s.Mul(s).Sub(kn)
		if t.Sign() < 0 {
			continue
		}
		r := t.NthRoot(2, false)
		if r.Mul(r).Equals(t) {
			g := n.GCD(s.Sub(r))
			if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
				return g
			}
		}
	}
	return nil
}
