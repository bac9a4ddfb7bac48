package factorizer

import "github.com/bfix/primus/math"

// SQUFOF (Shanks' square form factorization) operates on native-size N;
// spec.md guards its use with 64*m^3 < n, where m is the multiplier applied
// before the continued-fraction expansion of sqrt(m*n).
type SQUFOF struct {
	Rounds int
}

var squfofMultipliers = []int64{1, 3, 5, 7, 11, 3 * 5, 3 * 7, 3 * 11, 5 * 7, 5 * 11, 7 * 11, 3 * 5 * 7, 3 * 5 * 11}

// GetFactor runs Shanks' SQUFOF over a set of small multipliers.
func (f *SQUFOF) GetFactor(n *math.Int) *math.Int {
	rounds := f.Rounds
	if rounds <= 0 {
		rounds = 100000
	}
	for _, m := range squfofMultipliers {
		mi := math.NewInt(m)
		bound := math.NewInt(64).Mul(mi.Pow(3))
		if bound.Cmp(n) >= 0 {
			continue
		}
		if g := squfofRun(mi.Mul(n), n, rounds); g != nil {
			return g
		}
	}
	return nil
}

// squfofRun expands the continued fraction of sqrt(kn) forward until a
// square Qi appears at an odd step, then retraces it backward (Shanks'
// reverse cycle) looking for a nontrivial gcd with n.
func squfofRun(kn, n *math.Int, rounds int) *math.Int {
	root := kn.NthRoot(2, false)
	if root.Mul(root).Equals(kn) {
		return nil
	}
	p := root
	qPrev := math.ONE
	q := kn.Sub(p.Mul(p))
	if q.Sign() == 0 {
		return nil
	}

	for i := 1; i <= rounds; i++ {
		b := root.Add(p).Div(q)
		pNext := b.Mul(q).Sub(p)
		qNext := qPrev.Add(b.Mul(p.Sub(pNext)))

		p, qPrev, q = pNext, q, qNext
		if q.Sign() == 0 {
			break
		}
		if i%2 == 1 {
			r := q.NthRoot(2, false)
			if r.Cmp(math.ONE) > 0 && r.Mul(r).Equals(q) {
				if g := squfofReverse(root, kn, n, p, r); g != nil {
					return g
				}
			}
		}
	}
	return nil
}

// squfofReverse retraces the continued fraction from the symmetry point
// found at (P, Q=r^2) back toward the start, testing gcd(P,n) at each step
// until P repeats -- the classical reverse-cycle termination condition.
func squfofReverse(root, kn, n, p0, r *math.Int) *math.Int {
	b := root.Sub(p0).Div(r)
	p := b.Mul(r).Add(p0)
	q := kn.Sub(p.Mul(p)).Div(r)
	if q.Sign() == 0 {
		return nil
	}

	for iter := 0; iter < 100000; iter++ {
		b = root.Add(p).Div(q)
		pNext := b.Mul(q).Sub(p)
		if pNext.Equals(p) {
			g := n.GCD(p)
			if g.Cmp(math.ONE) > 0 && g.Cmp(n) < 0 {
				return g
			}
			return nil
		}
		qNext := r.Add(b.Mul(p.Sub(pNext)))
		p, r, q = pNext, q, qNext
	}
	return nil
}
