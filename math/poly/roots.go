package poly

import (
	"github.com/bfix/primus/errors"
	gmath "github.com/bfix/primus/math"
	"github.com/bfix/primus/rng"
)

// RootsModP returns all roots of t in Z/n (n assumed prime; it is not
// tested here). The algorithm: compute gcd(T, x^N - x) mod N to isolate the
// product of T's linear factors, then equal-degree split by repeatedly
// picking a random shift r and computing gcd(T, (x+r)^((N-1)/2) - 1) until
// T is fully split into degree-1 factors. A non-trivial gcd failure
// anywhere (a failed invmod inside polynomial division) means N is
// composite and is surfaced as ErrCompositeWitness carrying the divisor.
func RootsModP(t Poly, n *gmath.Int) ([]*gmath.Int, error) {
	t = ReduceModN(t, n)
	if t.Degree() <= 0 {
		return nil, nil
	}

	// x^N - x, reduced mod t via repeated squaring so degree stays bounded.
	xPowN, err := powX(n, t, n)
	if err != nil {
		return nil, err
	}
	xPowNMinusX := ReduceModN(subX(xPowN, n), n)

	linearPart, err := GCD(t, xPowNMinusX, n)
	if err != nil {
		return nil, err
	}
	roots := []*gmath.Int{}
	if err := split(linearPart, n, &roots); err != nil {
		return nil, err
	}
	return roots, nil
}

// powX computes x^e mod (m, n) via square-and-multiply, starting from the
// polynomial "x" itself.
func powX(e *gmath.Int, m Poly, n *gmath.Int) (Poly, error) {
	return PowMod(New(gmath.ZERO, gmath.ONE), e, m, n)
}

// subX returns p - x (subtracts the monomial x from p).
func subX(p Poly, n *gmath.Int) Poly {
	out := append(Poly{}, p...)
	for len(out) < 2 {
		out = append(out, gmath.ZERO)
	}
	out[1] = out[1].Sub(gmath.ONE).Mod(n)
	return out
}

// split recursively equal-degree-splits f (known to be a product of
// distinct linear factors mod n) into its roots, appending to roots.
// Tie-break: the smaller-degree factor from each gcd split is recursed
// first, per the engine's stated policy.
func split(f Poly, n *gmath.Int, roots *[]*gmath.Int) error {
	d := f.Degree()
	if d < 0 {
		return nil
	}
	if d == 0 {
		return nil
	}
	if d == 1 {
		f, err := Monic(f, n)
		if err != nil {
			return err
		}
		*roots = append(*roots, f[0].Neg().Mod(n))
		return nil
	}

	half := n.Sub(gmath.ONE).Div(gmath.TWO)
	for attempt := 0; attempt < 4*d+64; attempt++ {
		r := rng.RandBigInt(gmath.ZERO, n.Sub(gmath.ONE))
		shifted := shiftX(f, r, n)
		pw, err := PowMod(shifted, half, f, n)
		if err != nil {
			return err
		}
		cand := ReduceModN(pw.Sub1(), n)
		g, err := GCD(f, cand, n)
		if err != nil {
			return err
		}
		dg := g.Degree()
		if dg <= 0 || dg >= d {
			continue
		}
		q, _, err := divMod(f, g, n)
		if err != nil {
			return err
		}
		// smaller-degree factor first
		first, second := g, q
		if second.Degree() < first.Degree() {
			first, second = second, first
		}
		if err := split(first, n, roots); err != nil {
			return err
		}
		return split(second, n, roots)
	}
	return errors.New(errors.ErrSearchExhausted, "equal-degree split exhausted for degree-%d factor", d)
}

// shiftX returns f(x+r) mod n via binomial expansion: f(x+r) = sum_i a_i
// (x+r)^i = sum_k x^k * (sum_{i>=k} a_i * C(i,k) * r^(i-k)).
func shiftX(f Poly, r, n *gmath.Int) Poly {
	d := f.Degree()
	out := make(Poly, d+1)
	for k := 0; k <= d; k++ {
		acc := gmath.ZERO
		rPow := gmath.ONE
		for i := k; i <= d; i++ {
			if i > k {
				rPow = rPow.Mul(r).Mod(n)
			}
			term := f[i].Mul(gmath.Binomial(int64(i), int64(k))).Mul(rPow)
			acc = acc.Add(term).Mod(n)
		}
		out[k] = acc
	}
	return ReduceModN(out, n)
}

// Sub1 returns p - 1 (subtracts the constant polynomial 1).
func (p Poly) Sub1() Poly {
	out := append(Poly{}, p...)
	if len(out) == 0 {
		out = append(out, gmath.ZERO)
	}
	out[0] = out[0].Sub(gmath.ONE)
	return out
}
