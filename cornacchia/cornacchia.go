// Package cornacchia implements the modified Cornacchia algorithm used by
// the ECPP driver to solve u^2 + |D|*v^2 = 4N for a witness (u,v) pair,
// from which the curve order candidate m = N + 1 - u is built.
package cornacchia

import (
	stderrors "errors"

	"github.com/bfix/primus/errors"
	gmath "github.com/bfix/primus/math"
)

// Solve finds (u,v) with u^2 + |D|*v^2 = 4*n, given that D (negative) is a
// quadratic residue mod n (the caller is expected to have already
// confirmed jacobi(D,n) != -1 before calling n as a BPSW-probable prime).
// Returns ErrSearchExhausted if no solution exists for this (D,n) pair --
// the caller should try the next discriminant.
func Solve(d int64, n *gmath.Int) (u, v *gmath.Int, err error) {
	absD := gmath.NewInt(-d)

	// 1. t^2 = D mod n, via the field kernel's Tonelli-Shanks (requires n
	// prime -- a failed verification here surfaces as CompositeWitness,
	// which is correct: it proves n was not actually prime).
	f := gmath.NewField(n)
	t, serr := f.Sqrt(gmath.NewInt(d).Mod(n))
	if serr != nil {
		// A CompositeWitness out of Sqrt means the root it found failed
		// its own y^2 == a verification -- that is itself a proof n is
		// composite, not merely a sign this D has no solution. Propagate
		// it unwrapped so the caller (ecpp.prove) can surface COMPOSITE
		// per spec.md 7, instead of folding it into a retry-the-next-D
		// SearchExhausted.
		if stderrors.Is(serr, errors.ErrCompositeWitness) {
			return nil, nil, serr
		}
		return nil, nil, errors.New(errors.ErrSearchExhausted, "no square root of D mod N: %v", serr)
	}
	// 2. fix parity so t == D (mod 2); n is odd, so n-t flips parity.
	if (t.Bit(0) != 0) != (d%2 != 0) {
		t = n.Sub(t)
	}

	// 3. Euclidean chain on (a,b) = (2n, t) until b <= sqrt(4n).
	a := gmath.TWO.Mul(n)
	b := t
	m4 := gmath.FOUR.Mul(n)
	limit := m4.NthRoot(2, false)
	for b.Cmp(limit) > 0 {
		a, b = b, a.Mod(b)
	}

	rem := m4.Sub(b.Mul(b))
	if rem.Sign() < 0 {
		return nil, nil, errors.New(errors.ErrSearchExhausted, "4N - b^2 negative")
	}
	qv, rv := rem.DivMod(absD)
	if rv.Sign() != 0 {
		return nil, nil, errors.New(errors.ErrSearchExhausted, "(4N-b^2) not divisible by |D|")
	}
	c := qv.NthRoot(2, false)
	if !c.Mul(c).Equals(qv) {
		return nil, nil, errors.New(errors.ErrSearchExhausted, "(4N-b^2)/|D| not a perfect square")
	}
	return b, c, nil
}
