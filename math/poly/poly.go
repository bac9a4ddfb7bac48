// Package poly implements the polynomial-mod-N engine used by the ECPP
// driver to find roots of a class polynomial modulo a candidate prime N.
package poly

import (
	"github.com/bfix/primus/errors"
	gmath "github.com/bfix/primus/math"
)

// Poly is a polynomial over Z/N, coefficients ordered low-to-high degree
// (Poly[0] is the constant term). A nil or zero-length Poly is the zero
// polynomial.
type Poly []*gmath.Int

// New builds a Poly from a low-to-high coefficient list.
func New(coeffs ...*gmath.Int) Poly {
	return Poly(coeffs)
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// ReduceModN reduces every coefficient mod N and trims leading zeros --
// the engine's "poly_mod_n" operation.
func ReduceModN(t Poly, n *gmath.Int) Poly {
	out := make(Poly, len(t))
	for i, c := range t {
		out[i] = c.Mod(n)
	}
	d := out.Degree()
	return out[:d+1]
}

// isZero reports whether every coefficient is zero.
func (p Poly) isZero() bool {
	return p.Degree() < 0
}

// leadInv returns the modular inverse of p's leading coefficient mod n, or
// a CompositeWitness error if that coefficient shares a nontrivial factor
// with n (which proves n composite, since this code path only runs while
// testing N as a candidate prime).
func leadInv(p Poly, n *gmath.Int) (*gmath.Int, error) {
	f := gmath.NewField(n)
	lc := p[p.Degree()]
	return f.Inv(lc)
}

// divMod divides a by b mod n, returning (quotient, remainder). Both are
// reduced/trimmed. Returns CompositeWitness if b's leading coefficient is
// not invertible mod n.
func divMod(a, b Poly, n *gmath.Int) (q, r Poly, err error) {
	f := gmath.NewField(n)
	a = ReduceModN(a, n)
	b = ReduceModN(b, n)
	db := b.Degree()
	if db < 0 {
		return nil, nil, errors.New(errors.ErrInvalidInput, "division by zero polynomial")
	}
	r = append(Poly{}, a...)
	da := r.Degree()
	if da < db {
		return Poly{gmath.ZERO}, r, nil
	}
	qc := make([]*gmath.Int, da-db+1)
	for i := range qc {
		qc[i] = gmath.ZERO
	}
	binv, err := leadInv(b, n)
	if err != nil {
		return nil, nil, err
	}
	for {
		dr := r.Degree()
		if dr < db {
			break
		}
		shift := dr - db
		coef := f.Mul(r[dr], binv)
		qc[shift] = f.Add(qc[shift], coef)
		for i, bc := range b {
			r[i+shift] = f.Sub(r[i+shift], f.Mul(coef, bc))
		}
		r = ReduceModN(r, n)
	}
	q = ReduceModN(Poly(qc), n)
	return q, r, nil
}

// Mod returns a mod b, working mod n.
func Mod(a, b Poly, n *gmath.Int) (Poly, error) {
	_, r, err := divMod(a, b, n)
	return r, err
}

// MulMod returns (a*b) mod m, with coefficients reduced mod n.
func MulMod(a, b, m Poly, n *gmath.Int) (Poly, error) {
	f := gmath.NewField(n)
	da, db := a.Degree(), b.Degree()
	if da < 0 || db < 0 {
		return Poly{gmath.ZERO}, nil
	}
	prod := make([]*gmath.Int, da+db+1)
	for i := range prod {
		prod[i] = gmath.ZERO
	}
	for i := 0; i <= da; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			prod[i+j] = f.Add(prod[i+j], f.Mul(a[i], b[j]))
		}
	}
	return Mod(ReduceModN(Poly(prod), n), m, n)
}

// PowMod computes base^e mod (m, n) via square-and-multiply over the
// polynomial ring Z/n[x]/(m).
func PowMod(base Poly, e *gmath.Int, m Poly, n *gmath.Int) (Poly, error) {
	result := New(gmath.ONE)
	b, err := Mod(base, m, n)
	if err != nil {
		return nil, err
	}
	exp := e
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result, err = MulMod(result, b, m, n)
			if err != nil {
				return nil, err
			}
		}
		b, err = MulMod(b, b, m, n)
		if err != nil {
			return nil, err
		}
		exp = exp.Rsh(1)
	}
	return result, nil
}

// GCD computes gcd(a,b) mod n via the Euclidean algorithm on polynomials,
// surfacing a CompositeWitness if any leading-coefficient inverse fails.
func GCD(a, b Poly, n *gmath.Int) (Poly, error) {
	a = ReduceModN(a, n)
	b = ReduceModN(b, n)
	for !b.isZero() {
		_, r, err := divMod(a, b, n)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	return a, nil
}

// Monic returns a copy of p scaled so its leading coefficient is 1 mod n.
func Monic(p Poly, n *gmath.Int) (Poly, error) {
	d := p.Degree()
	if d < 0 {
		return p, nil
	}
	f := gmath.NewField(n)
	inv, err := f.Inv(p[d])
	if err != nil {
		return nil, err
	}
	out := make(Poly, d+1)
	for i := 0; i <= d; i++ {
		out[i] = f.Mul(p[i], inv)
	}
	return out, nil
}
