// Package curve implements affine elliptic-curve arithmetic over Z/N for
// curves E_{a,b}: y^2 = x^3 + ax + b, where N is a candidate prime (not
// yet proven). Unlike math/factorizer's Montgomery-curve projective
// arithmetic used by ECM, these are general (a,b) affine operations --
// grounded on the teacher's bitcoin/ecc/curve.go Jacobian add/double
// technique, generalized off its fixed secp256k1 parameters to a
// caller-supplied (a,b,N) and with explicit "denominator not invertible"
// returns instead of a panic, since that failure is itself a proof N is
// composite.
package curve

import (
	"github.com/bfix/primus/errors"
	gmath "github.com/bfix/primus/math"
)

// Point is an affine point on a curve mod N. Inf reports the point at
// infinity (the sentinel (0,1) by spec convention; callers should test
// Inf rather than comparing coordinates).
type Point struct {
	X, Y *gmath.Int
	Inf  bool
}

// O is the point at infinity.
func O() *Point {
	return &Point{X: gmath.ZERO, Y: gmath.ONE, Inf: true}
}

// Curve holds the parameters of E_{a,b} mod N.
type Curve struct {
	A, B *gmath.Int
	N    *gmath.Int
	f    *gmath.Field
}

// New returns the curve y^2 = x^3 + ax + b mod N.
func New(a, b, n *gmath.Int) *Curve {
	return &Curve{A: a, B: b, N: n, f: gmath.NewField(n)}
}

// OnCurve reports whether P satisfies y^2 = x^3 + ax + b mod N.
func (c *Curve) OnCurve(p *Point) bool {
	if p.Inf {
		return true
	}
	lhs := c.f.Mul(p.Y, p.Y)
	rhs := c.f.Add(c.f.Add(c.f.Mul(c.f.Mul(p.X, p.X), p.X), c.f.Mul(c.A, p.X)), c.B)
	return lhs.Equals(rhs)
}

// Add returns P+Q, or a CompositeWitness error wrapping the discovered
// non-trivial factor of N when a slope denominator is not invertible.
func (c *Curve) Add(p, q *Point) (*Point, error) {
	if p.Inf {
		return q, nil
	}
	if q.Inf {
		return p, nil
	}
	if p.X.Equals(q.X) {
		if c.f.Add(p.Y, q.Y).Sign() == 0 {
			return O(), nil
		}
		return c.Double(p)
	}
	num := c.f.Sub(q.Y, p.Y)
	den := c.f.Sub(q.X, p.X)
	inv, err := c.f.Inv(den)
	if err != nil {
		return nil, c.witness(den, err)
	}
	lambda := c.f.Mul(num, inv)
	return c.fromLambda(lambda, p, q), nil
}

// Double returns 2P, or a CompositeWitness error as in Add.
func (c *Curve) Double(p *Point) (*Point, error) {
	if p.Inf {
		return O(), nil
	}
	if p.Y.Sign() == 0 {
		return O(), nil
	}
	num := c.f.Add(c.f.Mul(gmath.THREE, c.f.Mul(p.X, p.X)), c.A)
	den := c.f.Mul(gmath.TWO, p.Y)
	inv, err := c.f.Inv(den)
	if err != nil {
		return nil, c.witness(den, err)
	}
	lambda := c.f.Mul(num, inv)
	return c.fromLambda(lambda, p, p), nil
}

func (c *Curve) fromLambda(lambda *gmath.Int, p, q *Point) *Point {
	x3 := c.f.Sub(c.f.Sub(c.f.Mul(lambda, lambda), p.X), q.X)
	y3 := c.f.Sub(c.f.Mul(lambda, c.f.Sub(p.X, x3)), p.Y)
	return &Point{X: x3, Y: y3}
}

// Multiply returns k*P via the binary ladder, propagating FACTOR_FOUND.
func (c *Curve) Multiply(k *gmath.Int, p *Point) (*Point, error) {
	if k.Sign() == 0 || p.Inf {
		return O(), nil
	}
	if k.Sign() < 0 {
		return nil, errors.New(errors.ErrInvalidInput, "negative scalar")
	}
	result := O()
	addend := p
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			var err error
			result, err = c.Add(result, addend)
			if err != nil {
				return nil, err
			}
		}
		if i < bits-1 {
			var err error
			addend, err = c.Double(addend)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// witness wraps a failed-inverse denominator as a CompositeWitness error
// carrying gcd(den,N), the non-trivial factor this failure proves exists.
func (c *Curve) witness(den *gmath.Int, cause error) error {
	g := den.GCD(c.N)
	return errors.New(errors.ErrCompositeWitness, "curve op: gcd(%s,%s)=%s: %v", den, c.N, g, cause)
}
