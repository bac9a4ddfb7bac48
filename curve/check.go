package curve

import gmath "github.com/bfix/primus/math"

// CheckResult is the outcome of CheckPoint.
type CheckResult int

const (
	// Composite means a curve operation hit a non-invertible denominator:
	// N is proven composite.
	Composite CheckResult = iota
	// NotProved means the witness point didn't confirm primality; the
	// caller should retry with another point.
	NotProved
	// Success means the point proves m*P = O and (m/q)*P != O.
	Success
)

// CheckPoint implements ecpp_check_point(P, m, q, a, N):
//  1. P2 = (m/q)*P. A curve-op failure is Composite.
//  2. If P2 = O, NotProved (retry another point).
//  3. P1 = q*P2. A curve-op failure is Composite.
//  4. If P1 = O, Success; else NotProved.
func (c *Curve) CheckPoint(p *Point, m, q *gmath.Int) (CheckResult, error) {
	cofactor := m.Div(q)
	p2, err := c.Multiply(cofactor, p)
	if err != nil {
		return Composite, err
	}
	if p2.Inf {
		return NotProved, nil
	}
	p1, err := c.Multiply(q, p2)
	if err != nil {
		return Composite, err
	}
	if p1.Inf {
		return Success, nil
	}
	return NotProved, nil
}

// ValidateCurve re-runs CheckPoint for an external verifier: it also
// confirms P lies on the curve before delegating.
func (c *Curve) ValidateCurve(p *Point, m, q *gmath.Int) bool {
	if !c.OnCurve(p) {
		return false
	}
	res, err := c.CheckPoint(p, m, q)
	return err == nil && res == Success
}
