package bpsw

import gmath "github.com/bfix/primus/math"

// selfridgeD scans D = 5, -7, 9, -11, ... until jacobi(D,n) = -1, per
// Selfridge's Method A.
func selfridgeD(n *gmath.Int) (d *gmath.Int, guardComposite bool) {
	mag := int64(5)
	neg := false
	for {
		var dCand *gmath.Int
		if neg {
			dCand = gmath.NewInt(-mag)
		} else {
			dCand = gmath.NewInt(mag)
		}
		absD := gmath.NewInt(mag)
		if !absD.Equals(n) {
			g := absD.GCD(n)
			if !g.Equals(gmath.ONE) {
				return nil, true
			}
		}
		if dCand.Jacobi(n) == -1 {
			return dCand, false
		}
		mag += 2
		neg = !neg
	}
}

// isPerfectSquare reports whether n is a perfect square.
func isPerfectSquare(n *gmath.Int) bool {
	r := n.NthRoot(2, false)
	return r.Mul(r).Equals(n)
}

// StrongLucasSelfridge runs the strong Lucas probable-prime test on odd n
// using Selfridge's Method A to choose D, with P=1 and Q=(1-D)/4.
func StrongLucasSelfridge(n *gmath.Int) bool {
	if isPerfectSquare(n) {
		return false
	}
	d, composite := selfridgeD(n)
	if composite {
		return false
	}
	p := gmath.ONE
	q := gmath.ONE.Sub(d).Div(gmath.FOUR)

	nPlus1 := n.Add(gmath.ONE)
	s := 0
	dd := nPlus1
	for dd.Bit(0) == 0 {
		dd = dd.Rsh(1)
		s++
	}

	inv2 := gmath.TWO.ModInverse(n)

	u, v, qk := lucasUVMod(dd, p, q, d, n, inv2)

	if u.Mod(n).Sign() == 0 {
		return true
	}
	for r := 0; r < s; r++ {
		if v.Mod(n).Sign() == 0 {
			return true
		}
		v = v.Mul(v).Sub(qk.Mul(gmath.TWO)).Mod(n)
		qk = qk.Mul(qk).Mod(n)
	}
	return false
}

// lucasUVMod computes (U_k mod n, V_k mod n, Q^k mod n) for the Lucas
// sequence with parameters (P,Q,D) via the standard doubling ladder.
func lucasUVMod(k, p, q, d, n, inv2 *gmath.Int) (u, v, qk *gmath.Int) {
	u = gmath.ZERO
	v = gmath.TWO
	qk = gmath.ONE
	bits := k.BitLen()
	for i := bits - 1; i >= 0; i-- {
		// double: (U,V,Q^k) -> (U_2k, V_2k, Q^2k)
		u = u.Mul(v).Mod(n)
		v = v.Mul(v).Sub(qk.Mul(gmath.TWO)).Mod(n)
		qk = qk.Mul(qk).Mod(n)
		if k.Bit(i) == 1 {
			// add one step
			newU := p.Mul(u).Add(v).Mul(inv2).Mod(n)
			newV := d.Mul(u).Add(p.Mul(v)).Mul(inv2).Mod(n)
			u = newU
			v = newV
			qk = qk.Mul(q).Mod(n)
		}
	}
	return u, v, qk
}
