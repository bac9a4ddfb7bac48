package ecpp

import gmath "github.com/bfix/primus/math"

// Frame is the per-recursion-level state spec.md names: created on entry
// to level i with N_i, mutated as the search over (D,m) candidates
// progresses, filled in with the proven (D,m,q,a,b,P) on success. The ECPP
// driver (ecpp.go) recurses natively and also pushes one Frame per
// recursion level onto an explicit data.Stack[*Frame], popping it when the
// level returns. The proof text itself is built by proof.Builder, not read
// back from this stack.
type Frame struct {
	N     *gmath.Int
	D     int64
	M, Q  *gmath.Int
	A, B  *gmath.Int
	Px    *gmath.Int
	Py    *gmath.Int
	Stage int
}
