// Package ecpp implements the Elliptic Curve Primality Proving recursion
// driver (C8): the Factor-All-Strategy (FAS) algorithm that picks a
// discriminant D, forms curve-order candidates m, finds a large prime
// factor q of m via the factoring cascade, recurses on q, and on success
// constructs a witness point and emits a proof line.
package ecpp

import (
	stderrors "errors"

	"github.com/bfix/primus/bpsw"
	"github.com/bfix/primus/cornacchia"
	"github.com/bfix/primus/curve"
	"github.com/bfix/primus/data"
	"github.com/bfix/primus/discriminant"
	"github.com/bfix/primus/errors"
	"github.com/bfix/primus/logger"
	gmath "github.com/bfix/primus/math"
	"github.com/bfix/primus/math/factorizer"
	"github.com/bfix/primus/math/poly"
	"github.com/bfix/primus/proof"
	"github.com/bfix/primus/rng"
)

// Result is the driver's verdict for one call to Prove.
type Result int

const (
	// PrimeDeterministic: BPSW proved N prime outright (n <= 2^64).
	PrimeDeterministic Result = iota
	// CompositeResult: N is proven composite.
	CompositeResult
	// NotYet: this fac_stage ran out of (D,m) candidates; bump the stage.
	NotYet
	// Proven: N is proven prime via a full ECPP certificate.
	Proven
	// ProbablePrime: prove_outer exhausted 20 stages without proving N;
	// the best remaining verdict is BPSW's probable-prime answer.
	ProbablePrime
)

const maxFacStage = 20
const maxSFacs = 1000

// Session carries the state shared across one prove_outer call: the
// saved-factors cache, the blacklisted-D set, and the accumulating proof.
type Session struct {
	saved      []*gmath.Int
	blacklist  map[int64]bool
	proofText  *proof.Builder
	frameStack *data.Stack[*Frame]
}

func newSession() *Session {
	return &Session{
		blacklist:  make(map[int64]bool),
		proofText:  proof.NewBuilder(),
		frameStack: data.NewStack[*Frame](),
	}
}

// ProveOuter is the public entry point: prove_outer(N) iterates fac_stage
// from 1 to 20, returning as soon as prove() stops answering NotYet.
func ProveOuter(n *gmath.Int) (Result, string) {
	s := newSession()
	for stage := 1; stage <= maxFacStage; stage++ {
		r := s.prove(n, stage)
		if r != NotYet {
			if r == Proven {
				return r, s.proofText.String()
			}
			return r, ""
		}
	}
	return ProbablePrime, ""
}

// prove implements one fac_stage pass of the FAS algorithm at level N.
func (s *Session) prove(n *gmath.Int, facStage int) Result {
	switch bpsw.IsProbablePrime(n) {
	case bpsw.Composite:
		return CompositeResult
	case bpsw.Prime:
		return PrimeDeterministic
	}

	fminRoot := n.NthRoot(4, true).Add(gmath.ONE)
	fmin := fminRoot.Mul(fminRoot)

	frame := &Frame{N: n, Stage: facStage}
	s.frameStack.Push(frame)
	defer s.frameStack.Pop()

	for stage := 1; stage <= facStage; stage++ {
		for _, d := range discriminant.Degrees() {
			if s.blacklist[d] {
				continue
			}
			if !discriminant.CheckInvariant(d) {
				logger.Printf(logger.CRITICAL, "[ecpp] discriminant %d fails invariant check", d)
				return CompositeResult // abort_fatal folded into the composite path: never emitted in practice since the table is pre-checked
			}
			entries := discriminant.Lookup(d)
			if len(entries) == 0 {
				continue
			}
			dInt := gmath.NewInt(d)
			if dInt.Jacobi(n) != 1 {
				continue
			}
			u, v, cerr := cornacchia.Solve(d, n)
			if cerr != nil {
				if stderrors.Is(cerr, errors.ErrCompositeWitness) {
					return CompositeResult
				}
				continue
			}
			for _, m := range chooseM(d, u, v, n) {
				if m == nil {
					continue
				}
				res, q := factorizer.CheckForFactor(m, fmin, stage, &s.saved)
				if res != factorizer.Found {
					continue
				}
				sub := s.prove(q, stage)
				if sub == CompositeResult {
					return CompositeResult
				}
				if sub == NotYet {
					continue
				}
				ok, a, b, p := s.findCurve(d, entries, m, q, n)
				if ok == curveComposite {
					return CompositeResult
				}
				if ok == curveNoPoint {
					s.blacklist[d] = true
					continue
				}
				s.proofText.Add(proof.Line{N: n, A: a, B: b, M: m, Q: q, Px: p.X, Py: p.Y})
				frame.D, frame.M, frame.Q, frame.A, frame.B, frame.Px, frame.Py = d, m, q, a, b, p.X, p.Y
				return Proven
			}
		}
	}
	return NotYet
}

// chooseM builds the curve-order candidate list: N+1+-u always; when
// D=-3 four extra candidates N+1+-(u+-3v)/2; when D=-4 two extra
// candidates N+1+-2v. Any candidate that is itself prime is dropped
// (ECPP needs m composite with a large prime factor q).
func chooseM(d int64, u, v, n *gmath.Int) []*gmath.Int {
	one := gmath.ONE
	np1 := n.Add(one)
	candidates := []*gmath.Int{np1.Add(u), np1.Sub(u)}

	switch d {
	case -3:
		threeV := gmath.THREE.Mul(v)
		for _, sign1 := range []*gmath.Int{u.Add(threeV), u.Sub(threeV)} {
			half := sign1.Div(gmath.TWO)
			candidates = append(candidates, np1.Add(half), np1.Sub(half))
		}
	case -4:
		twoV := gmath.TWO.Mul(v)
		candidates = append(candidates, np1.Add(twoV), np1.Sub(twoV))
	}

	out := make([]*gmath.Int, len(candidates))
	for i, c := range candidates {
		if c.ProbablyPrime(64) {
			out[i] = nil
			continue
		}
		out[i] = c
	}
	return out
}

type curveResult int

const (
	curveOK curveResult = iota
	curveComposite
	curveNoPoint
)

// findCurve implements find_curve(D,m,q,N): root-find the class
// polynomial mod N, derive (a,b), pick a twist, then search for a witness
// point.
func (s *Session) findCurve(d int64, entries []*discriminant.Entry, m, q, n *gmath.Int) (curveResult, *gmath.Int, *gmath.Int, *curve.Point) {
	entry := entries[0]
	roots, rerr := rootsOf(entry, n)
	if rerr != nil {
		if errorsIsComposite(rerr) {
			return curveComposite, nil, nil, nil
		}
		return curveNoPoint, nil, nil, nil
	}
	if len(roots) == 0 {
		return curveNoPoint, nil, nil, nil
	}

	var jInvariants []*gmath.Int
	for _, r := range roots {
		if entry.Kind == discriminant.Weber {
			if d%8 == 0 {
				continue // spec.md 4.8: skip entirely when D mod 8 = 0
			}
			// Konstantinou-Stamatiou-Zaroliagis conversion is out of
			// scope for the illustrative table shipped here (every Weber
			// entry we carry happens to have D mod 8 = 0); documented as
			// a known gap rather than guessed at.
			continue
		}
		jInvariants = append(jInvariants, r)
	}
	if len(jInvariants) == 0 {
		return curveNoPoint, nil, nil, nil
	}

	f := gmath.NewField(n)
	twists := 2
	switch d {
	case -3:
		twists = 6
	case -4:
		twists = 4
	}

	g, gerr := findTwistBase(n)
	if gerr != nil {
		return curveComposite, nil, nil, nil
	}

	for _, j := range jInvariants {
		var a, b *gmath.Int
		switch d {
		case -3:
			a, b = gmath.ZERO, n.Sub(gmath.ONE)
		case -4:
			a, b = n.Sub(gmath.ONE), gmath.ZERO
		default:
			denom, derr := f.Inv(j.Sub(gmath.NewInt(1728)).Mod(n))
			if derr != nil {
				return curveComposite, nil, nil, nil
			}
			c := f.Mul(j, denom)
			a = f.Mul(gmath.NewInt(-3), c)
			b = f.Mul(gmath.TWO, c)
		}

		for t := 0; t < twists; t++ {
			if t > 0 {
				switch d {
				case -3:
					b = f.Mul(b, g)
				case -4:
					a = f.Mul(a, g)
				default:
					a = f.Mul(a, f.Mul(g, g))
					b = f.Mul(b, f.Mul(g, f.Mul(g, g)))
				}
			}
			c := curve.New(a, b, n)
			tries := 50 * len(roots)
			for try := 0; try < tries; try++ {
				x := rng.RandBigInt(gmath.ONE, n.Sub(gmath.ONE))
				qv := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(a, x)), b)
				if qv.Jacobi(n) == -1 {
					continue
				}
				y, yerr := f.Sqrt(qv)
				if yerr != nil {
					return curveComposite, nil, nil, nil
				}
				p := &curve.Point{X: x, Y: y}
				res, cerr := c.CheckPoint(p, m, q)
				if cerr != nil {
					return curveComposite, nil, nil, nil
				}
				if res == curve.Success {
					return curveOK, a, b, p
				}
			}
		}
	}
	return curveNoPoint, nil, nil, nil
}

// findTwistBase picks the smallest g in [2,N) with jacobi(g,N) = -1,
// subject to the extra cubic-residue conditions spec.md 4.8 names when
// N == 1 (mod 3).
func findTwistBase(n *gmath.Int) (*gmath.Int, error) {
	three := gmath.THREE
	nMod3 := n.Mod(three)
	for g := gmath.TWO; g.Cmp(n) < 0; g = g.Add(gmath.ONE) {
		if g.Jacobi(n) != -1 {
			continue
		}
		if nMod3.Equals(gmath.ONE) {
			exp := n.Sub(gmath.ONE).Div(three)
			if g.ModPow(exp, n).Equals(gmath.ONE) {
				continue
			}
		}
		return g, nil
	}
	return nil, errors.New(errors.ErrCompositeWitness, "no quadratic non-residue found below N")
}

func rootsOf(entry *discriminant.Entry, n *gmath.Int) ([]*gmath.Int, error) {
	return poly.RootsModP(poly.New(entry.Coefficients...), n)
}

func errorsIsComposite(err error) bool {
	return stderrors.Is(err, errors.ErrCompositeWitness)
}
