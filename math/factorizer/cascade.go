package factorizer

import (
	"github.com/bfix/primus/logger"
	"github.com/bfix/primus/math"
	"github.com/bfix/primus/rng"
)

// FactorKind classifies the outcome of a single factor_once call.
type FactorKind int

const (
	// NoFactor: the method made no progress.
	NoFactor FactorKind = iota
	// PrimeFactor: a prime factor was found.
	PrimeFactor
	// CompositeFactor: a composite factor was found (needs further
	// decomposition).
	CompositeFactor
)

// FactorOnce applies a single FactorFinder, classifying its result.
func FactorOnce(n *math.Int, method FactorFinder) (*math.Int, FactorKind) {
	f := method.GetFactor(n)
	if f == nil || f.Equals(n) || f.Equals(math.ONE) {
		return nil, NoFactor
	}
	if f.ProbablyPrime(128) {
		return f, PrimeFactor
	}
	return f, CompositeFactor
}

// Factor fully decomposes n into its prime factors via trial division
// followed by the escalation ladder: (Pollard rho/Brent, OLF, SQUFOF, p-1 10k, ECM
// 150x50, ECM 500x30, ECM 2000x10, p-1 200k, size-tuned ECM, then
// geometric ECM with doubling B1), emitting prime factors as they're
// found. SIMPQS is named by spec.md as an external, interface-only
// collaborator (its internals are out of scope), so this ladder never
// grows a large-N QS branch; ECM's geometric tail covers that range instead.
func Factor(n *math.Int) []*math.Int {
	var result []*math.Int
	rem, small := smallPrimes(n)
	result = append(result, small...)

	var decompose func(m *math.Int)
	decompose = func(m *math.Int) {
		if m.Equals(math.ONE) {
			return
		}
		if m.ProbablyPrime(128) {
			result = append(result, m)
			return
		}
		for _, step := range escalationLadder(m) {
			factor := step.GetFactor(m)
			if factor == nil || factor.Equals(m) || factor.Equals(math.ONE) {
				continue
			}
			other := m.Div(factor)
			decompose(factor)
			decompose(other)
			return
		}
		// escalation ladder exhausted: give up on this cofactor as-is,
		// recording it unfactored rather than looping forever.
		result = append(result, m)
	}
	decompose(rem)
	return result
}

// escalationLadder builds the size-tuned method sequence spec.md names for
// the full-decomposition driver. Pollard rho and its Brent variant lead the
// ladder: both are cheap, fast-inner-loop methods best suited to peeling
// small-to-medium factors before the more expensive p-1/ECM stages run
// (spec.md 4.5's C5 table lists them "used both standalone and by ECPP's
// check_for_factor" -- this is the standalone side of that requirement).
func escalationLadder(n *math.Int) []FactorFinder {
	ladder := []FactorFinder{
		new(Pollard_rho),
		new(Pollard_rho_Brent),
		new(OLF),
		new(SQUFOF),
		&Pollard_Pminus1_Stage2{B1: 10000, B2: 500000},
		&lenstraBudget{b1: 150, curves: 50},
		&lenstraBudget{b1: 500, curves: 30},
		&lenstraBudget{b1: 2000, curves: 10},
		&Pollard_Pminus1_Stage2{B1: 200000, B2: 10000000},
	}
	ladder = append(ladder, new(Lenstra_ECM))
	b1 := int64(1000)
	for i := 0; i < 6; i++ {
		ladder = append(ladder, &lenstraBudget{b1: b1, curves: 25})
		b1 *= 2
	}
	return ladder
}

// lenstraBudget runs ECM with an explicit (B1, curve count) budget instead
// of Lenstra_ECM's size-indexed table.
type lenstraBudget struct {
	b1     int64
	curves int
}

func (l *lenstraBudget) GetFactor(n *math.Int) *math.Int {
	for c := 0; c < l.curves; c++ {
		g := &Point{
			x: rng.RandBigInt(math.THREE, n),
			y: rng.RandBigInt(math.THREE, n),
		}
		ec := NewEllipticCurve(n, g)
		e := math.ONE
		p := int64(2)
		for p < l.b1 {
			pe := math.NewInt(p)
			k := int64(1)
			for {
				next := pe.Mul(math.NewInt(p))
				if next.Cmp(math.NewInt(l.b1)) > 0 {
					break
				}
				pe = next
				k++
			}
			e = e.Mul(pe).Mod(n)
			p = math.NewInt(p).NextProbablePrime(128).Int64()
		}
		r := ec.multiply(e, g)
		gcd := n.GCD(r.x)
		if gcd.Cmp(math.ONE) > 0 && gcd.Cmp(n) < 0 {
			return gcd
		}
	}
	return nil
}

// CheckResult is the outcome of CheckForFactor.
type CheckResult int

const (
	// Found: a prime factor f > fmin was isolated.
	Found CheckResult = iota
	// None: no usable factor; the value returned is m, or what is left of
	// it once a found factor brought it to fmin or below.
	None
	// Reduced: a factor was found but no prime above fmin was isolated; the
	// value returned is the composite cofactor above fmin, or m itself when
	// only a composite factor was found.
	Reduced
)

// CheckForFactor is ECPP's entry point into the cascade: it first
// consults the saved-factors cache (cheap trial division against factors
// already found in earlier recursion levels) before invoking any cascade
// method. Budgets grow with stage per spec.md 4.5.
func CheckForFactor(m, fmin *math.Int, stage int, saved *[]*math.Int) (CheckResult, *math.Int) {
	for _, f := range *saved {
		if m.Mod(f).Sign() == 0 {
			m = m.Div(f)
			if m.ProbablyPrime(128) && m.Cmp(fmin) > 0 {
				return Found, m
			}
			if m.Cmp(fmin) <= 0 {
				return None, m
			}
			return Reduced, m
		}
	}

	if m.ProbablyPrime(128) {
		if m.Cmp(fmin) > 0 {
			return Found, m
		}
		return None, m
	}

	// Early stages get a cheap Pollard rho/Brent pre-pass before the
	// budgeted p-1/ECM methods: both are fast-inner-loop methods good at
	// peeling small-to-medium factors cheaply (spec.md 4.5's C5 table
	// calls for them "used both standalone and by ECPP's check_for_factor").
	if stage <= 2 {
		for _, rho := range []FactorFinder{new(Pollard_rho), new(Pollard_rho_Brent)} {
			factor := rho.GetFactor(m)
			if factor == nil || factor.Equals(m) || factor.Equals(math.ONE) {
				continue
			}
			other := m.Div(factor)
			if factor.ProbablyPrime(128) {
				if stage >= 2 {
					*saved = appendSaved(*saved, factor)
				}
				if other.ProbablyPrime(128) && other.Cmp(fmin) > 0 {
					return Found, other
				}
				if other.Cmp(fmin) <= 0 {
					return None, other
				}
				return Reduced, other
			}
			if rng.Verbosity() > 0 {
				logger.Printf(logger.DBG, "[cascade] rho pre-pass found composite cofactor at stage %d", stage)
			}
			return Reduced, m
		}
	}

	method, curves := stageBudget(m, stage)
	factor := method.GetFactor(m)
	if factor == nil || factor.Equals(m) || factor.Equals(math.ONE) {
		return None, m
	}
	other := m.Div(factor)
	if factor.ProbablyPrime(128) {
		if stage >= 2 {
			*saved = appendSaved(*saved, factor)
		}
		if other.ProbablyPrime(128) && other.Cmp(fmin) > 0 {
			return Found, other
		}
		if other.Cmp(fmin) <= 0 {
			return None, other
		}
		return Reduced, other
	}
	_ = curves
	return Reduced, m
}

// stageBudget picks a method and ECM curve count per spec.md's stage
// schedule: stage 1 uses B1 ~= 300 + 3*bits(n) (or 3000/6000 by size);
// stage k>=5 uses B = 8000*(k-4)^3 with 5+k curves.
func stageBudget(n *math.Int, stage int) (FactorFinder, int) {
	bits := n.BitLen()
	if stage <= 1 {
		b1 := int64(300 + 3*bits)
		if bits > 200 {
			b1 = 6000
		} else if bits > 100 {
			b1 = 3000
		}
		return &lenstraBudget{b1: b1, curves: 10}, 10
	}
	if stage < 5 {
		return &Pollard_Pminus1_Stage2{B1: int64(1000 * stage), B2: int64(50000 * stage)}, 0
	}
	k := int64(stage - 4)
	b := 8000 * k * k * k
	curves := 5 + stage
	return &lenstraBudget{b1: b, curves: curves}, curves
}

// appendSaved adds f to the saved-factors cache, capped at MAX_SFACS per
// spec.md's data model (oldest entries are dropped once full -- a simple
// ring behavior favoring recently discovered, likely still-relevant
// factors over stale ones from early recursion levels).
const maxSFacs = 1000

func appendSaved(saved []*math.Int, f *math.Int) []*math.Int {
	for _, s := range saved {
		if s.Equals(f) {
			return saved
		}
	}
	saved = append(saved, f)
	if len(saved) > maxSFacs {
		saved = saved[len(saved)-maxSFacs:]
	}
	return saved
}
