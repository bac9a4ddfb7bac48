// Package proof assembles and verifies ECPP certificates: one text line
// per recursion level, outermost first, of the form
//
//	<N_i> : ECPP : <a> <b> <m> <q> (<Px>:<Py>)\n
//
// All numbers base 10, no leading zeros, no internal whitespace inside a
// number.
package proof

import (
	"fmt"
	"strings"

	"github.com/bfix/primus/curve"
	gmath "github.com/bfix/primus/math"
)

// Line is one recursion level's certified data.
type Line struct {
	N    *gmath.Int
	A, B *gmath.Int
	M, Q *gmath.Int
	Px, Py *gmath.Int
}

// Builder accumulates proof lines as the ECPP recursion unwinds.
type Builder struct {
	sb strings.Builder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add prepends one certificate line, reserving roughly 7*digits(N)+20 bytes
// as a growth hint per spec.md 4.9's sizing note. The ECPP recursion
// finishes its innermost level first, so prepending leaves the outermost N
// on the first line.
func (b *Builder) Add(l Line) {
	digits := len(l.N.String())
	line := fmt.Sprintf("%s : ECPP : %s %s %s %s (%s:%s)\n",
		l.N, l.A, l.B, l.M, l.Q, l.Px, l.Py)
	rest := b.sb.String()
	b.sb.Reset()
	b.sb.Grow(len(rest) + 7*digits + 20)
	b.sb.WriteString(line)
	b.sb.WriteString(rest)
}

// String returns the assembled proof text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Parse splits proof text back into Lines.
func Parse(text string) ([]Line, error) {
	var lines []Line
	for _, raw := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if raw == "" {
			continue
		}
		l, err := parseLine(raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func parseLine(raw string) (Line, error) {
	parts := strings.Split(raw, " : ")
	if len(parts) != 3 || parts[1] != "ECPP" {
		return Line{}, fmt.Errorf("proof: malformed line %q", raw)
	}
	fields := strings.Fields(parts[2])
	if len(fields) != 5 {
		return Line{}, fmt.Errorf("proof: malformed fields in %q", raw)
	}
	point := strings.Trim(fields[4], "()")
	xy := strings.Split(point, ":")
	if len(xy) != 2 {
		return Line{}, fmt.Errorf("proof: malformed point in %q", raw)
	}
	return Line{
		N:  gmath.NewIntFromString(parts[0]),
		A:  gmath.NewIntFromString(fields[0]),
		B:  gmath.NewIntFromString(fields[1]),
		M:  gmath.NewIntFromString(fields[2]),
		Q:  gmath.NewIntFromString(fields[3]),
		Px: gmath.NewIntFromString(xy[0]),
		Py: gmath.NewIntFromString(xy[1]),
	}, nil
}

// Verify re-checks a parsed certificate end to end: per spec.md 6, for each
// line it checks the Hasse bound on m, q|m, q > (N^(1/4)+1)^2, the point on
// curve, m*P = O, (m/q)*P != O, and that each N_(i+1) equals the next line's
// claimed subject (or is small enough to stop at, left to the caller's
// BPSW check on the final q).
func Verify(lines []Line) bool {
	for i, l := range lines {
		if !hasseBound(l.N, l.M) {
			return false
		}
		if l.M.Mod(l.Q).Sign() != 0 {
			return false
		}
		fourthRoot := l.N.NthRoot(4, true).Add(gmath.ONE)
		bound := fourthRoot.Mul(fourthRoot)
		if l.Q.Cmp(bound) <= 0 {
			return false
		}
		c := curve.New(l.A, l.B, l.N)
		p := &curve.Point{X: l.Px, Y: l.Py}
		if !c.OnCurve(p) {
			return false
		}
		res, err := c.CheckPoint(p, l.M, l.Q)
		if err != nil || res != curve.Success {
			return false
		}
		if i+1 < len(lines) {
			if !l.Q.Equals(lines[i+1].N) {
				return false
			}
		}
	}
	return true
}

// hasseBound checks |m - (N+1)| <= 2*sqrt(N).
func hasseBound(n, m *gmath.Int) bool {
	diff := m.Sub(n.Add(gmath.ONE)).Abs()
	bound := gmath.TWO.Mul(n.NthRoot(2, true))
	return diff.Cmp(bound) <= 0
}
