package proof

import (
	"strings"
	"testing"

	gmath "github.com/bfix/primus/math"
)

func TestBuildAndParseRoundTrip(t *testing.T) {
	b := NewBuilder()
	l := Line{
		N: gmath.NewInt(97), A: gmath.TWO, B: gmath.THREE,
		M: gmath.NewInt(100), Q: gmath.NewInt(89),
		Px: gmath.THREE, Py: gmath.SIX,
	}
	b.Add(l)
	text := b.String()
	if !strings.Contains(text, ": ECPP :") {
		t.Fatalf("unexpected proof text: %q", text)
	}
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 line, got %d", len(parsed))
	}
	if !parsed[0].N.Equals(l.N) || !parsed[0].Q.Equals(l.Q) {
		t.Fatalf("round-trip mismatch: %+v", parsed[0])
	}
}
