package cornacchia

import (
	"testing"

	gmath "github.com/bfix/primus/math"
)

func TestSolveSatisfiesEquation(t *testing.T) {
	cases := []struct {
		d int64
		n int64
	}{
		{-4, 13},
		{-4, 17},
		{-3, 7},
		{-7, 11},
	}
	for _, c := range cases {
		n := gmath.NewInt(c.n)
		u, v, err := Solve(c.d, n)
		if err != nil {
			t.Fatalf("D=%d N=%d: Solve failed: %v", c.d, c.n, err)
		}
		absD := gmath.NewInt(-c.d)
		lhs := u.Mul(u).Add(absD.Mul(v).Mul(v))
		rhs := gmath.FOUR.Mul(n)
		if !lhs.Equals(rhs) {
			t.Errorf("D=%d N=%d: u=%s v=%s -> u^2+|D|v^2=%s, want %s", c.d, c.n, u, v, lhs, rhs)
		}
	}
}
