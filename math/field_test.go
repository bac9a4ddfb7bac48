package math

import (
	"testing"
)

func TestFieldArithmetic(t *testing.T) {
	p := NewInt(1000000007)
	f := NewField(p)
	a := NewInt(123456)
	b := NewInt(654321)

	sum := f.Add(a, b)
	if !sum.Equals(a.Add(b).Mod(p)) {
		t.Fatal("Add mismatch")
	}
	prod := f.Mul(a, b)
	if !prod.Equals(a.Mul(b).Mod(p)) {
		t.Fatal("Mul mismatch")
	}
	inv, err := f.Inv(a)
	if err != nil {
		t.Fatalf("Inv failed: %v", err)
	}
	if !f.Mul(a, inv).Equals(ONE) {
		t.Fatal("a * Inv(a) != 1")
	}
}

func TestFieldInvCompositeWitness(t *testing.T) {
	n := NewInt(35) // 5*7
	f := NewField(n)
	if _, err := f.Inv(NewInt(7)); err == nil {
		t.Fatal("expected composite witness error")
	}
}

func TestFieldSqrt(t *testing.T) {
	p := NewInt(10007)
	f := NewField(p)
	x := NewInt(1234)
	sq := f.Mul(x, x)
	r, err := f.Sqrt(sq)
	if err != nil {
		t.Fatalf("Sqrt failed: %v", err)
	}
	if !r.Equals(x) && !r.Equals(p.Sub(x)) {
		t.Fatalf("sqrt mismatch: got %s", r)
	}
}

func TestFieldJacobi(t *testing.T) {
	n := NewInt(21) // composite, valid Jacobi domain
	f := NewField(n)
	j := f.Jacobi(NewInt(5))
	if j != -1 && j != 0 && j != 1 {
		t.Fatalf("invalid jacobi symbol %d", j)
	}
}
