package math

import "github.com/bfix/primus/errors"

// Field is a modular-arithmetic kernel bound to a fixed modulus N. It wraps
// the Int primitives (mulmod/powmod/invmod/jacobi/sqrtmod) used throughout
// the factoring and primality-proving packages, the same way the teacher's
// prime_field.go bound arithmetic to a fixed prime P -- generalized here to
// an arbitrary odd N, which may or may not be prime at call time.
type Field struct {
	N *Int
}

// NewField returns a Field of residues modulo n.
func NewField(n *Int) *Field {
	return &Field{N: n}
}

// Reduce returns a mod N in [0,N).
func (f *Field) Reduce(a *Int) *Int {
	return a.Mod(f.N)
}

// Add returns (a+b) mod N.
func (f *Field) Add(a, b *Int) *Int {
	return a.Add(b).Mod(f.N)
}

// Sub returns (a-b) mod N.
func (f *Field) Sub(a, b *Int) *Int {
	return a.Sub(b).Mod(f.N)
}

// Mul returns (a*b) mod N -- the "mulmod" primitive.
func (f *Field) Mul(a, b *Int) *Int {
	return a.Mul(b).Mod(f.N)
}

// Pow returns (a^e) mod N -- the "powmod" primitive.
func (f *Field) Pow(a, e *Int) *Int {
	return a.ModPow(e, f.N)
}

// Inv returns the multiplicative inverse of a mod N -- the "invmod"
// primitive. If a shares a nontrivial factor with N, Inv returns an
// ErrCompositeWitness naming gcd(a,N), since a failed inverse mod a
// candidate-prime N is itself a proof of compositeness.
func (f *Field) Inv(a *Int) (*Int, error) {
	g := a.GCD(f.N)
	if !g.Equals(ONE) {
		return nil, errors.New(errors.ErrCompositeWitness, "gcd(%s,%s)=%s", a, f.N, g)
	}
	inv := a.ModInverse(f.N)
	if inv == nil {
		return nil, errors.New(errors.ErrCompositeWitness, "no modular inverse of %s mod %s", a, f.N)
	}
	return inv, nil
}

// Div returns (a/b) mod N, i.e. a * Inv(b).
func (f *Field) Div(a, b *Int) (*Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// Jacobi returns the Jacobi symbol (a/N); valid for any odd N.
func (f *Field) Jacobi(a *Int) int {
	return a.Jacobi(f.N)
}

// Sqrt returns a square root of a mod N via Tonelli-Shanks, which requires N
// be an odd prime. The root is verified (r^2 mod N == a mod N) before being
// returned; a mismatch means N was not actually prime, surfaced as
// ErrCompositeWitness rather than a silent wrong answer.
func (f *Field) Sqrt(a *Int) (*Int, error) {
	r, err := SqrtModP(a, f.N)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidInput, "%s", err.Error())
	}
	if !r.Mul(r).Mod(f.N).Equals(a.Mod(f.N)) {
		return nil, errors.New(errors.ErrCompositeWitness, "sqrt(%s) mod %s failed verification", a, f.N)
	}
	return r, nil
}
