// Package rng provides the process-wide pseudo-random source used by
// Miller-Rabin random-base selection, polynomial root splitting and curve
// point selection, plus the verbosity knob that gates trace logging
// independently of the log level.
//
// Grounded on the teacher's crypto/prng.go + crypto/prng_source.go: a
// math/rand.Source backed directly by crypto/rand, wrapped in a singleton
// *rand.Rand. Non-cryptographic in the sense spec.md allows -- every
// downstream test is re-verified -- but seeded from real entropy rather
// than a clock, same as the teacher.
package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync/atomic"

	gmath "github.com/bfix/primus/math"
)

// prngSource implements math/rand.Source by reading from crypto/rand.
type prngSource struct {
	mask *big.Int
}

// newPrngSource returns a Source that yields 63-bit values from crypto/rand.
func newPrngSource() *prngSource {
	return &prngSource{mask: new(big.Int).Lsh(big.NewInt(1), 63)}
}

// Int63 returns a non-negative 63-bit random integer from crypto/rand.
func (s *prngSource) Int63() int64 {
	v, err := rand.Int(rand.Reader, s.mask)
	if err != nil {
		panic(err)
	}
	return v.Int64()
}

// Seed is a deliberate no-op: the source always draws from crypto/rand, so
// reseeding would have no effect and is not an error.
func (s *prngSource) Seed(seed int64) {}

var inst = mrand.New(newPrngSource())

var verbosity int32

// RandInt returns a random int in [0,n).
func RandInt(n int) int {
	return inst.Intn(n)
}

// RandBytes returns n random bytes.
func RandBytes(n int) []byte {
	buf := make([]byte, n)
	inst.Read(buf)
	return buf
}

// RandBigInt returns a random *math.Int uniformly distributed in
// [lower,upper].
func RandBigInt(lower, upper *gmath.Int) *gmath.Int {
	return gmath.NewIntRndRange(lower, upper)
}

// Verbosity returns the current process-wide trace verbosity.
func Verbosity() int {
	return int(atomic.LoadInt32(&verbosity))
}

// SetVerbosity sets the process-wide trace verbosity. Packages that emit
// logger.DBG trace lines check this in addition to the log level, so a
// caller can dial detail without touching the logger's threshold.
func SetVerbosity(n int) {
	atomic.StoreInt32(&verbosity, int32(n))
}
