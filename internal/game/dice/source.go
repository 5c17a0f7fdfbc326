package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n) for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. Output is not reproducible.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// SeededSource is a deterministic Source. Two SeededSources built from the same
// seed and stream produce identical sequences.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source on stream 0 of seed.
func NewSeededSource(seed uint64) *SeededSource {
	return NewStreamSource(seed, 0)
}

// NewStreamSource returns a deterministic Source for one independent stream of seed.
// Batch generation gives every hero its own stream so results do not depend on
// goroutine scheduling.
func NewStreamSource(seed, stream uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, stream))}
}

// Intn returns a deterministic int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *SeededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// FixedSource replays a scripted sequence of Intn results, cycling when exhausted.
// Each value is reduced modulo n. Intended for tests and replay tooling.
type FixedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewFixedSource returns a FixedSource replaying values.
//
// Precondition: len(values) > 0; every value >= 0.
func NewFixedSource(values ...int) *FixedSource {
	if len(values) == 0 {
		panic("dice: NewFixedSource requires at least one value")
	}
	return &FixedSource{values: values}
}

// Intn returns the next scripted value modulo n.
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.values[f.next%len(f.values)]
	f.next++
	return v % n
}
