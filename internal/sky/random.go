package sky

import (
	"math/rand/v2"
	"time"
)

// RandSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Rewinder is implemented by sources that replay the same sequence on every
// pass. The Renderer rewinds them before generating a field.
type Rewinder interface {
	Rewind()
}

// NewWallclockSource returns a PCG source seeded from the current time, so
// every process sees a different sky.
func NewWallclockSource() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>16|3))
}

// SeededSource restarts from the same seed on every pass, producing the same
// star layout each time.
type SeededSource struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeededSource creates a rewinding source for seed.
func NewSeededSource(seed uint64) *SeededSource {
	s := &SeededSource{seed: seed}
	s.Rewind()
	return s
}

// IntN returns a uniform integer in [0, n).
func (s *SeededSource) IntN(n int) int {
	return s.rng.IntN(n)
}

// Rewind restarts the sequence from the seed.
func (s *SeededSource) Rewind() {
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed>>16|3))
}
