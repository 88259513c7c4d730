package core

import "math/rand/v2"

// Source is the random capability the simulation consumes. Production code uses
// RNG; tests can substitute a scripted implementation.
type Source interface {
	// Bool returns a fair coin flip.
	Bool() bool
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is not safe for concurrent use; give each goroutine its own stream.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewStream(seed, 0)
}

// NewStream creates a deterministic RNG for one of several independent streams
// sharing a seed.
func NewStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.Uint64()&1 == 1
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
