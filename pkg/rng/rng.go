// Package rng provides the deterministic random source shared by every
// generation step. A Source seeded with the same value yields the same
// sequence of draws on every platform, so a seed reproduces a map exactly.
package rng

import "math/rand/v2"

// Source is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source using the provided seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint64 returns the next raw 64-bit draw.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Float64 returns a random float in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Range returns a random int in [lo, hi], inclusive on both ends.
// It panics if hi < lo.
func (s *Source) Range(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// Bool returns a random boolean value.
func (s *Source) Bool() bool {
	return s.r.IntN(2) == 1
}

// Shuffle pseudo-randomizes the order of n elements using the swap function.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
