package domain

import "math/rand/v2"

// Rand is the source of uniform randomness consumed by the mutation engine.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// RandFactory builds a Rand for a seed.
type RandFactory func(seed uint64) Rand

const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}
