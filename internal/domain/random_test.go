package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws and records every IntN bound it was asked for.
type scriptedRand struct {
	floats []float64
	ints   []int
	bounds []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}

	v := r.floats[0]
	r.floats = r.floats[1:]

	return v
}

func (r *scriptedRand) IntN(n int) int {
	r.bounds = append(r.bounds, n)

	if len(r.ints) == 0 {
		return 0
	}

	v := r.ints[0]
	r.ints = r.ints[1:]

	return v
}

func TestNewRand_SameSeedSameStream(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)

	for range 32 {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewRand_DifferentSeedsDiverge(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := 0

	for range 16 {
		if a.Float64() == b.Float64() {
			same++
		}
	}

	require.Less(t, same, 16)
}
