package engine

import (
	"math/rand/v2"

	"lukechampine.com/frand"
)

// Source draws from frand's CSPRNG.
type Source struct{}

func NewSource() Source {
	return Source{}
}

func (Source) IntN(n int) int {
	return frand.Intn(n)
}

func (Source) Float64() float64 {
	return float64(frand.Uint64n(1<<53)) / (1 << 53)
}

// NewSeeded returns a reproducible source.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
