package core

import (
	"math/rand/v2"

	"gridmesh/pkg/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability 1/n.
func (r *RNG) Chance(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// FillBinary fills every cell of g with 0 or 1.
func (r *RNG) FillBinary(g *grid.Grid2D[uint8]) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = uint8(r.r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
