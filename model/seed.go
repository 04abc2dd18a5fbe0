package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// IntSource yields uniformly random ints in [0, n)
type IntSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// SeedRandom brings count randomly chosen cells to life. Picks are made with
// replacement, so fewer than count distinct cells may end up alive.
// The global source is seeded by the runtime, so runs are not reproducible.
func (b *Board) SeedRandom(count int) error {
	return b.SeedFrom(globalSource{}, count)
}

// SeedFrom is SeedRandom with the coordinates drawn from src
func (b *Board) SeedFrom(src IntSource, count int) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[SeedFrom] seed count must not be negative, got %d", count)
	}

	for range count {
		b.cells[src.IntN(b.size)][src.IntN(b.size)] = Alive
	}
	return nil
}
