package picker

import "math/rand/v2"

// Source yields uniformly distributed indexes in [0, n).
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a function to Source.
type SourceFunc func(n int) int

// IntN implements Source.
func (f SourceFunc) IntN(n int) int { return f(n) }

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a reproducible Source. Useful for replaying a draw.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
