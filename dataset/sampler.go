package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Sampler selects sample indices for the training loop. Draws are with
// replacement: the same index may recur and indices may never be drawn
// over a finite run.
type Sampler interface {
	// NextIndex returns the next sample index in [0, n).
	NextIndex() int
}

// UniformSampler draws indices uniformly at random with replacement.
type UniformSampler struct {
	rnd *rand.Rand
	n   int
}

var _ Sampler = (*UniformSampler)(nil)

// NewUniformSampler creates a sampler over [0, n) backed by the given
// source. Seed the source for reproducible runs.
func NewUniformSampler(src rand.Source, n int) (*UniformSampler, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrBadShape)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sampler needs a positive sample count, got %d", ErrBadShape, n)
	}

	return &UniformSampler{rnd: rand.New(src), n: n}, nil
}

// NextIndex returns an index drawn uniformly from [0, n), independent
// of previous draws.
func (s *UniformSampler) NextIndex() int {
	return s.rnd.Intn(s.n)
}
