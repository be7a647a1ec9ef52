package rng

import "math/rand"

// Seeded is a deterministic generator for reproducible shuffles.
// This should only be used by tests and audit replays.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
