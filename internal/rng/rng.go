// Package rng provides the seeded random source behind all synthetic
// telemetry. Identical seeds produce identical streams as long as call
// order is preserved; callers must never re-seed mid-sequence.
package rng

import "math/rand"

// Source is a deterministic pseudo-random stream. It is not safe for
// concurrent use; each batch run owns exactly one Source.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a fixed seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next float in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntBetween returns a uniform integer in [min,max] inclusive.
// If max <= min, min is returned.
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min,max).
// If max <= min, min is returned.
func (s *Source) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

// Bool returns true with probability p (clamped to [0,1]).
func (s *Source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// Pick returns a uniform choice from a non-empty slice.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.Intn(len(items))]
}

// WeightedPick returns a choice from items with the given relative
// weights. Weights must be non-negative with a positive sum; the last
// item is returned if rounding exhausts the range.
func WeightedPick[T any](s *Source, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.r.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if target < acc {
			return items[i]
		}
	}
	return items[len(items)-1]
}
