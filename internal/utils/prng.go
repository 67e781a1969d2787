// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Weighted is anything that can take part in a weighted draw.
type Weighted interface {
	DrawWeight() int
}

// PRNGService wraps a seeded generator so the whole game can share
// one reproducible random source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter returns a value in [-spread, spread].
func (s *PRNGService) Jitter(spread float64) float64 {
	if spread <= 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * spread
}

// ChooseWeighted picks an index from entries proportionally to their weights.
// Entries with non-positive weight are never picked unless all of them are,
// in which case the first entry wins.
func ChooseWeighted[T Weighted](s *PRNGService, entries []T) int {
	if len(entries) == 0 {
		return -1
	}

	total := 0
	for _, e := range entries {
		if w := e.DrawWeight(); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := s.Intn(total)
	upto := 0
	for i, e := range entries {
		w := e.DrawWeight()
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(entries) - 1
}
