// Package dice wraps a seeded random source behind the couple of draws
// the game needs. Injecting the source keeps every roll reproducible
// under a fixed seed.
package dice

import "math/rand"

// Roller draws random values from a configurable source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a Roller backed by the given random source.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Chance reports true with probability p. Values at or below 0 never
// succeed; values at or above 1 always do.
func (r *Roller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}

// IntBetween returns a uniform integer in the inclusive range [lo, hi].
// A degenerate range returns lo.
func (r *Roller) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}
