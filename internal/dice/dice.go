// Package dice provides the seedable uniform random source shared by the
// activity and event systems.
package dice

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform draws in [0,1).
type Source interface {
	Float64() float64
}

// New returns a PCG-backed generator. A zero seed is replaced with one
// derived from the clock; the seed actually used is returned so a run can
// be replayed.
func New(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// Uniform draws from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance reports whether a draw falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Sequence replays fixed draws, then repeats the last one. It is meant for
// tests that need to force a specific outcome.
type Sequence struct {
	values []float64
	index  int
}

// NewSequence returns a Source that yields values in order.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.index >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.index]
	s.index++
	return v
}
