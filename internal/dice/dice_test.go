package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	a, seedA := New(7)
	b, seedB := New(7)
	assert.Equal(t, seedA, seedB)
	for range 20 {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewZeroSeedPicksOne(t *testing.T) {
	_, seed := New(0)
	assert.NotZero(t, seed)
}

func TestUniformAndChance(t *testing.T) {
	src := NewSequence(0, 0.5, 0.999)
	assert.Equal(t, 0.6, Uniform(src, 0.6, 1.0))
	assert.InDelta(t, 0.8, Uniform(src, 0.6, 1.0), 1e-9)
	assert.Less(t, Uniform(src, 0.6, 1.0), 1.0)

	assert.True(t, Chance(NewSequence(0.09), 0.1))
	assert.False(t, Chance(NewSequence(0.1), 0.1))
}

func TestSequenceRepeatsLast(t *testing.T) {
	src := NewSequence(0.2, 0.4)
	assert.Equal(t, 0.2, src.Float64())
	assert.Equal(t, 0.4, src.Float64())
	assert.Equal(t, 0.4, src.Float64())
	assert.Equal(t, 0.0, NewSequence().Float64())
}
