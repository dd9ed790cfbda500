package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenIsInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := rng.Between(1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
		seenMin = seenMin || v == 1
		seenMax = seenMax || v == 4
	}
	assert.True(t, seenMin)
	assert.True(t, seenMax)
	assert.Equal(t, 5, rng.Between(5, 5))
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Between(50, 950), b.Between(50, 950))
	}
	assert.Equal(t, int64(99), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChanceBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1))
	}
}

func TestSteps(t *testing.T) {
	assert.Equal(t, 850, StepDown(1000, 150, 300))
	assert.Equal(t, 300, StepDown(400, 150, 300))
	assert.InDelta(t, 0.28, StepUp(0.2, 0.08, 0.8), 1e-9)
	assert.Equal(t, 0.8, StepUp(0.76, 0.08, 0.8))
}

func TestGrowPercent(t *testing.T) {
	assert.Equal(t, 65, GrowPercent(50, 130))
	assert.Equal(t, 84, GrowPercent(65, 130))
	assert.Equal(t, 109, GrowPercent(84, 130))
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "0", FormatPoints(0))
	assert.Equal(t, "950", FormatPoints(950))
	assert.Equal(t, "12,345", FormatPoints(12345))
}
