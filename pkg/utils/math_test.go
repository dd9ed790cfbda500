package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionIsUnit(t *testing.T) {
	dx, dy := Direction(50, 50, 500, 400)
	assert.InDelta(t, 1.0, math.Hypot(dx, dy), 1e-12)
	assert.Greater(t, dx, 0.0)
	assert.Greater(t, dy, 0.0)

	dx, dy = Direction(10, 10, 10, 10)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}
