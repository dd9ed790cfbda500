package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthPips(t *testing.T) {
	pips := HealthPips(10, 20, 3, 7)
	require.Len(t, pips, 7)

	full := 0
	for _, p := range pips {
		if p.Full {
			full++
		}
	}
	assert.Equal(t, 3, full)
	assert.True(t, pips[2].Full)
	assert.False(t, pips[3].Full)

	assert.Equal(t, float32(18), pips[0].X)
	assert.Equal(t, float32(28), pips[0].Y)
	// шестой кружок начинает второй ряд
	assert.Equal(t, pips[0].X, pips[5].X)
	assert.Equal(t, pips[0].Y+20, pips[5].Y)

	assert.Nil(t, HealthPips(0, 0, 0, 0))
}

func TestColumn(t *testing.T) {
	rects := Column(500, 300, 200, 80, 20, 3)
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(400, 300, 600, 380), rects[0])
	assert.Equal(t, image.Rect(400, 400, 600, 480), rects[1])
	assert.Equal(t, image.Rect(400, 500, 600, 580), rects[2])
	assert.Equal(t, image.Rect(450, 10, 550, 40), CenteredRect(500, 10, 100, 30))
}
