package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts(48, 32, 24)
	require.NoError(t, err)
	defer f.Close()

	title := font.MeasureString(f.Title, "SHOP")
	small := font.MeasureString(f.Small, "SHOP")
	assert.Greater(t, title, small)
	assert.Greater(t, f.HUD.Metrics().Height, f.Small.Metrics().Height)
}
