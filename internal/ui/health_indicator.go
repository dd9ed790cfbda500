// internal/ui/health_indicator.go
package ui

import (
	"strconv"

	"go-click-defense/internal/config"
	"go-click-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthIndicator отображает здоровье центра сеткой кружков.
type HealthIndicator struct {
	X, Y float32
	face font.Face
}

func NewHealthIndicator(x, y float32, face font.Face) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует кружки и подпись health/maxHealth над сеткой.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for _, pip := range layout.HealthPips(i.X, i.Y, health, maxHealth) {
		c := config.HealthPipEmpty
		if pip.Full {
			c = config.HealthPipFull
		}
		vector.DrawFilledCircle(screen, pip.X, pip.Y, layout.HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, pip.X, pip.Y, layout.HealthCircleRadius, 1, config.HealthPipStroke, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	lineHeight := i.face.Metrics().Height.Ceil()
	DrawCentered(screen, label, i.face, int(i.X+layout.GridWidth()/2), int(i.Y)-lineHeight-4, config.TextLightColor)
}
