// internal/ui/button.go
package ui

import (
	"image"
	"strings"

	"go-click-defense/internal/config"
	"go-click-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button - кликабельная кнопка с многострочной подписью.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
}

func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{Rect: rect, Text: text}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw рисует кнопку; при наведении фон темнее.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := config.ButtonColor
	fg := config.TextLightColor
	switch {
	case b.Disabled:
		bg = config.ButtonDisabled
		fg = config.ButtonTextDisabled
	case hovered:
		bg = render.DarkenColor(bg)
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, fg, false)

	lines := strings.Split(b.Text, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	top := b.Rect.Min.Y + (b.Rect.Dy()-lineHeight*len(lines))/2
	DrawLines(screen, lines, face, b.Rect.Min.X+b.Rect.Dx()/2, top, lineHeight, fg)
}

