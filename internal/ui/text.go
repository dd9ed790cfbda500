package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s horizontally centred on cx with its top at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, cx-width/2, y+ascent, clr)
}

// DrawLines draws each line centred on cx, one lineHeight apart.
func DrawLines(screen *ebiten.Image, lines []string, face font.Face, cx, top, lineHeight int, clr color.Color) {
	for i, line := range lines {
		DrawCentered(screen, line, face, cx, top+i*lineHeight, clr)
	}
}

// DrawLeft draws lines left-aligned starting at (x, top).
func DrawLeft(screen *ebiten.Image, lines []string, face font.Face, x, top, lineHeight int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, x, top+i*lineHeight+ascent, clr)
	}
}
