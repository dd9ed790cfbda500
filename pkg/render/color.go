// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the colors needed to draw the playing field.
type FieldColors struct {
	BackgroundColor color.RGBA
	ZoneStroke      color.RGBA
	ZoneFill        color.RGBA
	ZoneStrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
