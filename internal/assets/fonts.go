// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts - шрифты интерфейса трёх размеров
type Fonts struct {
	Title font.Face
	HUD   font.Face
	Small font.Face
}

// LoadFonts parses the embedded Go Regular font and builds faces of the
// given sizes. The font ships with x/image, so no asset files are read.
func LoadFonts(titleSize, hudSize, smallSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	f := &Fonts{}
	for _, it := range []struct {
		dst  *font.Face
		size float64
	}{
		{&f.Title, titleSize},
		{&f.HUD, hudSize},
		{&f.Small, smallSize},
	} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    it.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %.0f: %w", it.size, err)
		}
		*it.dst = face
	}
	return f, nil
}

// Close releases the faces.
func (f *Fonts) Close() {
	for _, face := range []font.Face{f.Title, f.HUD, f.Small} {
		if face != nil {
			face.Close()
		}
	}
}
