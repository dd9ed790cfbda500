package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// justPressed собирает нажатия этого кадра: левая кнопка мыши и новые касания.
func justPressed(buf []image.Point, touches []ebiten.TouchID) ([]image.Point, []ebiten.TouchID) {
	buf = buf[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		buf = append(buf, image.Pt(ebiten.CursorPosition()))
	}
	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	for _, id := range touches {
		buf = append(buf, image.Pt(ebiten.TouchPosition(id)))
	}
	return buf, touches
}
