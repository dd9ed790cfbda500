// Package layout считает геометрию интерфейса без отрисовки.
package layout

import "image"

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// Pip - один кружок индикатора здоровья
type Pip struct {
	X, Y float32 // центр
	Full bool
}

// HealthPips раскладывает maxHealth кружков сеткой по HealthCols в ряд,
// первые health из них заполнены.
func HealthPips(x, y float32, health, maxHealth int) []Pip {
	if maxHealth <= 0 {
		return nil
	}
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	pips := make([]Pip, maxHealth)
	for j := range pips {
		row, col := j/HealthCols, j%HealthCols
		pips[j] = Pip{
			X:    x + float32(col)*step + HealthCircleRadius,
			Y:    y + float32(row)*step + HealthCircleRadius,
			Full: j < health,
		}
	}
	return pips
}

// GridWidth returns the width taken by a full row of pips.
func GridWidth() float32 {
	return HealthCols*(HealthCircleRadius*2+HealthCircleSpacing) - HealthCircleSpacing
}

// CenteredRect returns a w×h rectangle centred horizontally on cx with its top at y.
func CenteredRect(cx, y, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, y, cx-w/2+w, y+h)
}

// Column stacks n rectangles of the given size below top, separated by gap.
func Column(cx, top, w, h, gap, n int) []image.Rectangle {
	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = CenteredRect(cx, top+i*(h+gap), w, h)
	}
	return rects
}
