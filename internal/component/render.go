// component/render.go
package component

import "image/color"

// Renderable - компонент для отрисовки
type Renderable struct {
	Color    color.RGBA
	Radius   float32
	HalfSize float64 // половина стороны квадрата попадания
}

// Contains reports whether the point lies inside the square hit region
// centred on pos. Edges count as inside.
func (r *Renderable) Contains(pos *Position, x, y float64) bool {
	return x >= pos.X-r.HalfSize && x <= pos.X+r.HalfSize &&
		y >= pos.Y-r.HalfSize && y <= pos.Y+r.HalfSize
}
