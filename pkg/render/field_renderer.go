package render

import (
	"go-click-defense/internal/component"
	"go-click-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует центральную зону и врагов.
type FieldRenderer struct {
	centerX, centerY float32
	radius           float32
	colors           FieldColors
}

func NewFieldRenderer(centerX, centerY, radius float64, colors FieldColors) *FieldRenderer {
	return &FieldRenderer{
		centerX: float32(centerX),
		centerY: float32(centerY),
		radius:  float32(radius),
		colors:  colors,
	}
}

// Draw fills the background, then the zone, then enemies in spawn order
// so later enemies are drawn on top.
func (r *FieldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.colors.BackgroundColor)
	r.DrawZone(screen)
	for _, id := range ecs.Order {
		pos, okPos := ecs.Positions[id]
		rend, okRend := ecs.Renderables[id]
		if !okPos || !okRend {
			continue
		}
		r.drawEnemy(screen, pos, rend)
	}
}

func (r *FieldRenderer) DrawZone(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, r.centerX, r.centerY, r.radius, r.colors.ZoneFill, true)
	vector.StrokeCircle(screen, r.centerX, r.centerY, r.radius, r.colors.ZoneStrokeWidth, r.colors.ZoneStroke, true)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, pos *component.Position, rend *component.Renderable) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, rend.Color, true)
	// граница спрайта = область попадания
	side := float32(rend.HalfSize * 2)
	vector.StrokeRect(screen, float32(pos.X-rend.HalfSize), float32(pos.Y-rend.HalfSize), side, side, 1, DarkenColor(rend.Color), false)
}
