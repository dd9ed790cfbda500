// internal/system/movement.go
package system

import (
	"go-click-defense/internal/entity"
	"go-click-defense/internal/types"
	"go-click-defense/pkg/utils"
)

// MovementSystem двигает врагов к центру экрана
type MovementSystem struct {
	ecs     *entity.ECS
	centerX float64
	centerY float64
	radius  float64
}

func NewMovementSystem(ecs *entity.ECS, centerX, centerY, radius float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, centerX: centerX, centerY: centerY, radius: radius}
}

// Update сдвигает каждого врага на его скорость вдоль единичного вектора
// к центру. Возвращает ID врагов, оказавшихся ближе radius к центру,
// в порядке появления. Удаление - забота вызывающего.
func (s *MovementSystem) Update() []types.EntityID {
	var arrived []types.EntityID
	for _, id := range s.ecs.Order {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		dx, dy := utils.Direction(pos.X, pos.Y, s.centerX, s.centerY)
		pos.X += dx * vel.Speed
		pos.Y += dy * vel.Speed

		if utils.Distance(pos.X, pos.Y, s.centerX, s.centerY) < s.radius {
			arrived = append(arrived, id)
		}
	}
	return arrived
}
