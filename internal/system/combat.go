package system

import (
	"go-click-defense/internal/component"
	"go-click-defense/internal/entity"
	"go-click-defense/internal/types"
)

// HitResult - итог клика по врагу
type HitResult struct {
	ID        types.EntityID
	Remaining int  // здоровье после удара, не меньше нуля
	Killed    bool // здоровье упало до нуля
	Award     int  // очки за убийство: исходное максимальное здоровье
}

// CombatSystem разрешает клики игрока.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// FindAt returns the first enemy, in spawn order, whose hit region
// contains the point.
func (s *CombatSystem) FindAt(x, y float64) (types.EntityID, bool) {
	for _, id := range s.ecs.Order {
		pos, hasPos := s.ecs.Positions[id]
		r, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		if r.Contains(pos, x, y) {
			return id, true
		}
	}
	return 0, false
}

// Hit наносит урон power врагу id и перекрашивает его.
// Убитый враг не удаляется здесь.
func (s *CombatSystem) Hit(id types.EntityID, power int) (HitResult, bool) {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return HitResult{}, false
	}
	health.Value = max(0, health.Value-power)
	if r, ok := s.ecs.Renderables[id]; ok {
		r.Color = component.TintForHealth(health.Value)
	}
	res := HitResult{ID: id, Remaining: health.Value}
	if health.Value <= 0 {
		res.Killed = true
		res.Award = health.Max
	}
	return res, true
}
