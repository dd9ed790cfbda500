// internal/entity/ecs.go
package entity

import (
	"go-click-defense/internal/component"
	"go-click-defense/internal/types"
)

// ECS хранит компоненты врагов текущего забега.
// Order держит порядок появления: клик попадает в первого по этому порядку.
type ECS struct {
	NextID      types.EntityID
	Order       []types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
	}
}

// NewEntity выдаёт новый ID и ставит его в конец порядка обхода.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Order = append(ecs.Order, id)
	return id
}

// Remove deletes every component of id. The relative order of the
// remaining entities is preserved. Returns false if id was not alive.
func (ecs *ECS) Remove(id types.EntityID) bool {
	idx := -1
	for i, other := range ecs.Order {
		if other == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	ecs.Order = append(ecs.Order[:idx], ecs.Order[idx+1:]...)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	return true
}

// Clear удаляет все сущности. Счётчик ID не сбрасывается.
func (ecs *ECS) Clear() {
	for _, id := range ecs.Order {
		delete(ecs.Positions, id)
		delete(ecs.Velocities, id)
		delete(ecs.Healths, id)
		delete(ecs.Renderables, id)
		delete(ecs.Enemies, id)
	}
	ecs.Order = ecs.Order[:0]
}

func (ecs *ECS) Len() int {
	return len(ecs.Order)
}

// Alive reports whether id still has components.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}
