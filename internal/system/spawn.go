package system

import (
	"go-click-defense/internal/component"
	"go-click-defense/internal/config"
	"go-click-defense/internal/entity"
	"go-click-defense/internal/types"
	"go-click-defense/internal/utils"
)

// Edge - сторона экрана, с которой появляется враг
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnSystem создаёт врагов на краях экрана.
type SpawnSystem struct {
	ecs     *entity.ECS
	rng     *utils.PRNGService
	balance config.Balance
	minX    int
	maxX    int
	minY    int
	maxY    int
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, balance config.Balance) *SpawnSystem {
	return &SpawnSystem{
		ecs:     ecs,
		rng:     rng,
		balance: balance,
		minX:    config.SpawnMargin,
		maxX:    config.ScreenWidth - config.SpawnMargin,
		minY:    config.SpawnMargin,
		maxY:    config.ScreenHeight - config.SpawnMargin,
	}
}

// SpawnEnemy выбирает случайную сторону и точку на ней; враг сильный
// с вероятностью powerfulChance.
func (s *SpawnSystem) SpawnEnemy(powerfulChance float64) types.EntityID {
	x, y := s.edgePoint(Edge(s.rng.Intn(4)))
	powerful := s.rng.Chance(powerfulChance)
	return s.Create(x, y, powerful)
}

func (s *SpawnSystem) edgePoint(edge Edge) (float64, float64) {
	switch edge {
	case EdgeTop:
		return float64(s.rng.Between(s.minX, s.maxX)), float64(s.minY)
	case EdgeRight:
		return float64(s.maxX), float64(s.rng.Between(s.minY, s.maxY))
	case EdgeBottom:
		return float64(s.rng.Between(s.minX, s.maxX)), float64(s.maxY)
	default:
		return float64(s.minX), float64(s.rng.Between(s.minY, s.maxY))
	}
}

// Create помещает врага в точку (x, y). Сильный враг получает
// PowerfulEnemyHealth, обычный - NormalEnemyHealth.
func (s *SpawnSystem) Create(x, y float64, powerful bool) types.EntityID {
	hp := s.balance.NormalEnemyHealth
	if powerful {
		hp = s.balance.PowerfulEnemyHealth
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: s.balance.EnemySpeed}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Enemies[id] = &component.Enemy{Powerful: powerful}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    component.TintForHealth(hp),
		Radius:   float32(config.EnemyHalfSize),
		HalfSize: config.EnemyHalfSize,
	}
	return id
}
