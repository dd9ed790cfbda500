package system

import (
	"go-click-defense/internal/config"
	"go-click-defense/internal/utils"
)

// Difficulty - текущая сложность забега
type Difficulty struct {
	SpawnIntervalMs int
	PowerfulChance  float64
}

// DifficultySystem считает следующую ступень сложности.
type DifficultySystem struct {
	balance config.Balance
}

func NewDifficultySystem(balance config.Balance) *DifficultySystem {
	return &DifficultySystem{balance: balance}
}

// Initial returns the difficulty a run starts with.
func (s *DifficultySystem) Initial() Difficulty {
	return Difficulty{
		SpawnIntervalMs: s.balance.SpawnIntervalMs,
		PowerfulChance:  s.balance.PowerfulEnemyChance,
	}
}

// Next: интервал уменьшается на шаг, но не ниже минимума;
// шанс сильного врага растёт на шаг, но не выше максимума.
func (s *DifficultySystem) Next(d Difficulty) Difficulty {
	return Difficulty{
		SpawnIntervalMs: utils.StepDown(d.SpawnIntervalMs, s.balance.SpawnIntervalStepMs, s.balance.MinSpawnIntervalMs),
		PowerfulChance:  utils.StepUp(d.PowerfulChance, s.balance.PowerfulChanceStep, s.balance.MaxPowerfulChance),
	}
}
