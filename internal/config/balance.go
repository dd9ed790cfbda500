package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds every gameplay tunable of a run and of the shop.
type Balance struct {
	// Run start
	BaseHealth     int `yaml:"base_health"`
	BaseClickPower int `yaml:"base_click_power"`

	// Spawning
	SpawnIntervalMs      int     `yaml:"spawn_interval_ms"`
	PowerfulEnemyChance  float64 `yaml:"powerful_enemy_chance"`
	NormalEnemyHealth    int     `yaml:"normal_enemy_health"`
	PowerfulEnemyHealth  int     `yaml:"powerful_enemy_health"`
	EnemySpeed           float64 `yaml:"enemy_speed"`
	CenterZoneRadius     float64 `yaml:"center_zone_radius"`
	DamagePerEnemyArrive int     `yaml:"damage_per_enemy_arrive"`

	// Difficulty ramp
	DifficultyIntervalMs int     `yaml:"difficulty_interval_ms"`
	MinSpawnIntervalMs   int     `yaml:"min_spawn_interval_ms"`
	SpawnIntervalStepMs  int     `yaml:"spawn_interval_step_ms"`
	MaxPowerfulChance    float64 `yaml:"max_powerful_chance"`
	PowerfulChanceStep   float64 `yaml:"powerful_chance_step"`

	// Game over
	GameOverDelayMs int `yaml:"game_over_delay_ms"`

	// Shop
	UpgradeBaseCost          int `yaml:"upgrade_base_cost"`
	UpgradeCostGrowthPercent int `yaml:"upgrade_cost_growth_percent"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		BaseHealth:               5,
		BaseClickPower:           1,
		SpawnIntervalMs:          1000,
		PowerfulEnemyChance:      0.2,
		NormalEnemyHealth:        1,
		PowerfulEnemyHealth:      3,
		EnemySpeed:               2,
		CenterZoneRadius:         60,
		DamagePerEnemyArrive:     1,
		DifficultyIntervalMs:     6000,
		MinSpawnIntervalMs:       300,
		SpawnIntervalStepMs:      150,
		MaxPowerfulChance:        0.8,
		PowerfulChanceStep:       0.08,
		GameOverDelayMs:          3000,
		UpgradeBaseCost:          50,
		UpgradeCostGrowthPercent: 130,
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.BaseHealth = 8
	cfg.SpawnIntervalMs = 1400
	cfg.PowerfulEnemyChance = 0.1
	cfg.PowerfulChanceStep = 0.05
	cfg.MinSpawnIntervalMs = 450
	cfg.EnemySpeed = 1.5
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.BaseHealth = 3
	cfg.SpawnIntervalMs = 800
	cfg.PowerfulEnemyChance = 0.3
	cfg.MinSpawnIntervalMs = 200
	cfg.EnemySpeed = 2.5
	cfg.UpgradeCostGrowthPercent = 140
	return cfg
}

// Preset returns the named difficulty preset.
func Preset(name string) (Balance, bool) {
	switch name {
	case "", "default", "normal":
		return Default(), true
	case "casual":
		return Casual(), true
	case "hard":
		return Hard(), true
	}
	return Balance{}, false
}

// Load читает YAML-файл баланса поверх значений по умолчанию.
// Отсутствующие в файле поля сохраняют значения из base.
func Load(path string, base Balance) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read balance file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid balance in %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the run and the shop cannot work with.
func (b Balance) Validate() error {
	var errs []error
	if b.BaseHealth <= 0 {
		errs = append(errs, fmt.Errorf("base_health must be positive, got %d", b.BaseHealth))
	}
	if b.BaseClickPower <= 0 {
		errs = append(errs, fmt.Errorf("base_click_power must be positive, got %d", b.BaseClickPower))
	}
	if b.SpawnIntervalMs <= 0 || b.MinSpawnIntervalMs <= 0 || b.DifficultyIntervalMs <= 0 {
		errs = append(errs, errors.New("spawn, min spawn and difficulty intervals must be positive"))
	}
	if b.MinSpawnIntervalMs > b.SpawnIntervalMs {
		errs = append(errs, fmt.Errorf("min_spawn_interval_ms %d exceeds spawn_interval_ms %d", b.MinSpawnIntervalMs, b.SpawnIntervalMs))
	}
	if b.SpawnIntervalStepMs < 0 || b.PowerfulChanceStep < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}
	if !inUnit(b.PowerfulEnemyChance) || !inUnit(b.MaxPowerfulChance) {
		errs = append(errs, errors.New("powerful enemy chances must be within [0, 1]"))
	}
	if b.NormalEnemyHealth <= 0 || b.PowerfulEnemyHealth <= 0 {
		errs = append(errs, errors.New("enemy health must be positive"))
	}
	if b.EnemySpeed <= 0 || b.CenterZoneRadius <= 0 {
		errs = append(errs, errors.New("enemy_speed and center_zone_radius must be positive"))
	}
	if b.DamagePerEnemyArrive <= 0 {
		errs = append(errs, errors.New("damage_per_enemy_arrive must be positive"))
	}
	if b.GameOverDelayMs < 0 {
		errs = append(errs, errors.New("game_over_delay_ms must not be negative"))
	}
	if b.UpgradeBaseCost <= 0 {
		errs = append(errs, fmt.Errorf("upgrade_base_cost must be positive, got %d", b.UpgradeBaseCost))
	}
	if b.UpgradeCostGrowthPercent <= 100 {
		errs = append(errs, fmt.Errorf("upgrade_cost_growth_percent must exceed 100, got %d", b.UpgradeCostGrowthPercent))
	} else if b.UpgradeBaseCost > 0 && b.UpgradeBaseCost*b.UpgradeCostGrowthPercent/100 <= b.UpgradeBaseCost {
		// floor(cost*growth) обязан расти уже на первом шаге
		errs = append(errs, fmt.Errorf("upgrade_base_cost %d is too small to grow by %d%%", b.UpgradeBaseCost, b.UpgradeCostGrowthPercent))
	}
	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
