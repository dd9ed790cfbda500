package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range []string{"", "casual", "hard"} {
		cfg, ok := Preset(name)
		require.True(t, ok, name)
		assert.NoError(t, cfg.Validate(), name)
	}
	_, ok := Preset("nightmare")
	assert.False(t, ok)
}

func TestDefaultMatchesRunRules(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.BaseHealth)
	assert.Equal(t, 1, cfg.BaseClickPower)
	assert.Equal(t, 1000, cfg.SpawnIntervalMs)
	assert.Equal(t, 300, cfg.MinSpawnIntervalMs)
	assert.InDelta(t, 0.2, cfg.PowerfulEnemyChance, 1e-9)
	assert.InDelta(t, 0.8, cfg.MaxPowerfulChance, 1e-9)
	assert.Equal(t, 6000, cfg.DifficultyIntervalMs)
	assert.Equal(t, 50, cfg.UpgradeBaseCost)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	data := "base_health: 7\nspawn_interval_ms: 900\nupgrade_cost_growth_percent: 150\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.BaseHealth)
	assert.Equal(t, 900, cfg.SpawnIntervalMs)
	assert.Equal(t, 150, cfg.UpgradeCostGrowthPercent)
	// untouched fields keep the base
	assert.Equal(t, 300, cfg.MinSpawnIntervalMs)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("powerful_enemy_chance: 1.5\n"), 0o644))

	cfg, err := Load(path, Default())
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCostGrowth(t *testing.T) {
	cfg := Default()
	cfg.UpgradeCostGrowthPercent = 100
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UpgradeBaseCost = 3 // floor(3*1.3) == 3
	assert.Error(t, cfg.Validate())
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv(EnvSavePath, "")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDifficulty, "hard")
	t.Setenv(EnvBalancePath, "")

	s := SettingsFromEnv()
	assert.Equal(t, DefaultSavePath, s.SavePath)
	assert.Equal(t, int64(42), s.Seed)

	cfg, err := s.ResolveBalance()
	require.NoError(t, err)
	assert.Equal(t, Hard(), cfg)

	t.Setenv(EnvSeed, "not-a-number")
	assert.Equal(t, int64(0), SettingsFromEnv().Seed)

	_, err = Settings{Difficulty: "nope"}.ResolveBalance()
	assert.Error(t, err)
}
