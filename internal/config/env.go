package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	EnvSavePath    = "CLICKDEFENSE_SAVE"
	EnvBalancePath = "CLICKDEFENSE_BALANCE"
	EnvSeed        = "CLICKDEFENSE_SEED"
	EnvPprofAddr   = "CLICKDEFENSE_PPROF"
	EnvDifficulty  = "DIFFICULTY"

	DefaultSavePath = "clickdefense-save.json"
)

// Settings - параметры запуска, прочитанные из окружения
type Settings struct {
	SavePath    string
	BalancePath string
	Seed        int64
	PprofAddr   string
	Difficulty  string
}

// SettingsFromEnv loads launch settings from environment variables.
// Falls back to defaults if variables are not set
func SettingsFromEnv() Settings {
	s := Settings{
		SavePath:    os.Getenv(EnvSavePath),
		BalancePath: os.Getenv(EnvBalancePath),
		PprofAddr:   os.Getenv(EnvPprofAddr),
		Difficulty:  os.Getenv(EnvDifficulty),
	}
	if s.SavePath == "" {
		s.SavePath = DefaultSavePath
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvSeed, raw, err)
		} else {
			s.Seed = seed
		}
	}
	return s
}

// ResolveBalance собирает баланс: пресет сложности, затем файл, если задан.
func (s Settings) ResolveBalance() (Balance, error) {
	base, ok := Preset(s.Difficulty)
	if !ok {
		return Default(), fmt.Errorf("unknown difficulty preset %q", s.Difficulty)
	}
	if s.BalancePath == "" {
		return base, nil
	}
	return Load(s.BalancePath, base)
}
