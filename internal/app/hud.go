package app

import (
	"fmt"

	"go-click-defense/internal/utils"
)

// HUDLines - строки интерфейса в левом верхнем углу
func (g *Game) HUDLines() []string {
	s := g.state
	return []string{
		"Score: " + utils.FormatPoints(s.Score),
		"High Score: " + utils.FormatPoints(s.HighScore),
		fmt.Sprintf("HP: %d/%d", s.Health, s.MaxHealth),
		fmt.Sprintf("Power: %d", s.ClickPower),
		"Points: " + utils.FormatPoints(g.totalPoints),
	}
}

// GameOverLines returns the centred overlay text, or nil while the run is live.
func (g *Game) GameOverLines() []string {
	if !g.state.IsOver {
		return nil
	}
	return []string{
		"GAME OVER",
		"Score: " + utils.FormatPoints(g.state.Score),
		"High Score: " + utils.FormatPoints(g.state.HighScore),
	}
}
