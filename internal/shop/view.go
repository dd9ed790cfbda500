package shop

import (
	"fmt"

	"go-click-defense/internal/utils"
)

// View - подписи экрана магазина
type View struct {
	Title      string
	Total      string
	LastRun    string
	Health     string
	ClickPower string
	Play       string
}

// View builds the shop texts from the current state.
func (s *Shop) View() View {
	st := s.state
	return View{
		Title:      "SHOP",
		Total:      "Total points: " + utils.FormatPoints(st.TotalCurrency),
		LastRun:    "Last run points: " + utils.FormatPoints(st.LastRunScore),
		Health:     fmt.Sprintf("More health\nCost: %s points\nLevel: %d", utils.FormatPoints(st.HealthCost), st.HealthUpgrade),
		ClickPower: fmt.Sprintf("More power\nCost: %s points\nLevel: %d", utils.FormatPoints(st.ClickPowerCost), st.ClickPowerUpgrade),
		Play:       "PLAY",
	}
}
