package state

import (
	"go-click-defense/internal/assets"
	"go-click-defense/internal/config"
	"go-click-defense/internal/event"
	"go-click-defense/internal/progress"
	"go-click-defense/internal/utils"
)

// Resources - то, что живёт дольше одного экрана.
type Resources struct {
	Balance    config.Balance
	Progress   *progress.Progress
	RNG        *utils.PRNGService
	Dispatcher *event.Dispatcher
	Fonts      *assets.Fonts
}
