// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-click-defense/internal/assets"
	"go-click-defense/internal/config"
	"go-click-defense/internal/event"
	"go-click-defense/internal/progress"
	"go-click-defense/internal/state"
	"go-click-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds() // ограничение кадра делает app.Game
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.SettingsFromEnv()
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	balance, err := settings.ResolveBalance()
	if err != nil {
		log.Printf("Balance: %v, using defaults", err)
		balance = config.Default()
	}

	store, err := progress.OpenDefault(settings.SavePath)
	if err != nil {
		log.Printf("Save: %v, progress will not persist", err)
		store = progress.NewMemoryStore()
	}

	fonts, err := assets.LoadFonts(config.TitleFontSize, config.HUDFontSize, config.SmallFontSize)
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Close()

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	event.NewLogger(dispatcher)

	res := &state.Resources{
		Balance:    balance,
		Progress:   progress.New(store),
		RNG:        rng,
		Dispatcher: dispatcher,
		Fonts:      fonts,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewShopState(sm, res)) // игра начинается с магазина
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Click Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
