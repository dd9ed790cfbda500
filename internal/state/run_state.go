// internal/state/run_state.go
package state

import (
	"image"

	"go-click-defense/internal/app"
	"go-click-defense/internal/config"
	"go-click-defense/internal/event"
	"go-click-defense/internal/ui"
	"go-click-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*RunState)(nil)

// RunState - экран забега: враги, HUD и оверлей конца игры.
type RunState struct {
	sm       *StateMachine
	res      *Resources
	upgrades app.Upgrades

	game      *app.Game
	renderer  *render.FieldRenderer
	indicator *ui.HealthIndicator

	presses []image.Point
	touches []ebiten.TouchID
}

func NewRunState(sm *StateMachine, res *Resources, upgrades app.Upgrades) *RunState {
	colors := render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		ZoneStroke:      config.CenterZoneColor,
		ZoneFill:        config.CenterZoneFill,
		ZoneStrokeWidth: config.CenterZoneStroke,
	}
	return &RunState{
		sm:        sm,
		res:       res,
		upgrades:  upgrades,
		renderer:  render.NewFieldRenderer(config.CenterX, config.CenterY, res.Balance.CenterZoneRadius, colors),
		indicator: ui.NewHealthIndicator(config.HealthIndicatorX, config.HealthIndicatorY, res.Fonts.Small),
	}
}

// Enter начинает новый забег; прошлый забег не переиспользуется.
func (r *RunState) Enter() {
	r.game = app.NewGame(r.res.Balance, r.upgrades, r.res.Progress, r.res.RNG, r.res.Dispatcher)
	r.res.Dispatcher.Subscribe(event.RunFinished, r)
}

// OnEvent возвращает в магазин, когда пауза после game over прошла.
func (r *RunState) OnEvent(e event.Event) {
	if e.Type == event.RunFinished {
		r.sm.Request(NewShopState(r.sm, r.res))
	}
}

func (r *RunState) Update(deltaTime float64) {
	r.presses, r.touches = justPressed(r.presses, r.touches)
	for _, p := range r.presses {
		r.game.HandleClick(float64(p.X), float64(p.Y))
	}
	r.game.Update(deltaTime)
}

func (r *RunState) Draw(screen *ebiten.Image) {
	r.renderer.Draw(screen, r.game.ECS)

	fonts := r.res.Fonts
	ui.DrawLeft(screen, r.game.HUDLines(), fonts.HUD, config.HUDX, config.HUDY, config.HUDLineHeight, config.TextLightColor)
	s := r.game.State()
	r.indicator.Draw(screen, s.Health, s.MaxHealth)

	if lines := r.game.GameOverLines(); lines != nil {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		ui.DrawCentered(screen, lines[0], fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-90, config.TextLightColor)
		ui.DrawLines(screen, lines[1:], fonts.HUD, config.ScreenWidth/2, config.ScreenHeight/2-10, config.HUDLineHeight+6, config.TextLightColor)
	}
}

func (r *RunState) Exit() {
	r.res.Dispatcher.UnsubscribeAll(r)
}
