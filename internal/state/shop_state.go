// internal/state/shop_state.go
package state

import (
	"errors"
	"image"
	"log"

	"go-click-defense/internal/config"
	"go-click-defense/internal/shop"
	"go-click-defense/internal/ui"
	"go-click-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	shopButtonWidth  = 360
	shopButtonHeight = 110
	shopButtonGap    = 24
	shopButtonsTop   = 240
)

// Убеждаемся, что ShopState соответствует интерфейсу State
var _ State = (*ShopState)(nil)

// ShopState - экран магазина между забегами
type ShopState struct {
	sm  *StateMachine
	res *Resources

	shop       *shop.Shop
	health     *ui.Button
	clickPower *ui.Button
	play       *ui.Button

	presses []image.Point
	touches []ebiten.TouchID
}

func NewShopState(sm *StateMachine, res *Resources) *ShopState {
	rects := layout.Column(config.ScreenWidth/2, shopButtonsTop, shopButtonWidth, shopButtonHeight, shopButtonGap, 3)
	return &ShopState{
		sm:         sm,
		res:        res,
		shop:       shop.NewShop(res.Progress, res.Balance, res.Dispatcher),
		health:     ui.NewButton(rects[0], ""),
		clickPower: ui.NewButton(rects[1], ""),
		play:       ui.NewButton(rects[2], "PLAY"),
	}
}

func (s *ShopState) Enter() {
	s.shop.Enter()
	s.refresh()
}

func (s *ShopState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.buy(shop.UpgradeHealth)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.buy(shop.UpgradeClickPower)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.startRun()
		return
	}

	s.presses, s.touches = justPressed(s.presses, s.touches)
	for _, p := range s.presses {
		switch {
		case s.health.Contains(p.X, p.Y):
			s.buy(shop.UpgradeHealth)
		case s.clickPower.Contains(p.X, p.Y):
			s.buy(shop.UpgradeClickPower)
		case s.play.Contains(p.X, p.Y):
			s.startRun()
			return
		}
	}
}

func (s *ShopState) buy(u shop.Upgrade) {
	if err := s.shop.Buy(u); err != nil {
		if !errors.Is(err, shop.ErrNotEnoughPoints) {
			log.Printf("Shop: %v", err)
		}
		return
	}
	s.refresh()
}

func (s *ShopState) startRun() {
	s.sm.Request(NewRunState(s.sm, s.res, s.shop.StartRun()))
}

func (s *ShopState) refresh() {
	v := s.shop.View()
	s.health.Text = v.Health
	s.health.Disabled = !s.shop.CanBuy(shop.UpgradeHealth)
	s.clickPower.Text = v.ClickPower
	s.clickPower.Disabled = !s.shop.CanBuy(shop.UpgradeClickPower)
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := s.res.Fonts
	v := s.shop.View()
	cx := config.ScreenWidth / 2

	ui.DrawCentered(screen, v.Title, fonts.Title, cx, 60, config.TextLightColor)
	ui.DrawLines(screen, []string{v.Total, v.LastRun}, fonts.Small, cx, 140, config.SmallFontSize+8, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	for _, b := range []*ui.Button{s.health, s.clickPower, s.play} {
		b.Draw(screen, fonts.Small, b.Contains(mx, my))
	}
}

func (s *ShopState) Exit() {}
