// Package shop - магазин улучшений между забегами.
package shop

import (
	"errors"
	"fmt"

	"go-click-defense/internal/app"
	"go-click-defense/internal/config"
	"go-click-defense/internal/event"
	"go-click-defense/internal/progress"
	"go-click-defense/internal/utils"
)

// Upgrade - вид улучшения
type Upgrade string

const (
	UpgradeHealth     Upgrade = "health"
	UpgradeClickPower Upgrade = "clickPower"
)

// Upgrades lists every upgrade in display order.
var Upgrades = []Upgrade{UpgradeHealth, UpgradeClickPower}

var (
	ErrNotEnoughPoints = errors.New("not enough points")
	ErrUnknownUpgrade  = errors.New("unknown upgrade")
)

// State - то, что показывает магазин. Не сохраняется, пересчитывается при входе.
type State struct {
	TotalCurrency     int
	LastRunScore      int // очки, зачисленные при последнем входе
	HealthUpgrade     int
	ClickPowerUpgrade int
	HealthCost        int
	ClickPowerCost    int
}

// Shop reads and writes progression and prices upgrades.
type Shop struct {
	progress        *progress.Progress
	balance         config.Balance
	eventDispatcher *event.Dispatcher
	state           State
}

func NewShop(prog *progress.Progress, balance config.Balance, dispatcher *event.Dispatcher) *Shop {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	s := &Shop{progress: prog, balance: balance, eventDispatcher: dispatcher}
	s.reload(0)
	return s
}

// reload читает сохранённый баланс и уровни и пересчитывает цены.
func (s *Shop) reload(lastRun int) {
	rec := s.progress.Load()
	s.state = State{
		TotalCurrency:     rec.TotalCurrency,
		LastRunScore:      lastRun,
		HealthUpgrade:     rec.HealthUpgrade,
		ClickPowerUpgrade: rec.ClickPowerUpgrade,
	}
	s.recomputeCosts()
}

// Enter зачисляет очки последнего забега (ключ забега после этого удаляется,
// так что повторный вход без нового забега ничего не добавит) и пересчитывает цены.
func (s *Shop) Enter() State {
	collected, total := s.progress.CollectRunScore()
	s.reload(collected)
	if collected > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.RunScoreCollected, Data: event.CollectData{
			Collected: collected,
			Total:     total,
		}})
	}
	return s.state
}

// Buy покупает улучшение, если хватает очков. При отказе состояние не меняется.
// Если баланс не удалось сохранить, покупка отменяется и возвращается ошибка.
func (s *Shop) Buy(u Upgrade) error {
	level, cost, key, err := s.track(u)
	if err != nil {
		return err
	}
	if s.state.TotalCurrency < cost {
		return fmt.Errorf("%s costs %d, have %d: %w", u, cost, s.state.TotalCurrency, ErrNotEnoughPoints)
	}

	balance := s.state.TotalCurrency - cost
	level++
	if err := s.progress.SetInt(progress.KeyTotalCurrency, balance); err != nil {
		return fmt.Errorf("save balance: %w", err)
	}
	if err := s.progress.SetInt(key, level); err != nil {
		// вернуть очки, иначе они пропадут без улучшения
		_ = s.progress.SetInt(progress.KeyTotalCurrency, s.state.TotalCurrency)
		return fmt.Errorf("save %s level: %w", u, err)
	}

	s.state.TotalCurrency = balance
	switch u {
	case UpgradeHealth:
		s.state.HealthUpgrade = level
	case UpgradeClickPower:
		s.state.ClickPowerUpgrade = level
	}
	s.recomputeCosts()

	s.eventDispatcher.Dispatch(event.Event{Type: event.UpgradePurchased, Data: event.PurchaseData{
		Upgrade: string(u),
		Level:   level,
		Cost:    cost,
		Balance: s.state.TotalCurrency,
	}})
	return nil
}

// CanBuy reports whether the upgrade is affordable right now.
func (s *Shop) CanBuy(u Upgrade) bool {
	_, cost, _, err := s.track(u)
	return err == nil && s.state.TotalCurrency >= cost
}

// StartRun returns the persisted upgrade levels for the next run.
func (s *Shop) StartRun() app.Upgrades {
	rec := s.progress.Load()
	return app.Upgrades{Health: rec.HealthUpgrade, ClickPower: rec.ClickPowerUpgrade}
}

func (s *Shop) State() State {
	return s.state
}

// Level returns the current level and price of an upgrade.
func (s *Shop) Level(u Upgrade) (level, cost int, err error) {
	level, cost, _, err = s.track(u)
	return level, cost, err
}

func (s *Shop) track(u Upgrade) (level, cost int, key string, err error) {
	switch u {
	case UpgradeHealth:
		return s.state.HealthUpgrade, s.state.HealthCost, progress.KeyHealthUpgrade, nil
	case UpgradeClickPower:
		return s.state.ClickPowerUpgrade, s.state.ClickPowerCost, progress.KeyClickPowerUpgrade, nil
	}
	return 0, 0, "", fmt.Errorf("%q: %w", u, ErrUnknownUpgrade)
}

func (s *Shop) recomputeCosts() {
	s.state.HealthCost = CostForLevel(s.balance, s.state.HealthUpgrade)
	s.state.ClickPowerCost = CostForLevel(s.balance, s.state.ClickPowerUpgrade)
}

// CostForLevel: цена начинается с UpgradeBaseCost и после каждой покупки
// становится floor(cost * growth). Цена выводится из уровня, поэтому
// повторный вход в магазин не сбрасывает её.
func CostForLevel(balance config.Balance, level int) int {
	cost := balance.UpgradeBaseCost
	for i := 0; i < level; i++ {
		cost = utils.GrowPercent(cost, balance.UpgradeCostGrowthPercent)
	}
	return cost
}
