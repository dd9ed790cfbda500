// internal/app/game.go
package app

import (
	"go-click-defense/internal/config"
	"go-click-defense/internal/entity"
	"go-click-defense/internal/event"
	"go-click-defense/internal/progress"
	"go-click-defense/internal/system"
	"go-click-defense/internal/timer"
	"go-click-defense/internal/types"
	"go-click-defense/internal/utils"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// Upgrades - уровни улучшений, купленных в магазине
type Upgrades struct {
	Health     int
	ClickPower int
}

// RunState - состояние одного забега
type RunState struct {
	Score           int
	HighScore       int
	Health          int
	MaxHealth       int
	ClickPower      int
	SpawnIntervalMs int
	PowerfulChance  float64
	IsOver          bool
}

// Game holds the state and logic of a single run.
type Game struct {
	RunID            string
	ECS              *entity.ECS
	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	DifficultySystem *system.DifficultySystem
	EventDispatcher  *event.Dispatcher
	Scheduler        *timer.Scheduler

	state           RunState
	balance         config.Balance
	progress        *progress.Progress
	spawnTimer      *timer.Timer
	difficultyTimer *timer.Timer
	finished        bool
	totalPoints     int // очки магазина на момент старта, только для HUD
}

// NewGame начинает новый забег с уровнями улучшений из магазина
// и запускает таймеры появления врагов и роста сложности.
func NewGame(balance config.Balance, upgrades Upgrades, prog *progress.Progress, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Game {
	if prog == nil {
		panic("progress cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	g := &Game{
		RunID:            uuid.NewString(),
		ECS:              ecs,
		SpawnSystem:      system.NewSpawnSystem(ecs, rng, balance),
		MovementSystem:   system.NewMovementSystem(ecs, config.CenterX, config.CenterY, balance.CenterZoneRadius),
		CombatSystem:     system.NewCombatSystem(ecs),
		DifficultySystem: system.NewDifficultySystem(balance),
		EventDispatcher:  dispatcher,
		Scheduler:        timer.NewScheduler(),
		balance:          balance,
		progress:         prog,
		totalPoints:      prog.Int(progress.KeyTotalCurrency, 0),
	}

	maxHealth := balance.BaseHealth + upgrades.Health
	difficulty := g.DifficultySystem.Initial()
	g.state = RunState{
		HighScore:       prog.HighScore(),
		Health:          maxHealth,
		MaxHealth:       maxHealth,
		ClickPower:      balance.BaseClickPower + upgrades.ClickPower,
		SpawnIntervalMs: difficulty.SpawnIntervalMs,
		PowerfulChance:  difficulty.PowerfulChance,
	}

	g.spawnTimer = g.Scheduler.Every(ms(g.state.SpawnIntervalMs), func() { g.SpawnEnemy() })
	g.difficultyTimer = g.Scheduler.Every(ms(balance.DifficultyIntervalMs), g.IncreaseDifficulty)

	log.Printf("Run %s started: health %d, click power %d, high score %d",
		g.RunID, g.state.MaxHealth, g.state.ClickPower, g.state.HighScore)
	return g
}

// Update progresses the run by one frame: timers first, then movement.
// Timers keep running after game over so the hand-off to the shop fires.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.Scheduler.Advance(time.Duration(math.Round(deltaTime*1e6)) * time.Microsecond)
	g.Tick()
}

// Tick двигает врагов к центру; дошедшие уничтожаются и отнимают здоровье.
func (g *Game) Tick() {
	if g.state.IsOver {
		return
	}
	for _, id := range g.MovementSystem.Update() {
		g.ECS.Remove(id)
		g.state.Health = max(0, g.state.Health-g.balance.DamagePerEnemyArrive)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedZone, Data: id})
		if g.state.Health <= 0 {
			g.GameOver()
			return
		}
	}
}

// SpawnEnemy создаёт врага на случайном краю экрана.
func (g *Game) SpawnEnemy() (types.EntityID, bool) {
	if g.state.IsOver {
		return 0, false
	}
	id := g.SpawnSystem.SpawnEnemy(g.state.PowerfulChance)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id, true
}

// HandleClick бьёт первого врага под курсором силой клика.
// Возвращает true, если клик попал во врага.
func (g *Game) HandleClick(x, y float64) bool {
	if g.state.IsOver {
		return false
	}
	id, found := g.CombatSystem.FindAt(x, y)
	if !found {
		return false
	}
	res, ok := g.CombatSystem.Hit(id, g.state.ClickPower)
	if !ok || !res.Killed {
		return ok
	}

	g.state.Score += res.Award
	if g.state.Score > g.state.HighScore {
		g.state.HighScore = g.state.Score
		g.progress.RaiseHighScore(g.state.HighScore)
		g.EventDispatcher.Dispatch(event.Event{Type: event.HighScoreChanged, Data: g.scoreData(res.Award)})
	}
	g.ECS.Remove(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: g.scoreData(res.Award)})
	return true
}

// IncreaseDifficulty ускоряет появление врагов и повышает шанс сильного врага.
func (g *Game) IncreaseDifficulty() {
	if g.state.IsOver {
		return
	}
	next := g.DifficultySystem.Next(system.Difficulty{
		SpawnIntervalMs: g.state.SpawnIntervalMs,
		PowerfulChance:  g.state.PowerfulChance,
	})
	g.state.SpawnIntervalMs = next.SpawnIntervalMs
	g.state.PowerfulChance = next.PowerfulChance
	g.spawnTimer.Reset(ms(next.SpawnIntervalMs))
	g.EventDispatcher.Dispatch(event.Event{Type: event.DifficultyRaised, Data: next})
}

// GameOver завершает забег. Повторные вызовы ничего не делают.
func (g *Game) GameOver() {
	if g.state.IsOver {
		return
	}
	g.state.IsOver = true
	g.spawnTimer.Cancel()
	g.difficultyTimer.Cancel()
	g.ECS.Clear()

	g.progress.SaveRunScore(g.state.Score)
	if g.progress.RaiseHighScore(g.state.Score) {
		g.state.HighScore = g.state.Score
	}
	log.Printf("Run %s over: score %d, high score %d", g.RunID, g.state.Score, g.state.HighScore)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.scoreData(0)})

	g.Scheduler.After(ms(g.balance.GameOverDelayMs), func() {
		g.finished = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.RunFinished, Data: g.scoreData(0)})
	})
}

func (g *Game) scoreData(award int) event.ScoreData {
	return event.ScoreData{
		RunID:     g.RunID,
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Award:     award,
	}
}

// --- Public Accessors ---

// State возвращает копию состояния забега.
func (g *Game) State() RunState {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state.IsOver
}

// Finished reports whether the post game-over delay has elapsed.
func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) Balance() config.Balance {
	return g.balance
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
