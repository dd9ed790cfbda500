package event

import "log"

// LoggedTypes - события, которые пишет Logger
var LoggedTypes = []EventType{
	EnemySpawned,
	EnemyKilled,
	HighScoreChanged,
	DifficultyRaised,
	GameOver,
	UpgradePurchased,
	RunScoreCollected,
}

// Logger пишет заметные события в лог. Появления и убийства только
// считаются и выводятся итогом при GameOver.
type Logger struct {
	spawned int
	killed  int
}

// NewLogger subscribes a Logger to every type in LoggedTypes.
func NewLogger(d *Dispatcher) *Logger {
	l := &Logger{}
	for _, t := range LoggedTypes {
		d.Subscribe(t, l)
	}
	return l
}

func (l *Logger) OnEvent(e Event) {
	switch e.Type {
	case EnemySpawned:
		l.spawned++
	case EnemyKilled:
		l.killed++
	case HighScoreChanged:
		if d, ok := e.Data.(ScoreData); ok {
			log.Printf("Run %s: new high score %d", d.RunID, d.HighScore)
		}
	case DifficultyRaised:
		log.Printf("Difficulty raised: %+v", e.Data)
	case GameOver:
		d, _ := e.Data.(ScoreData)
		log.Printf("Run %s: %d enemies spawned, %d killed", d.RunID, l.spawned, l.killed)
		l.spawned, l.killed = 0, 0
	case UpgradePurchased:
		if d, ok := e.Data.(PurchaseData); ok {
			log.Printf("Shop: bought %s level %d for %d, %d left", d.Upgrade, d.Level, d.Cost, d.Balance)
		}
	case RunScoreCollected:
		if d, ok := e.Data.(CollectData); ok {
			log.Printf("Shop: collected %d points from last run, total %d", d.Collected, d.Total)
		}
	}
}

// Counts returns the spawns and kills seen since the last GameOver.
func (l *Logger) Counts() (spawned, killed int) {
	return l.spawned, l.killed
}
