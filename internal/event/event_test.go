package event

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchDeliversByType(t *testing.T) {
	d := NewDispatcher()
	kills, overs := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.Subscribe(GameOver, overs)

	d.Dispatch(Event{Type: EnemyKilled, Data: ScoreData{Score: 3}})
	d.Dispatch(Event{Type: RunFinished})

	assert.Len(t, kills.got, 1)
	assert.Equal(t, ScoreData{Score: 3}, kills.got[0].Data)
	assert.Empty(t, overs.got)
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemover{d: d}
	second := &recorder{}
	d.Subscribe(GameOver, first)
	d.Subscribe(GameOver, second)

	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, 1, first.calls)
	assert.Len(t, second.got, 2)
}

func TestUnsubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameOver, r)
	d.Subscribe(RunFinished, r)

	d.UnsubscribeAll(r)
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: RunFinished})
	assert.Empty(t, r.got)
}

func TestLoggerCountsAndSummarises(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	d := NewDispatcher()
	l := NewLogger(d)
	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: EnemyKilled, Data: ScoreData{RunID: "r1", Score: 1}})
	spawned, killed := l.Counts()
	assert.Equal(t, 2, spawned)
	assert.Equal(t, 1, killed)

	d.Dispatch(Event{Type: UpgradePurchased, Data: PurchaseData{Upgrade: "health", Level: 1, Cost: 50, Balance: 0}})
	d.Dispatch(Event{Type: RunScoreCollected, Data: CollectData{Collected: 12, Total: 40}})
	d.Dispatch(Event{Type: GameOver, Data: ScoreData{RunID: "r1"}})

	out := buf.String()
	assert.Contains(t, out, "bought health level 1 for 50, 0 left")
	assert.Contains(t, out, "collected 12 points from last run, total 40")
	assert.Contains(t, out, "Run r1: 2 enemies spawned, 1 killed")

	spawned, killed = l.Counts()
	assert.Zero(t, spawned)
	assert.Zero(t, killed)
}
