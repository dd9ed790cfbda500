package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEveryFiresPerFullDelay(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(100*time.Millisecond, func() { calls++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, calls)
	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, calls)
	s.Advance(250 * time.Millisecond)
	assert.Equal(t, 3, calls)
	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 4, calls)
}

func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	tm := s.After(3*time.Second, func() { calls++ })

	s.Advance(2 * time.Second)
	assert.True(t, tm.Active())
	s.Advance(5 * time.Second)
	s.Advance(5 * time.Second)
	assert.Equal(t, 1, calls)
	assert.False(t, tm.Active())
	assert.Equal(t, 0, s.Len())
}

func TestCancelStopsTimer(t *testing.T) {
	s := NewScheduler()
	calls := 0
	tm := s.Every(10*time.Millisecond, func() { calls++ })
	s.Advance(10 * time.Millisecond)
	tm.Cancel()
	tm.Cancel()
	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestCancelFromOwnCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var tm *Timer
	tm = s.Every(10*time.Millisecond, func() {
		calls++
		tm.Cancel()
	})
	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestResetRestartsElapsed(t *testing.T) {
	s := NewScheduler()
	calls := 0
	tm := s.Every(100*time.Millisecond, func() { calls++ })

	s.Advance(90 * time.Millisecond)
	tm.Reset(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, tm.Delay())
	s.Advance(40 * time.Millisecond)
	assert.Equal(t, 0, calls)
	s.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestCancelAllFromCallback(t *testing.T) {
	s := NewScheduler()
	other := 0
	s.Every(10*time.Millisecond, func() { s.CancelAll() })
	s.Every(10*time.Millisecond, func() { other++ })

	s.Advance(10 * time.Millisecond)
	s.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, other)
	assert.Equal(t, 0, s.Len())
}

func TestTimerAddedDuringAdvanceWaits(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.After(10*time.Millisecond, func() {
		s.After(0, func() { inner++ })
	})

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, inner)
	s.Advance(0)
	assert.Equal(t, 1, inner)
}
