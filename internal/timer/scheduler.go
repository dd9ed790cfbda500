// Package timer реализует повторяющиеся и одноразовые таймеры,
// которые продвигаются временем кадра, а не системными часами.
package timer

import "time"

// Timer - таймер планировщика. Нулевой таймер не используется,
// таймеры создаются через Scheduler.Every и Scheduler.After.
type Timer struct {
	delay     time.Duration
	elapsed   time.Duration
	repeat    bool
	cancelled bool
	callback  func()
}

// Cancel останавливает таймер. Повторный вызов безопасен.
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Reset задаёт новую задержку и обнуляет накопленное время.
func (t *Timer) Reset(delay time.Duration) {
	if t == nil || t.cancelled {
		return
	}
	t.delay = delay
	t.elapsed = 0
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled
}

func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Scheduler хранит таймеры одного экрана.
type Scheduler struct {
	timers []*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every schedules fn every delay until cancelled.
func (s *Scheduler) Every(delay time.Duration, fn func()) *Timer {
	return s.add(delay, fn, true)
}

// After schedules fn once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	return s.add(delay, fn, false)
}

func (s *Scheduler) add(delay time.Duration, fn func(), repeat bool) *Timer {
	t := &Timer{delay: delay, repeat: repeat, callback: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance продвигает все таймеры на dt и вызывает сработавшие.
// Таймер, созданный внутри обратного вызова, начинает отсчёт со следующего Advance.
// Повторяющийся таймер срабатывает столько раз, сколько полных задержек уместилось в dt.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	current := s.timers
	for _, t := range current {
		if t.cancelled {
			continue
		}
		t.elapsed += dt
		for !t.cancelled && t.elapsed >= t.delay {
			if !t.repeat {
				t.cancelled = true
				t.callback()
				break
			}
			if t.delay <= 0 {
				// нулевой интервал: один вызов за кадр
				t.elapsed = 0
				t.callback()
				break
			}
			t.elapsed -= t.delay
			t.callback()
		}
	}
	s.compact()
}

// CancelAll останавливает все таймеры.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}

// Len возвращает число активных таймеров.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
