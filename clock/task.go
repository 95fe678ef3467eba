package clock

import (
	"sync"
	"time"
)

// Task runs a callback periodically on a Clock.
// The period is changed by cancelling the armed timer and arming a new one,
// so a Reset takes effect from the moment it is called.
type Task struct {
	clock Clock
	fn    func()

	mu      sync.Mutex
	period  time.Duration
	timer   Timer
	running bool
	gen     uint64 // bumped on every Start/Reset/Stop; stale timers compare and bail
}

// NewTask creates a stopped task
func NewTask(c Clock, fn func()) *Task {
	return &Task{clock: c, fn: fn}
}

// Start arms the task with period, replacing any previous schedule
func (t *Task) Start(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = true
	t.rearmLocked(period)
}

// Reset changes the period of a running task. A stopped task stays stopped.
func (t *Task) Reset(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		t.period = period
		return
	}
	t.rearmLocked(period)
}

// Stop cancels the armed timer; safe to call from inside the callback
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Task) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

func (t *Task) rearmLocked(period time.Duration) {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	t.period = period
	gen := t.gen
	t.timer = t.clock.AfterFunc(period, func() { t.fire(gen) })
}

func (t *Task) fire(gen uint64) {
	t.mu.Lock()
	if !t.running || t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.fn()

	t.mu.Lock()
	defer t.mu.Unlock()
	// fn may have called Reset or Stop, which already re-armed or cancelled
	if t.running && t.gen == gen {
		t.timer = t.clock.AfterFunc(t.period, func() { t.fire(gen) })
	}
}
