package engine

import (
	"sync"
	"time"
)

// Ticker is the heat timer handle
// Reset cancels the running schedule and starts a new one, so the first tick
// after a reset lands one full period later
type Ticker struct {
	mu     sync.Mutex
	clock  Clock
	onTick func(gen uint64)
	period time.Duration
	timer  Timer
	gen    uint64
	active bool
}

// NewTicker creates a stopped ticker; onTick receives the generation the tick belongs to
func NewTicker(clock Clock, onTick func(gen uint64)) *Ticker {
	return &Ticker{clock: clock, onTick: onTick}
}

// Reset (re)starts the ticker with period
func (t *Ticker) Reset(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.period = period
	t.active = true
	t.armLocked(t.gen)
}

// Stop cancels the ticker
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Active reports whether the ticker is running
func (t *Ticker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Generation identifies the current schedule; ticks from older generations are stale
func (t *Ticker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Period is the last period the ticker was armed with
func (t *Ticker) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

func (t *Ticker) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.active = false
	t.gen++
}

func (t *Ticker) armLocked(gen uint64) {
	t.timer = t.clock.AfterFunc(t.period, func() { t.fire(gen) })
}

func (t *Ticker) fire(gen uint64) {
	t.mu.Lock()
	if !t.active || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.armLocked(gen)
	t.mu.Unlock()

	t.onTick(gen)
}
