package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/block-miner/game"
)

// scheduled is one keyed one-shot slot
type scheduled struct {
	timer Timer
}

// Scheduler holds keyed one-shot timers whose callbacks post actions back to the engine
// Scheduling a key replaces its pending timer. CancelAll advances the generation
// so callbacks already in flight are dropped on delivery
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	post    func(game.Action, uint64)
	gen     uint64
	pending map[game.TimerKey]*scheduled
}

// NewScheduler creates a scheduler; post receives the action and the generation it was armed under
func NewScheduler(clock Clock, post func(game.Action, uint64)) *Scheduler {
	return &Scheduler{
		clock:   clock,
		post:    post,
		pending: make(map[game.TimerKey]*scheduled),
	}
}

// Schedule arms key to post action after delay
func (s *Scheduler) Schedule(key game.TimerKey, delay time.Duration, action game.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev := s.pending[key]; prev != nil {
		prev.timer.Stop()
	}

	entry := &scheduled{}
	gen := s.gen
	entry.timer = s.clock.AfterFunc(delay, func() {
		s.fire(key, entry, gen, action)
	})
	s.pending[key] = entry
}

// CancelAll stops every pending timer and invalidates in-flight callbacks
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.pending {
		entry.timer.Stop()
		delete(s.pending, key)
	}
	s.gen++
}

// Generation is the current arming generation
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Pending reports whether key has an armed timer
func (s *Scheduler) Pending(key game.TimerKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

func (s *Scheduler) fire(key game.TimerKey, entry *scheduled, gen uint64, action game.Action) {
	s.mu.Lock()
	if s.pending[key] != entry || gen != s.gen {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	s.post(action, gen)
}
