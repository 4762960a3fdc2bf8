package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/block-miner/audio"
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
)

// origin tags where a queued action came from, for staleness checks
type origin uint8

const (
	originInput origin = iota
	originTimer
	originTicker
)

type envelope struct {
	action game.Action
	origin origin
	gen    uint64
}

// Engine owns the session state and applies actions one at a time
// Timers and input only enqueue; the goroutine running Run (or Drain) is the sole writer
type Engine struct {
	machine   *game.Machine
	player    audio.Player
	scheduler *Scheduler
	ticker    *Ticker

	inbox   chan envelope
	dropped atomic.Uint64

	mu    sync.RWMutex
	state game.State
}

// New creates an engine with a freshly initialized session
func New(machine *game.Machine, player audio.Player, clock Clock) *Engine {
	e := &Engine{
		machine: machine,
		player:  player,
		inbox:   make(chan envelope, constants.InboxCapacity),
		state:   machine.Init(),
	}
	e.scheduler = NewScheduler(clock, func(a game.Action, gen uint64) {
		e.enqueue(envelope{action: a, origin: originTimer, gen: gen})
	})
	e.ticker = NewTicker(clock, func(gen uint64) {
		e.enqueue(envelope{action: game.Tick{}, origin: originTicker, gen: gen})
	})
	return e
}

// Post queues an input action; returns false if the inbox is full
func (e *Engine) Post(a game.Action) bool {
	return e.enqueue(envelope{action: a, origin: originInput})
}

// Snapshot returns a copy of the current state for rendering
func (e *Engine) Snapshot() game.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Dropped counts actions discarded because the inbox was full
func (e *Engine) Dropped() uint64 {
	return e.dropped.Load()
}

// Ticker exposes the heat timer handle
func (e *Engine) Ticker() *Ticker {
	return e.ticker
}

// Scheduler exposes the one-shot timer set
func (e *Engine) Scheduler() *Scheduler {
	return e.scheduler
}

// Run applies queued actions until ctx is cancelled, then tears down timers and audio
func (e *Engine) Run(ctx context.Context) {
	defer e.Shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-e.inbox:
			e.apply(env)
		}
	}
}

// Drain applies every queued action without blocking and returns how many were applied
// Used by tests driving a ManualClock, and safe only from the owning goroutine
func (e *Engine) Drain() int {
	n := 0
	for {
		select {
		case env := <-e.inbox:
			e.apply(env)
			n++
		default:
			return n
		}
	}
}

// Dispatch applies a single action immediately on the calling goroutine
func (e *Engine) Dispatch(a game.Action) {
	e.apply(envelope{action: a, origin: originInput})
}

// Shutdown stops the ticker, every pending timer and the hum
func (e *Engine) Shutdown() {
	e.ticker.Stop()
	e.scheduler.CancelAll()
	e.player.StopHum()
}

func (e *Engine) enqueue(env envelope) bool {
	select {
	case e.inbox <- env:
		return true
	default:
		e.dropped.Add(1)
		return false
	}
}

func (e *Engine) apply(env envelope) {
	if e.stale(env) {
		return
	}

	e.mu.Lock()
	prev := e.state
	next, effects := e.machine.Reduce(prev, env.action)
	e.state = next
	e.mu.Unlock()

	logTransition(prev, next, env.action)

	for _, eff := range effects {
		e.execute(eff)
	}
}

// stale rejects timer callbacks armed under a superseded schedule
func (e *Engine) stale(env envelope) bool {
	switch env.origin {
	case originTimer:
		return env.gen != e.scheduler.Generation()
	case originTicker:
		return env.gen != e.ticker.Generation()
	default:
		return false
	}
}

func (e *Engine) execute(eff game.Effect) {
	switch eff := eff.(type) {
	case game.PlayTone:
		e.player.PlayTone(eff.Tone)
	case game.StartHum:
		e.player.StartHum()
	case game.StopHum:
		e.player.StopHum()
	case game.Schedule:
		e.scheduler.Schedule(eff.Key, eff.Delay, eff.Action)
	case game.CancelTimers:
		e.scheduler.CancelAll()
	case game.ArmTicker:
		e.ticker.Reset(eff.Period)
	case game.DisarmTicker:
		e.ticker.Stop()
	}
}

func logTransition(prev, next game.State, a game.Action) {
	switch {
	case prev.Phase() != next.Phase():
		log.Printf("phase %s -> %s on %T (score=%d level=%d lives=%d)",
			prev.Phase(), next.Phase(), a, next.Score, next.Level, next.Lives)
	case next.Level != prev.Level:
		log.Printf("level up %d -> %d (score=%d idle=%v)", prev.Level, next.Level, next.Score, next.Difficulty().Idle)
	case next.Lives < prev.Lives:
		log.Printf("life lost on %T (lives=%d)", a, next.Lives)
	}
}
