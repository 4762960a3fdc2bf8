package game

import "time"

// Tone identifies a one-shot sound
type Tone uint8

const (
	ToneHit Tone = iota
	ToneBuzz
)

func (t Tone) String() string {
	switch t {
	case ToneHit:
		return "Hit"
	case ToneBuzz:
		return "Buzz"
	default:
		return "Unknown"
	}
}

// TimerKey names a one-shot timer slot; scheduling a key replaces its pending timer
type TimerKey string

const (
	TimerReveal TimerKey = "reveal"
	TimerFlash  TimerKey = "flash"
	TimerShake  TimerKey = "shake"
)

// Effect is a side effect requested by the reducer and executed by the engine
type Effect interface {
	effect()
}

// PlayTone plays a one-shot tone
type PlayTone struct {
	Tone Tone
}

// StartHum starts the ambient hum if it is not already running
type StartHum struct{}

// StopHum stops the ambient hum
type StopHum struct{}

// Schedule delivers Action after Delay under Key
type Schedule struct {
	Key    TimerKey
	Delay  time.Duration
	Action Action
}

// CancelTimers drops every pending one-shot timer
type CancelTimers struct{}

// ArmTicker (re)starts the heat ticker with the given period
type ArmTicker struct {
	Period time.Duration
}

// DisarmTicker stops the heat ticker
type DisarmTicker struct{}

func (PlayTone) effect()     {}
func (StartHum) effect()     {}
func (StopHum) effect()      {}
func (Schedule) effect()     {}
func (CancelTimers) effect() {}
func (ArmTicker) effect()    {}
func (DisarmTicker) effect() {}
