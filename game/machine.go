package game

import (
	"time"

	"github.com/lixenwraith/block-miner/constants"
)

// heatEpsilon absorbs float drift so heat fills in exactly Idle/period ticks
const heatEpsilon = 1e-9

// Rand is the random source the reducer draws rounds from
// *math/rand/v2.Rand satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Machine is the session reducer
// It holds no session state; every transition is Reduce(state, action)
type Machine struct {
	rules      Rules
	rng        Rand
	tickPeriod time.Duration
}

// NewMachine creates a reducer; zero-valued rule fields fall back to defaults
func NewMachine(rules Rules, rng Rand) *Machine {
	def := DefaultRules()
	if rules.MaxLives <= 0 {
		rules.MaxLives = def.MaxLives
	}
	if rules.LevelUpEvery <= 0 {
		rules.LevelUpEvery = def.LevelUpEvery
	}
	if rules.BaseIdle <= 0 {
		rules.BaseIdle = def.BaseIdle
	}
	return &Machine{
		rules:      rules,
		rng:        rng,
		tickPeriod: constants.HeatTickInterval,
	}
}

// Rules returns the normalized rule set
func (m *Machine) Rules() Rules {
	return m.rules
}

// TickPeriod is the heat ticker period the machine expects
func (m *Machine) TickPeriod() time.Duration {
	return m.tickPeriod
}

// Init returns a fresh not-started session with its first round drawn
func (m *Machine) Init() State {
	s := State{
		Level: 1,
		Lives: m.rules.MaxLives,
		rules: m.rules,
	}
	return m.reshuffle(s)
}

// Reduce applies one action and returns the next state plus the effects to run
// Actions that are invalid in the current phase return the state unchanged and no effects
func (m *Machine) Reduce(s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case Start:
		if s.Phase() != PhaseNotStarted {
			return s, nil
		}
		s.Started = true
		return s, []Effect{ArmTicker{Period: m.tickPeriod}}

	case Restart:
		return m.Init(), []Effect{StopHum{}, CancelTimers{}, DisarmTicker{}}

	case Tick:
		if s.Phase() != PhasePlaying {
			return s, nil
		}
		next := s.Heat + s.Difficulty().HeatPerTick(m.tickPeriod)
		if next >= constants.MaxHeat-heatEpsilon {
			s.Heat = 0
			return m.loseLife(s, nil)
		}
		s.Heat = next
		return s, nil

	case Tap:
		if s.Phase() != PhasePlaying || !s.Visible(a.Index) {
			return s, nil
		}
		effects := []Effect{StartHum{}}
		if a.Index != s.CorrectIndex {
			return m.loseLife(s, effects)
		}
		return m.hit(s, effects)

	case RevealDone:
		if s.Flash == FlashHit {
			s.Flash = FlashNone
		}
		if s.GameOver {
			return s, nil
		}
		return m.reshuffle(s), nil

	case FlashDone:
		if s.Flash == FlashMiss {
			s.Flash = FlashNone
		}
		return s, nil

	case ShakeDone:
		s.Shaking = false
		return s, nil
	}

	return s, nil
}

// hit scores the correct cell and defers the next round until the flash has shown
func (m *Machine) hit(s State, effects []Effect) (State, []Effect) {
	effects = append(effects, PlayTone{Tone: ToneHit})
	s.Flash = FlashHit
	s.Score++

	if s.Score%m.rules.LevelUpEvery == 0 {
		prevIdle := s.Difficulty().Idle
		s.Level++
		if s.Difficulty().Idle != prevIdle {
			effects = append(effects, ArmTicker{Period: m.tickPeriod})
		}
	}

	effects = append(effects, Schedule{Key: TimerReveal, Delay: constants.HitRevealDelay, Action: RevealDone{}})
	return s, effects
}

// loseLife is shared by heat exhaustion and wrong taps
func (m *Machine) loseLife(s State, effects []Effect) (State, []Effect) {
	s.Flash = FlashMiss
	s.Shaking = true
	effects = append(effects,
		PlayTone{Tone: ToneBuzz},
		Schedule{Key: TimerFlash, Delay: constants.MissFlashDuration, Action: FlashDone{}},
		Schedule{Key: TimerShake, Delay: constants.ShakeDuration, Action: ShakeDone{}},
	)

	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
		return s, append(effects, StopHum{}, DisarmTicker{})
	}

	return m.reshuffle(s), effects
}

// reshuffle draws a new correct index, resets heat and rolls this round's decoys
func (m *Machine) reshuffle(s State) State {
	d := s.Difficulty()
	s.CorrectIndex = m.rng.IntN(d.BlockCount)
	s.Heat = 0
	s.Round++

	var decoys uint16
	for i := 0; i < d.BlockCount; i++ {
		if i == s.CorrectIndex {
			continue
		}
		if m.rng.Float64() < d.DecoyChance {
			decoys |= 1 << uint(i)
		}
	}
	s.Decoys = decoys
	return s
}
