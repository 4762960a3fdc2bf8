package game

import "github.com/lixenwraith/block-miner/constants"

// Flash is the transient feedback shown after a tap or life loss
type Flash uint8

const (
	FlashNone Flash = iota
	FlashHit
	FlashMiss
)

func (f Flash) String() string {
	switch f {
	case FlashNone:
		return "None"
	case FlashHit:
		return "Hit"
	case FlashMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Phase is the coarse lifecycle position of a session
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is the whole session record, replaced on every transition
type State struct {
	Started  bool
	GameOver bool

	Score int
	Level int
	Lives int

	CorrectIndex int
	Heat         float64

	Flash   Flash
	Shaking bool

	// Round increments on every reshuffle
	Round uint64
	// Decoys has bit i set when slot i renders as a decoy this round
	Decoys uint16

	rules Rules
}

// Phase derives the lifecycle phase from the flags
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.Started:
		return PhasePlaying
	default:
		return PhaseNotStarted
	}
}

// Difficulty returns the tuning for the current level
func (s State) Difficulty() Difficulty {
	return s.rules.Difficulty(s.Level)
}

// Rules returns the rule set the session was created with
func (s State) Rules() Rules {
	return s.rules
}

// IsDecoy reports whether slot i renders as a decoy this round
func (s State) IsDecoy(i int) bool {
	if i < 0 || i >= constants.MaxBlocks || i == s.CorrectIndex {
		return false
	}
	return s.Decoys&(1<<uint(i)) != 0
}

// Visible reports whether slot i is part of the current grid
func (s State) Visible(i int) bool {
	return i >= 0 && i < s.Difficulty().BlockCount
}

// HeatFraction is heat normalized to [0,1] for meters
func (s State) HeatFraction() float64 {
	return s.Heat / constants.MaxHeat
}
