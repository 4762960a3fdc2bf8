package game

import (
	"time"

	"github.com/lixenwraith/block-miner/constants"
)

// Difficulty is the per-level tuning derived from the current level
type Difficulty struct {
	BlockCount  int           // Visible slots, 6/9/12
	BlockSize   int           // Nominal block edge in pixels
	Idle        time.Duration // Time for heat to fill with no input
	DecoyChance float64       // Probability a non-correct cell is drawn as a decoy
}

// HeatPerTick is the heat added by one tick of the given period
func (d Difficulty) HeatPerTick(period time.Duration) float64 {
	if d.Idle <= 0 || period <= 0 {
		return constants.MaxHeat
	}
	return constants.MaxHeat / (float64(d.Idle) / float64(period))
}

// Rules holds the tunables a run is played with
type Rules struct {
	MaxLives     int
	LevelUpEvery int
	BaseIdle     time.Duration
}

// DefaultRules returns the stock rule set
func DefaultRules() Rules {
	return Rules{
		MaxLives:     constants.MaxLives,
		LevelUpEvery: constants.LevelUpEvery,
		BaseIdle:     constants.BaseIdle,
	}
}

// Difficulty computes the tuning for a level under these rules
func (r Rules) Difficulty(level int) Difficulty {
	if level < 1 {
		level = 1
	}
	return Difficulty{
		BlockCount:  blockCount(level),
		BlockSize:   blockSize(level),
		Idle:        idleWindow(r.BaseIdle, level),
		DecoyChance: decoyChance(level),
	}
}

// DifficultyFor computes the tuning for a level under the default rules
func DifficultyFor(level int) Difficulty {
	return DefaultRules().Difficulty(level)
}

func blockCount(level int) int {
	switch {
	case level < constants.BlockCountMidLevel:
		return constants.BlockCountSmall
	case level < constants.BlockCountMaxLevel:
		return constants.BlockCountMedium
	default:
		return constants.BlockCountLarge
	}
}

func blockSize(level int) int {
	switch {
	case level < constants.BlockSizeLevel1:
		return constants.BlockSizeBand0
	case level < constants.BlockSizeLevel2:
		return constants.BlockSizeBand1
	case level < constants.BlockSizeLevel3:
		return constants.BlockSizeBand2
	default:
		return constants.BlockSizeBand3
	}
}

func idleWindow(base time.Duration, level int) time.Duration {
	return max(base-time.Duration(level)*constants.IdleStepPerLevel, constants.MinIdle)
}

func decoyChance(level int) float64 {
	return min(constants.DecoyChanceBase+float64(level)*constants.DecoyChancePerLevel, constants.DecoyChanceMax)
}
