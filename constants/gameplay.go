package constants

import "time"

// Lives and Progression
const (
	// MaxLives is the number of lives a fresh run starts with
	MaxLives = 3

	// LevelUpEvery is the score step that raises the level by one
	LevelUpEvery = 4

	// MaxBlocks is the number of fixed grid slots, visible or not
	MaxBlocks = 12

	// GridColumns and GridRows describe the fixed slot arrangement
	GridColumns = 3
	GridRows    = 4
)

// Heat System
const (
	// MaxHeat is the heat value that forces a life loss
	MaxHeat = 100.0

	// HeatTickInterval is the period of the heat ticker
	HeatTickInterval = 100 * time.Millisecond

	// BaseIdle is the level-0 time for heat to fill with no input
	BaseIdle = 4000 * time.Millisecond

	// IdleStepPerLevel is subtracted from BaseIdle for every level
	IdleStepPerLevel = 300 * time.Millisecond

	// MinIdle is the floor for the idle window
	MinIdle = 1800 * time.Millisecond
)

// Block Grid Scaling
const (
	// Level thresholds for visible block count (6 → 9 → 12)
	BlockCountSmall    = 6
	BlockCountMedium   = 9
	BlockCountLarge    = 12
	BlockCountMidLevel = 3
	BlockCountMaxLevel = 5

	// Block size bands in pixels (72 → 60 → 52 → 44)
	BlockSizeBand0 = 72
	BlockSizeBand1 = 60
	BlockSizeBand2 = 52
	BlockSizeBand3 = 44

	BlockSizeLevel1 = 3
	BlockSizeLevel2 = 6
	BlockSizeLevel3 = 9
)

// Decoy Density
const (
	DecoyChanceBase     = 0.25
	DecoyChancePerLevel = 0.07
	DecoyChanceMax      = 0.8
)

// Transient Feedback Timing
const (
	// HitRevealDelay keeps the hit flash visible before the next round is drawn
	HitRevealDelay = 90 * time.Millisecond

	// MissFlashDuration is how long the miss ring stays on
	MissFlashDuration = 100 * time.Millisecond

	// ShakeDuration is how long the stage stays offset after a miss
	ShakeDuration = 120 * time.Millisecond
)
