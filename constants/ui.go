package constants

// Stage geometry in terminal cells
const (
	// StageAspectWidth and StageAspectHeight give the 9:16 frame ratio
	StageAspectWidth  = 9
	StageAspectHeight = 16

	// CellAspect compensates for terminal cells being about twice as tall as wide
	CellAspect = 2

	// StageMinWidth is the smallest stage that still fits the widest grid
	StageMinWidth  = 36
	StageMinHeight = 28

	// GridGapX and GridGapY separate adjacent block slots
	GridGapX = 2
	GridGapY = 1

	// HeatBarPadding is the horizontal inset of the heat bar inside the stage
	HeatBarPadding = 2
)

// Block footprint per pixel band, width and height in cells
const (
	PixelsPerCellX = 8
	PixelsPerCellY = 16
	MinBlockWidth  = 5
	MinBlockHeight = 3
)

// Text
const (
	TitleText       = "BLOCK MINER"
	HintText        = "Find the REAL coin before power runs out"
	StartButtonText = "START MINING"
	StartTipText    = "Fast reactions = higher score"
	GameOverText    = "MINER EXHAUSTED"
	RetryButtonText = "TRY AGAIN"
	BadgeText       = "SCROLLY GAME"
	TagText         = "#NoCodeJam"

	CoinRune  = '●'
	LifeRune  = '⚡'
	HeatRune  = '█'
	TrackRune = '░'
)

// StartRules lines shown on the start overlay
var StartRules = []string{
	"ONE coin is REAL",
	"TAP it fast",
	"WAITING drains power",
}

// Animation
const (
	// PulseFrames is the number of frames each decoy pulse phase lasts
	PulseFrames = 30
)
