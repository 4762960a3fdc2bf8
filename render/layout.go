package render

import (
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen-space rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Shift returns r moved by dx columns
func (r Rect) Shift(dx int) Rect {
	r.X += dx
	return r
}

// Layout is the stage geometry for one screen size
// Slot positions depend only on the screen, never on the level, so the grid does not jump on level-up
type Layout struct {
	Width, Height int
	TooSmall      bool

	Stage Rect

	TopBarY int
	HUDY    int
	HeatBar Rect
	HintY   int

	Grid  Rect
	Slots [constants.MaxBlocks]Rect

	StartButton Rect
	RetryButton Rect

	// Overlay rows, top of each block of centered lines
	StartTop    int
	GameOverTop int
}

// Start overlay: title, gap, rules, gap, button, gap, tip
var startOverlayLines = 1 + 1 + len(constants.StartRules) + 1 + 1 + 1 + 1

// Game-over overlay: title, score, gap, button
const gameOverOverlayLines = 4

// CellFootprint maps a nominal block size in pixels to a block size in cells
func CellFootprint(blockSize int) (w, h int) {
	return max(blockSize/constants.PixelsPerCellX, constants.MinBlockWidth),
		max(blockSize/constants.PixelsPerCellY, constants.MinBlockHeight)
}

// ComputeLayout fits the 9:16 stage into a width x height terminal
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	stageH := height
	stageW := stageH * constants.StageAspectWidth * constants.CellAspect / constants.StageAspectHeight
	if stageW > width {
		stageW = width
		stageH = stageW * constants.StageAspectHeight / (constants.StageAspectWidth * constants.CellAspect)
	}
	stageW = max(stageW, constants.StageMinWidth)
	stageH = max(stageH, constants.StageMinHeight)
	if stageW > width || stageH > height {
		l.TooSmall = true
		return l
	}

	l.Stage = Rect{X: (width - stageW) / 2, Y: (height - stageH) / 2, W: stageW, H: stageH}
	s := l.Stage

	l.TopBarY = s.Y + 1
	l.HUDY = s.Y + 2
	l.HeatBar = Rect{
		X: s.X + constants.HeatBarPadding,
		Y: s.Y + 3,
		W: s.W - 2*constants.HeatBarPadding,
		H: 1,
	}
	l.HintY = s.Y + s.H - 2

	slotW, slotH := CellFootprint(constants.BlockSizeBand0)
	gridW := constants.GridColumns*slotW + (constants.GridColumns-1)*constants.GridGapX
	gridH := constants.GridRows*slotH + (constants.GridRows-1)*constants.GridGapY

	top := s.Y + 4
	avail := s.H - 6
	l.Grid = Rect{X: s.X + (s.W-gridW)/2, Y: top + (avail-gridH)/2, W: gridW, H: gridH}

	for i := range l.Slots {
		col := i % constants.GridColumns
		row := i / constants.GridColumns
		l.Slots[i] = Rect{
			X: l.Grid.X + col*(slotW+constants.GridGapX),
			Y: l.Grid.Y + row*(slotH+constants.GridGapY),
			W: slotW,
			H: slotH,
		}
	}

	l.StartTop = s.Y + (s.H-startOverlayLines)/2
	l.StartButton = l.button(constants.StartButtonText, l.StartTop+2+len(constants.StartRules)+1)

	l.GameOverTop = s.Y + (s.H-gameOverOverlayLines)/2
	l.RetryButton = l.button(constants.RetryButtonText, l.GameOverTop+3)

	return l
}

func (l Layout) button(label string, y int) Rect {
	w := runewidth.StringWidth(label) + 4
	return Rect{X: l.Stage.X + (l.Stage.W-w)/2, Y: y, W: w, H: 1}
}

// BlockRect is the footprint of slot i at the given block size, centered in its slot
func (l Layout) BlockRect(i, blockSize int) Rect {
	slot := l.Slots[i]
	w, h := CellFootprint(blockSize)
	w = min(w, slot.W)
	h = min(h, slot.H)
	return Rect{X: slot.X + (slot.W-w)/2, Y: slot.Y + (slot.H-h)/2, W: w, H: h}
}

// CellAt returns the visible block under (x, y), or -1
func (l Layout) CellAt(x, y int, s game.State) int {
	if l.TooSmall {
		return -1
	}
	d := s.Difficulty()
	for i := 0; i < d.BlockCount; i++ {
		if l.BlockRect(i, d.BlockSize).Contains(x, y) {
			return i
		}
	}
	return -1
}

// OnButton reports whether (x, y) hits the overlay button shown in phase p
func (l Layout) OnButton(x, y int, p game.Phase) bool {
	if l.TooSmall {
		return false
	}
	switch p {
	case game.PhaseNotStarted:
		return l.StartButton.Contains(x, y)
	case game.PhaseGameOver:
		return l.RetryButton.Contains(x, y)
	default:
		return false
	}
}
