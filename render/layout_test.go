package render

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
)

func playingState(t *testing.T, level int) game.State {
	t.Helper()
	m := game.NewMachine(game.DefaultRules(), rand.New(rand.NewPCG(5, 6)))
	s, _ := m.Reduce(m.Init(), game.Start{})
	s.Level = level
	s, _ = m.Reduce(s, game.RevealDone{})
	return s
}

// TestLayoutTooSmall verifies tiny terminals are flagged
func TestLayoutTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{20, 10},
		{constants.StageMinWidth - 1, 60},
		{120, constants.StageMinHeight - 1},
	}
	for _, tt := range tests {
		if l := ComputeLayout(tt.w, tt.h); !l.TooSmall {
			t.Errorf("%dx%d should be too small", tt.w, tt.h)
		}
	}
}

// TestLayoutStageFitsScreen verifies the stage is centered inside the terminal
func TestLayoutStageFitsScreen(t *testing.T) {
	for _, size := range [][2]int{{80, 30}, {200, 60}, {40, 80}, {36, 28}} {
		l := ComputeLayout(size[0], size[1])
		if l.TooSmall {
			t.Fatalf("%dx%d flagged too small", size[0], size[1])
		}
		s := l.Stage
		if s.X < 0 || s.Y < 0 || s.X+s.W > size[0] || s.Y+s.H > size[1] {
			t.Errorf("%dx%d: stage %+v escapes screen", size[0], size[1], s)
		}
		if !s.Contains(l.Grid.X, l.Grid.Y) || !s.Contains(l.Grid.X+l.Grid.W-1, l.Grid.Y+l.Grid.H-1) {
			t.Errorf("%dx%d: grid %+v escapes stage %+v", size[0], size[1], l.Grid, s)
		}
		if l.Grid.Y <= l.HeatBar.Y || l.Grid.Y+l.Grid.H > l.HintY {
			t.Errorf("%dx%d: grid overlaps HUD or hint", size[0], size[1])
		}
	}
}

// TestLayoutSlotsDoNotOverlap verifies the twelve slots are disjoint
func TestLayoutSlotsDoNotOverlap(t *testing.T) {
	l := ComputeLayout(80, 40)
	for i := range l.Slots {
		for j := i + 1; j < len(l.Slots); j++ {
			a, b := l.Slots[i], l.Slots[j]
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Errorf("Slots %d and %d overlap", i, j)
			}
		}
	}
}

// TestCellFootprintShrinks verifies block footprint follows the pixel bands
func TestCellFootprintShrinks(t *testing.T) {
	prevW, prevH := 1<<30, 1<<30
	for _, size := range []int{72, 60, 52, 44} {
		w, h := CellFootprint(size)
		if w > prevW || h > prevH {
			t.Errorf("Footprint(%d) = %dx%d grew", size, w, h)
		}
		if w < constants.MinBlockWidth || h < constants.MinBlockHeight {
			t.Errorf("Footprint(%d) = %dx%d below minimum", size, w, h)
		}
		prevW, prevH = w, h
	}
}

// TestCellAtHitsVisibleBlocks verifies each visible block maps back to its index
func TestCellAtHitsVisibleBlocks(t *testing.T) {
	l := ComputeLayout(80, 40)

	for _, level := range []int{1, 3, 9} {
		s := playingState(t, level)
		d := s.Difficulty()
		for i := 0; i < d.BlockCount; i++ {
			b := l.BlockRect(i, d.BlockSize)
			if got := l.CellAt(b.X+b.W/2, b.Y+b.H/2, s); got != i {
				t.Errorf("Level %d: CellAt(center of %d) = %d", level, i, got)
			}
		}
		for i := d.BlockCount; i < constants.MaxBlocks; i++ {
			slot := l.Slots[i]
			if got := l.CellAt(slot.X+slot.W/2, slot.Y+slot.H/2, s); got != -1 {
				t.Errorf("Level %d: hidden slot %d hit as %d", level, i, got)
			}
		}
	}
}

// TestCellAtMissesGaps verifies clicks between blocks and outside the grid miss
func TestCellAtMissesGaps(t *testing.T) {
	l := ComputeLayout(80, 40)
	s := playingState(t, 1)

	gapX := l.Slots[0].X + l.Slots[0].W
	if got := l.CellAt(gapX, l.Slots[0].Y+1, s); got != -1 {
		t.Errorf("Gap click hit %d", got)
	}
	if got := l.CellAt(0, 0, s); got != -1 {
		t.Errorf("Corner click hit %d", got)
	}
}

// TestOnButtonByPhase verifies overlay buttons only respond in their phase
func TestOnButtonByPhase(t *testing.T) {
	l := ComputeLayout(80, 40)
	sb, rb := l.StartButton, l.RetryButton

	if !l.OnButton(sb.X, sb.Y, game.PhaseNotStarted) {
		t.Error("Start button should be hit before start")
	}
	if l.OnButton(sb.X, sb.Y, game.PhasePlaying) {
		t.Error("No button while playing")
	}
	if !l.OnButton(rb.X+rb.W-1, rb.Y, game.PhaseGameOver) {
		t.Error("Retry button should be hit after game over")
	}
	if l.OnButton(rb.X+rb.W, rb.Y, game.PhaseGameOver) {
		t.Error("Click right of retry button should miss")
	}
}

// fixedRand pins every roll
type fixedRand struct{}

func (fixedRand) IntN(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.5 }
