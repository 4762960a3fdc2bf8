package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
	"github.com/mattn/go-runewidth"
)

// Screen is the subset of tcell.Screen the renderer draws on
type Screen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// CoinKind is how a visible slot's coin is drawn
type CoinKind uint8

const (
	CoinPlain CoinKind = iota
	CoinDecoy
	CoinReal
)

// Classify returns the coin kind for slot i; a pure function of the state
func Classify(s game.State, i int) CoinKind {
	switch {
	case i == s.CorrectIndex:
		return CoinReal
	case s.IsDecoy(i):
		return CoinDecoy
	default:
		return CoinPlain
	}
}

// Renderer draws the stage for a state snapshot
type Renderer struct {
	screen  Screen
	palette Palette
	frame   uint64
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Draw renders one frame and returns the layout used, for hit testing
func (r *Renderer) Draw(s game.State) Layout {
	r.frame++
	w, h := r.screen.Size()
	l := ComputeLayout(w, h)

	r.screen.Clear()
	if l.TooSmall {
		r.drawTooSmall(l)
		r.screen.Show()
		return l
	}

	dx := 0
	if s.Shaking {
		dx = 1
	}

	p := r.palette
	stage := l.Stage.Shift(dx)
	r.fill(stage, ' ', p.Background)
	r.box(stage, p.Frame)

	switch s.Phase() {
	case game.PhaseNotStarted:
		r.drawStartOverlay(l, dx)
	case game.PhaseGameOver:
		r.drawGameOverOverlay(l, s, dx)
	default:
		r.drawPlay(l, s, dx)
	}

	r.screen.Show()
	return l
}

func (r *Renderer) drawPlay(l Layout, s game.State, dx int) {
	p := r.palette
	stage := l.Stage.Shift(dx)

	r.text(stage.X+2, l.TopBarY, constants.BadgeText, p.Muted)
	r.textRight(stage.X+stage.W-2, l.TopBarY, constants.TagText, p.Muted)

	r.text(stage.X+2, l.HUDY, fmt.Sprintf("LV %d", s.Level), p.Text)
	r.textCentered(stage, l.HUDY, fmt.Sprintf("SCORE %d", s.Score), p.Text)
	r.textRight(stage.X+stage.W-2, l.HUDY, strings.Repeat(string(constants.LifeRune), s.Lives), p.Text)

	r.drawHeat(l.HeatBar.Shift(dx), s.HeatFraction())

	d := s.Difficulty()
	pulse := (r.frame/constants.PulseFrames)%2 == 0
	for i := 0; i < d.BlockCount; i++ {
		r.drawBlock(l.BlockRect(i, d.BlockSize).Shift(dx), s, i, pulse)
	}

	r.textCentered(stage, l.HintY, constants.HintText, p.Muted)
}

// HeatCells is the number of filled heat bar cells for a given width
func HeatCells(fraction float64, width int) int {
	fraction = min(max(fraction, 0), 1)
	return int(fraction * float64(width))
}

func (r *Renderer) drawHeat(bar Rect, fraction float64) {
	filled := HeatCells(fraction, bar.W)
	for x := 0; x < bar.W; x++ {
		if x < filled {
			r.screen.SetContent(bar.X+x, bar.Y, constants.HeatRune, nil, r.palette.HeatFill)
		} else {
			r.screen.SetContent(bar.X+x, bar.Y, constants.TrackRune, nil, r.palette.HeatTrack)
		}
	}
}

func (r *Renderer) drawBlock(b Rect, s game.State, i int, pulse bool) {
	p := r.palette
	kind := Classify(s, i)

	edge := p.BlockEdge
	switch {
	case s.Flash == game.FlashHit && kind == CoinReal:
		edge = p.RingHit
	case s.Flash == game.FlashMiss && kind != CoinReal:
		edge = p.RingMiss
	}

	r.fill(Rect{X: b.X + 1, Y: b.Y + 1, W: b.W - 2, H: b.H - 2}, ' ', p.Block)
	r.box(b, edge)

	var coin tcell.Style
	switch kind {
	case CoinReal:
		coin = p.Coin
	case CoinDecoy:
		if pulse {
			coin = p.CoinDecoy
		} else {
			coin = p.CoinPulse
		}
	default:
		coin = p.CoinDim
	}
	r.screen.SetContent(b.X+b.W/2, b.Y+b.H/2, constants.CoinRune, nil, coin)
}

func (r *Renderer) drawStartOverlay(l Layout, dx int) {
	p := r.palette
	stage := l.Stage.Shift(dx)
	r.fill(Rect{X: stage.X + 1, Y: stage.Y + 1, W: stage.W - 2, H: stage.H - 2}, ' ', p.Overlay)

	y := l.StartTop
	r.textCentered(stage, y, constants.TitleText, p.Title)
	for i, rule := range constants.StartRules {
		r.textCentered(stage, y+2+i, rule, p.Overlay.Bold(true))
	}
	r.drawButton(l.StartButton.Shift(dx), constants.StartButtonText)
	r.textCentered(stage, l.StartButton.Y+2, constants.StartTipText, p.Overlay)
}

func (r *Renderer) drawGameOverOverlay(l Layout, s game.State, dx int) {
	p := r.palette
	stage := l.Stage.Shift(dx)
	r.fill(Rect{X: stage.X + 1, Y: stage.Y + 1, W: stage.W - 2, H: stage.H - 2}, ' ', p.Overlay)

	r.textCentered(stage, l.GameOverTop, constants.GameOverText, p.Danger)
	r.textCentered(stage, l.GameOverTop+1, fmt.Sprintf("LEVEL %d · SCORE %d", s.Level, s.Score), p.Overlay.Bold(true))
	r.drawButton(l.RetryButton.Shift(dx), constants.RetryButtonText)
}

func (r *Renderer) drawButton(b Rect, label string) {
	r.fill(b, ' ', r.palette.Button)
	r.text(b.X+2, b.Y, label, r.palette.Button)
}

func (r *Renderer) drawTooSmall(l Layout) {
	msg := fmt.Sprintf("Enlarge terminal to %dx%d", constants.StageMinWidth, constants.StageMinHeight)
	full := Rect{W: l.Width, H: l.Height}
	r.textCentered(full, l.Height/2, msg, r.palette.Text)
}

// text draws s from x and returns the column after the last cell
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) textCentered(area Rect, y int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	r.text(area.X+(area.W-w)/2, y, s, style)
}

func (r *Renderer) textRight(right, y int, s string, style tcell.Style) {
	r.text(right-runewidth.StringWidth(s), y, s, style)
}

func (r *Renderer) fill(area Rect, ch rune, style tcell.Style) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) box(b Rect, style tcell.Style) {
	if b.W < 2 || b.H < 2 {
		return
	}
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		r.screen.SetContent(x, b.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := b.Y + 1; y < bottom; y++ {
		r.screen.SetContent(b.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(b.X, b.Y, '╭', nil, style)
	r.screen.SetContent(right, b.Y, '╮', nil, style)
	r.screen.SetContent(b.X, bottom, '╰', nil, style)
	r.screen.SetContent(right, bottom, '╯', nil, style)
}
