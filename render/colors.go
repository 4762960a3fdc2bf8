package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/block-miner/config"
)

// RGB color definitions for the truecolor palette
var (
	RgbBackground = tcell.NewRGBColor(11, 18, 32)    // Stage background
	RgbOverlay    = tcell.NewRGBColor(17, 26, 51)    // Start and game-over card
	RgbFrame      = tcell.NewRGBColor(56, 189, 248)  // Sky glow around the stage
	RgbBlock      = tcell.NewRGBColor(27, 42, 74)    // Block face
	RgbBlockEdge  = tcell.NewRGBColor(60, 80, 120)   // Block outline at rest
	RgbText       = tcell.NewRGBColor(255, 255, 255) // HUD text
	RgbMuted      = tcell.NewRGBColor(148, 163, 184) // Secondary text
	RgbGold       = tcell.NewRGBColor(250, 204, 21)  // Coin, title, heat fill, hit ring
	RgbGoldDecoy  = tcell.NewRGBColor(217, 176, 18)  // Decoy coin, bright phase
	RgbGoldPulse  = tcell.NewRGBColor(150, 122, 12)  // Decoy coin, dim phase
	RgbGoldDim    = tcell.NewRGBColor(70, 62, 30)    // Plain coin at low opacity
	RgbRed        = tcell.NewRGBColor(248, 113, 113) // Miss ring, game-over title
	RgbTrack      = tcell.NewRGBColor(60, 66, 80)    // Empty heat track
	RgbButtonText = tcell.NewRGBColor(0, 0, 0)       // Button label
)

// Palette holds every style the renderer draws with
type Palette struct {
	Background tcell.Style
	Overlay    tcell.Style
	Frame      tcell.Style
	Text       tcell.Style
	Muted      tcell.Style
	Title      tcell.Style
	Danger     tcell.Style
	Block      tcell.Style
	BlockEdge  tcell.Style
	RingHit    tcell.Style
	RingMiss   tcell.Style
	Coin       tcell.Style
	CoinDecoy  tcell.Style
	CoinPulse  tcell.Style
	CoinDim    tcell.Style
	HeatFill   tcell.Style
	HeatTrack  tcell.Style
	Button     tcell.Style
}

// TrueColorPalette uses 24-bit colors
func TrueColorPalette() Palette {
	bg := tcell.StyleDefault.Background(RgbBackground)
	block := tcell.StyleDefault.Background(RgbBlock)
	overlay := tcell.StyleDefault.Background(RgbOverlay)
	return Palette{
		Background: bg,
		Overlay:    overlay.Foreground(RgbText),
		Frame:      bg.Foreground(RgbFrame),
		Text:       bg.Foreground(RgbText).Bold(true),
		Muted:      bg.Foreground(RgbMuted),
		Title:      overlay.Foreground(RgbGold).Bold(true),
		Danger:     overlay.Foreground(RgbRed).Bold(true),
		Block:      block,
		BlockEdge:  bg.Foreground(RgbBlockEdge),
		RingHit:    bg.Foreground(RgbGold).Bold(true),
		RingMiss:   bg.Foreground(RgbRed).Bold(true),
		Coin:       block.Foreground(RgbGold).Bold(true),
		CoinDecoy:  block.Foreground(RgbGoldDecoy),
		CoinPulse:  block.Foreground(RgbGoldPulse),
		CoinDim:    block.Foreground(RgbGoldDim),
		HeatFill:   bg.Foreground(RgbGold),
		HeatTrack:  bg.Foreground(RgbTrack),
		Button:     tcell.StyleDefault.Background(RgbGold).Foreground(RgbButtonText).Bold(true),
	}
}

// Palette256 uses the xterm 256-color table
func Palette256() Palette {
	bg := tcell.StyleDefault.Background(tcell.PaletteColor(234))
	block := tcell.StyleDefault.Background(tcell.PaletteColor(17))
	overlay := tcell.StyleDefault.Background(tcell.PaletteColor(236))
	return Palette{
		Background: bg,
		Overlay:    overlay.Foreground(tcell.ColorWhite),
		Frame:      bg.Foreground(tcell.PaletteColor(81)),
		Text:       bg.Foreground(tcell.ColorWhite).Bold(true),
		Muted:      bg.Foreground(tcell.PaletteColor(248)),
		Title:      overlay.Foreground(tcell.PaletteColor(220)).Bold(true),
		Danger:     overlay.Foreground(tcell.PaletteColor(203)).Bold(true),
		Block:      block,
		BlockEdge:  bg.Foreground(tcell.PaletteColor(60)),
		RingHit:    bg.Foreground(tcell.PaletteColor(220)).Bold(true),
		RingMiss:   bg.Foreground(tcell.PaletteColor(203)).Bold(true),
		Coin:       block.Foreground(tcell.PaletteColor(220)).Bold(true),
		CoinDecoy:  block.Foreground(tcell.PaletteColor(178)),
		CoinPulse:  block.Foreground(tcell.PaletteColor(136)),
		CoinDim:    block.Foreground(tcell.PaletteColor(58)),
		HeatFill:   bg.Foreground(tcell.PaletteColor(220)),
		HeatTrack:  bg.Foreground(tcell.PaletteColor(238)),
		Button:     tcell.StyleDefault.Background(tcell.PaletteColor(220)).Foreground(tcell.ColorBlack).Bold(true),
	}
}

// MonoPalette relies on attributes only
func MonoPalette() Palette {
	plain := tcell.StyleDefault
	return Palette{
		Background: plain,
		Overlay:    plain,
		Frame:      plain,
		Text:       plain.Bold(true),
		Muted:      plain.Dim(true),
		Title:      plain.Bold(true),
		Danger:     plain.Bold(true).Underline(true),
		Block:      plain,
		BlockEdge:  plain.Dim(true),
		RingHit:    plain.Bold(true),
		RingMiss:   plain.Reverse(true),
		Coin:       plain.Bold(true),
		CoinDecoy:  plain,
		CoinPulse:  plain.Dim(true),
		CoinDim:    plain.Dim(true),
		HeatFill:   plain.Bold(true),
		HeatTrack:  plain.Dim(true),
		Button:     plain.Reverse(true).Bold(true),
	}
}

// PaletteFor picks a palette from the configured mode; auto uses the screen's color count
func PaletteFor(mode string, colors int) Palette {
	switch mode {
	case config.ColorTrueColor:
		return TrueColorPalette()
	case config.Color256:
		return Palette256()
	case config.ColorMono:
		return MonoPalette()
	}

	switch {
	case colors >= 1<<24:
		return TrueColorPalette()
	case colors >= 256:
		return Palette256()
	default:
		return MonoPalette()
	}
}
