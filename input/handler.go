package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-miner/game"
	"github.com/lixenwraith/block-miner/render"
)

// Handler turns tcell events into intents
// Not safe for concurrent use; the main loop owns it
type Handler struct {
	keys *KeyTable

	// Last seen button state, for press-edge detection
	buttons tcell.ButtonMask
}

// NewHandler creates a handler with the default key table
func NewHandler() *Handler {
	return &Handler{keys: DefaultKeyTable()}
}

// NewHandlerWithKeys creates a handler bound to a custom key table
func NewHandlerWithKeys(keys *KeyTable) *Handler {
	return &Handler{keys: keys}
}

// Process dispatches on event type
func (h *Handler) Process(ev tcell.Event, s game.State, l render.Layout) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune(), s)
	case *tcell.EventMouse:
		x, y := ev.Position()
		return h.HandleMouse(x, y, ev.Buttons(), s, l)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return none()
}

// HandleKey maps a key press to an intent
func (h *Handler) HandleKey(key tcell.Key, r rune, s game.State) Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return overlayAction(s)
	case tcell.KeyRune:
	default:
		return none()
	}

	switch r {
	case 'Q':
		return Intent{Type: IntentQuit}
	case 'm':
		return Intent{Type: IntentToggleMute}
	case 'r':
		return act(game.Restart{})
	case ' ':
		return overlayAction(s)
	}

	if i, ok := h.keys.Cell(r); ok && s.Phase() == game.PhasePlaying {
		return act(game.Tap{Index: i})
	}
	return none()
}

// HandleMouse maps a left-button press to a tap or overlay button
// Held buttons and drags produce nothing; only the press edge counts
func (h *Handler) HandleMouse(x, y int, buttons tcell.ButtonMask, s game.State, l render.Layout) Intent {
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed || l.TooSmall {
		return none()
	}

	switch p := s.Phase(); p {
	case game.PhasePlaying:
		if i := l.CellAt(x, y, s); i >= 0 {
			return act(game.Tap{Index: i})
		}
	default:
		if l.OnButton(x, y, p) {
			return overlayAction(s)
		}
	}
	return none()
}

// overlayAction is the button action for the visible overlay
func overlayAction(s game.State) Intent {
	switch s.Phase() {
	case game.PhaseNotStarted:
		return act(game.Start{})
	case game.PhaseGameOver:
		return act(game.Restart{})
	}
	return none()
}
