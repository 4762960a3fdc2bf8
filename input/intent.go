package input

import "github.com/lixenwraith/block-miner/game"

// IntentType discriminates what a terminal event means to the game shell
type IntentType uint8

const (
	IntentNone       IntentType = iota
	IntentQuit                  // Esc, Ctrl+C, Q
	IntentToggleMute            // m
	IntentResize                // Terminal resize event
	IntentAction                // Event maps to a game.Action
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentAction:
		return "action"
	default:
		return "none"
	}
}

// Intent is the parsed result of one terminal event
// Action is set only when Type is IntentAction
type Intent struct {
	Type   IntentType
	Action game.Action
}

func none() Intent { return Intent{} }

func act(a game.Action) Intent { return Intent{Type: IntentAction, Action: a} }
