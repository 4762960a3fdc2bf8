package game

// Action is an input to the reducer
type Action interface {
	action()
}

// Start begins a run from the not-started phase
type Start struct{}

// Restart discards the session and re-arms a fresh one
type Restart struct{}

// Tick is one heat timer period
type Tick struct{}

// Tap selects grid slot Index
type Tap struct {
	Index int
}

// RevealDone ends the hit flash and draws the next round
type RevealDone struct{}

// FlashDone clears the miss flash
type FlashDone struct{}

// ShakeDone clears the stage shake
type ShakeDone struct{}

func (Start) action()      {}
func (Restart) action()    {}
func (Tick) action()       {}
func (Tap) action()        {}
func (RevealDone) action() {}
func (FlashDone) action()  {}
func (ShakeDone) action()  {}
