package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InboxCapacity is the engine action queue size
	InboxCapacity = 256

	// EventChannelCapacity buffers terminal events between the poller and the main loop
	EventChannelCapacity = 256
)
