package audio

import "github.com/lixenwraith/block-miner/game"

// Player is the audio capability the engine drives
// Implementations must be safe to call when no output device exists
type Player interface {
	PlayTone(tone game.Tone)
	StartHum()
	StopHum()
}

// Config holds output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}
