package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
)

// SoundManager plays the game tones through a single beep mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; no device is opened until Initialize
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.DefaultSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer
// A disabled config leaves the manager silent and returns nil
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.detachHumLocked()
	if !sm.initialized {
		sm.mixer.Clear()
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences one-shots and the hum without tearing down the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.hum != nil {
		sm.withSpeaker(func() { sm.hum.Paused = muted })
	}
}

// Muted reports the mute toggle
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayTone plays a one-shot tone; dropped when no device is open or muted
func (sm *SoundManager) PlayTone(tone game.Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	var s beep.Streamer
	switch tone {
	case game.ToneHit:
		s = CreateHitTone(sm.rate, sm.cfg.MasterVolume)
	case game.ToneBuzz:
		s = CreateBuzzTone(sm.rate, sm.cfg.MasterVolume)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartHum starts the ambient hum; a running hum is left alone
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.hum != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateHum(sm.rate, sm.cfg.MasterVolume), Paused: sm.muted}
	sm.hum = ctrl
	sm.withSpeaker(func() { sm.mixer.Add(ctrl) })
}

// StopHum detaches the hum; the mixer drops it on its next pass
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.detachHumLocked()
}

// HumActive reports whether a hum generator is attached
func (sm *SoundManager) HumActive() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.hum != nil
}

// Voices is the number of streamers currently held by the mixer
func (sm *SoundManager) Voices() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	var n int
	sm.withSpeaker(func() { n = sm.mixer.Len() })
	return n
}

func (sm *SoundManager) detachHumLocked() {
	if sm.hum == nil {
		return
	}
	ctrl := sm.hum
	sm.hum = nil
	// Ctrl with a nil streamer reports drained
	sm.withSpeaker(func() { ctrl.Streamer = nil })
}

// withSpeaker runs f under the speaker lock when the speaker is live
func (sm *SoundManager) withSpeaker(f func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}
