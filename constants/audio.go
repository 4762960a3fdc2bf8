package constants

import "time"

// Output
const (
	// DefaultSampleRate is used when no sample rate is configured
	DefaultSampleRate = 48000

	// SpeakerBuffer is the speaker buffer duration passed to speaker.Init
	SpeakerBuffer = 100 * time.Millisecond
)

// Hit Tone
const (
	HitToneFrequency = 900.0
	HitToneGain      = 0.08
	HitToneDuration  = 120 * time.Millisecond
	HitToneAttack    = 3 * time.Millisecond
	HitToneRelease   = 30 * time.Millisecond
)

// Buzz Tone
const (
	BuzzToneFrequency = 140.0
	BuzzToneGain      = 0.12
	BuzzToneDuration  = 220 * time.Millisecond
	BuzzToneAttack    = 3 * time.Millisecond
	BuzzToneRelease   = 40 * time.Millisecond
)

// Ambient Hum
const (
	HumFrequency = 60.0
	HumGain      = 0.02
)
