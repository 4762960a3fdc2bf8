package audio

import (
	"testing"

	"github.com/lixenwraith/block-miner/game"
)

func silentConfig() Config {
	return Config{Enabled: false, MasterVolume: 1.0, SampleRate: 8000}
}

// TestSoundManagerGracefulDegradation verifies operations are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(silentConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled config should initialize silently, got %v", err)
	}
	sm.PlayTone(game.ToneHit)
	sm.PlayTone(game.ToneBuzz)
	sm.StartHum()
	sm.StopHum()
	sm.SetMuted(true)
	sm.Cleanup()
}

// TestSoundManagerOneShotsDroppedWithoutDevice verifies tones do not pile up in an unplayed mixer
func TestSoundManagerOneShotsDroppedWithoutDevice(t *testing.T) {
	sm := NewSoundManager(silentConfig())

	for i := 0; i < 5; i++ {
		sm.PlayTone(game.ToneHit)
	}
	if v := sm.Voices(); v != 0 {
		t.Errorf("Voices = %d, want 0", v)
	}
}

// TestStartHumIdempotent verifies two starts leave exactly one hum generator
func TestStartHumIdempotent(t *testing.T) {
	sm := NewSoundManager(silentConfig())

	sm.StartHum()
	first := sm.hum
	sm.StartHum()

	if !sm.HumActive() {
		t.Fatal("Hum should be active")
	}
	if sm.hum != first {
		t.Error("Second StartHum replaced the generator")
	}
	if v := sm.Voices(); v != 1 {
		t.Errorf("Voices = %d, want 1", v)
	}
}

// TestStopHumDetaches verifies the mixer drops a stopped hum
func TestStopHumDetaches(t *testing.T) {
	sm := NewSoundManager(silentConfig())
	sm.StartHum()
	sm.StopHum()

	if sm.HumActive() {
		t.Error("Hum should be inactive after StopHum")
	}

	buf := make([][2]float64, 16)
	sm.mixer.Stream(buf)
	if v := sm.Voices(); v != 0 {
		t.Errorf("Voices = %d after mixer pass, want 0", v)
	}

	sm.StartHum()
	if !sm.HumActive() {
		t.Error("Hum should restart after a stop")
	}
}

// TestMuteCarriesToNewHum verifies a hum started while muted is paused
func TestMuteCarriesToNewHum(t *testing.T) {
	sm := NewSoundManager(silentConfig())
	sm.SetMuted(true)
	sm.StartHum()

	if !sm.hum.Paused {
		t.Error("Hum started while muted should be paused")
	}

	sm.SetMuted(false)
	if sm.hum.Paused || sm.Muted() {
		t.Error("Unmute should resume the hum")
	}
}

// TestSoundManagerInitialization verifies a real device can be opened and closed when present
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: true, MasterVolume: 0.5})

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	sm.StartHum()
	sm.PlayTone(game.ToneBuzz)
	sm.Cleanup()
}
