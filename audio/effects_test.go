package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok || n != 100 {
		t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSaw verifies sawtooth wave generation
func TestOscillatorSaw(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(140.0, 50*time.Millisecond, WaveSaw, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sawtooth sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorDrains verifies a finite oscillator stops after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if n != 10 || !ok {
		t.Errorf("First stream = (%d, %v), want (10, true)", n, ok)
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Drained stream = (%d, %v), want (0, false)", n, ok)
	}
}

// TestOscillatorEndless verifies the hum oscillator never drains
func TestOscillatorEndless(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(60, 0, WaveSine, rate)

	samples := make([][2]float64, 512)
	for i := 0; i < 10; i++ {
		if n, ok := osc.Stream(samples); n != 512 || !ok {
			t.Fatalf("Pass %d: stream = (%d, %v)", i, n, ok)
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 100*time.Millisecond, WaveSaw, rate) // constant -1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("First sample should be silent, got %f", samples[0][0])
	}
	if samples[50][0] != -1.0 {
		t.Errorf("Sustain sample should be full scale, got %f", samples[50][0])
	}
	if last := samples[99][0]; last < -0.2 {
		t.Errorf("Last sample should be released, got %f", last)
	}
}

// TestToneBuilders verifies each tone streams bounded samples
func TestToneBuilders(t *testing.T) {
	rate := beep.SampleRate(8000)
	builders := map[string]func(beep.SampleRate, float64) beep.Streamer{
		"hit":  CreateHitTone,
		"buzz": CreateBuzzTone,
		"hum":  CreateHum,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			s := build(rate, 1.0)
			samples := make([][2]float64, 256)
			n, ok := s.Stream(samples)
			if n == 0 || !ok {
				t.Fatalf("Stream = (%d, %v)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] > 0.2 || samples[i][0] < -0.2 {
					t.Fatalf("Sample %d = %f exceeds tone gain", i, samples[i][0])
				}
			}
		})
	}
}

// TestHitToneDuration verifies the hit ping drains after its duration
func TestHitToneDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := CreateHitTone(rate, 1.0)

	total := 0
	samples := make([][2]float64, 64)
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			break
		}
		if total > 10000 {
			t.Fatal("Hit tone did not drain")
		}
	}
	if total != 120 {
		t.Errorf("Hit tone streamed %d samples, want 120", total)
	}
}

// TestZeroVolumeIsSilent verifies muted volume produces silence
func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := CreateBuzzTone(rate, 0)

	samples := make([][2]float64, 50)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Sample %d = %f, want 0", i, samples[i][0])
		}
	}
}
