package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/block-miner/constants"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestDefaultIsValid verifies the stock config passes validation and matches constants
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	r := cfg.Rules()
	if r.MaxLives != constants.MaxLives || r.LevelUpEvery != constants.LevelUpEvery || r.BaseIdle != constants.BaseIdle {
		t.Errorf("Rules = %+v", r)
	}
}

// TestDecodeOverlaysDefaults verifies partial TOML keeps unspecified defaults
func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(`
[gameplay]
max_lives = 5
seed = 1234

[audio]
master_volume = 0.25
`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Gameplay.MaxLives != 5 || cfg.Gameplay.Seed != 1234 {
		t.Errorf("Gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Gameplay.LevelUpEvery != constants.LevelUpEvery {
		t.Errorf("LevelUpEvery = %d, want default", cfg.Gameplay.LevelUpEvery)
	}
	if cfg.Audio.MasterVolume != 0.25 || !cfg.Audio.Enabled {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
}

// TestDecodeRejectsUnknownKeys verifies typos are reported
func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(`
[gameplay]
max_live = 5
`)
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "gameplay.max_live") {
		t.Errorf("Error should name the key, got %v", err)
	}
}

// TestDecodeSyntaxError verifies malformed TOML fails
func TestDecodeSyntaxError(t *testing.T) {
	cfg := Default()
	if err := cfg.Decode("[gameplay\nmax_lives = "); err == nil {
		t.Error("Expected parse error")
	}
}

// TestLoadFromFile verifies the file and environment layers in order
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block-miner.toml")
	data := "[gameplay]\nbase_idle_ms = 5000\n\n[display]\ncolor = \"256\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, envMap(map[string]string{
		EnvMasterVolume: "40",
		EnvAudioEnabled: "false",
		EnvSeed:         "99",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Rules().BaseIdle != 5*time.Second {
		t.Errorf("BaseIdle = %v, want 5s", cfg.Rules().BaseIdle)
	}
	if cfg.Display.Color != Color256 {
		t.Errorf("Color = %q, want 256", cfg.Display.Color)
	}
	out := cfg.AudioOutput()
	if out.Enabled || out.MasterVolume != 0.4 {
		t.Errorf("AudioOutput = %+v", out)
	}
	if cfg.Gameplay.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Gameplay.Seed)
	}
}

// TestLoadMissingFile verifies a missing file is an error
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestApplyEnvClampsVolume verifies out-of-range percentages clamp
func TestApplyEnvClampsVolume(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"150", 1.0},
		{"-20", 0.0},
		{"75", 0.75},
	}

	for _, tt := range tests {
		cfg := Default()
		if err := cfg.ApplyEnv(envMap(map[string]string{EnvMasterVolume: tt.value})); err != nil {
			t.Fatalf("ApplyEnv(%s): %v", tt.value, err)
		}
		if cfg.Audio.MasterVolume != tt.want {
			t.Errorf("Volume(%s) = %f, want %f", tt.value, cfg.Audio.MasterVolume, tt.want)
		}
	}
}

// TestApplyEnvBadValues verifies malformed environment values fail loudly
func TestApplyEnvBadValues(t *testing.T) {
	for _, key := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSeed} {
		cfg := Default()
		err := cfg.ApplyEnv(envMap(map[string]string{key: "not-a-value"}))
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Errorf("%s: expected error naming the variable, got %v", key, err)
		}
	}
}

// TestValidateCollectsAllErrors verifies every bad field is reported
func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.MaxLives = 0
	cfg.Gameplay.LevelUpEvery = -1
	cfg.Gameplay.BaseIdleMs = 1000
	cfg.Audio.MasterVolume = 2
	cfg.Audio.SampleRate = 100
	cfg.Display.Color = "sepia"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, field := range []string{"max_lives", "level_up_every", "base_idle_ms", "master_volume", "sample_rate", "display.color"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Error should mention %s: %v", field, err)
		}
	}
}

// TestLoadYAMLFile verifies .yaml files decode with the same keys as TOML
func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block-miner.yaml")
	data := "gameplay:\n  max_lives: 5\n  level_up_every: 2\naudio:\n  master_volume: 0.5\ndisplay:\n  color: mono\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gameplay.MaxLives != 5 || cfg.Gameplay.LevelUpEvery != 2 {
		t.Errorf("Gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Audio.MasterVolume != 0.5 || !cfg.Audio.Enabled {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
	if cfg.Display.Color != ColorMono {
		t.Errorf("Color = %q, want mono", cfg.Display.Color)
	}
	if cfg.Gameplay.BaseIdleMs != int(constants.BaseIdle/time.Millisecond) {
		t.Errorf("Unset keys should keep defaults, BaseIdleMs = %d", cfg.Gameplay.BaseIdleMs)
	}
}

// TestDecodeYAMLRejectsUnknownKeys verifies strict YAML decoding
func TestDecodeYAMLRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := cfg.DecodeYAML([]byte("gameplay:\n  max_livez: 4\n"))
	if err == nil || !strings.Contains(err.Error(), "max_livez") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

// TestDecodeYAMLEmpty verifies an empty document leaves defaults intact
func TestDecodeYAMLEmpty(t *testing.T) {
	cfg := Default()
	if err := cfg.DecodeYAML(nil); err != nil {
		t.Fatalf("DecodeYAML(nil): %v", err)
	}
	if cfg != Default() {
		t.Error("Empty YAML changed the config")
	}
}
