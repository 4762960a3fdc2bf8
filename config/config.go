// Package config resolves runtime settings from defaults, an optional TOML or
// YAML file and the environment. Command-line flags are applied by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/block-miner/audio"
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/game"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvAudioEnabled = "BLOCK_MINER_AUDIO_ENABLED"
	EnvMasterVolume = "BLOCK_MINER_MASTER_VOLUME"
	EnvSeed         = "BLOCK_MINER_SEED"
	EnvColor        = "BLOCK_MINER_COLOR"
)

// Color modes accepted by [display].color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	ColorMono      = "mono"
)

const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

// Config is the full runtime configuration
type Config struct {
	Gameplay GameplayConfig `toml:"gameplay" yaml:"gameplay"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`
}

// GameplayConfig tunes the rules of a run
type GameplayConfig struct {
	MaxLives     int    `toml:"max_lives" yaml:"max_lives"`
	LevelUpEvery int    `toml:"level_up_every" yaml:"level_up_every"`
	BaseIdleMs   int    `toml:"base_idle_ms" yaml:"base_idle_ms"`
	Seed         uint64 `toml:"seed" yaml:"seed"` // 0 seeds from the clock
}

// AudioConfig controls tone output
type AudioConfig struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled"`
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume"`
	SampleRate   int     `toml:"sample_rate" yaml:"sample_rate"`
}

// DisplayConfig controls terminal output
type DisplayConfig struct {
	Color string `toml:"color" yaml:"color"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			MaxLives:     constants.MaxLives,
			LevelUpEvery: constants.LevelUpEvery,
			BaseIdleMs:   int(constants.BaseIdle / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			SampleRate:   constants.DefaultSampleRate,
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
	}
}

// Load resolves defaults, then the file at path (if non-empty), then the environment
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays a config file onto cfg; unknown keys are rejected
// Files ending in .yaml or .yml are read as YAML, anything else as TOML
func (c *Config) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		if err := c.DecodeYAML(data); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		return nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return checkUndecoded(path, md)
}

// DecodeYAML overlays YAML onto cfg; unknown keys are rejected
func (c *Config) DecodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}

// Decode overlays TOML text onto cfg; unknown keys are rejected
func (c *Config) Decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return checkUndecoded("config", md)
}

func checkUndecoded(source string, md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%s: unknown keys: %s", source, strings.Join(keys, ", "))
}

// ApplyEnv overlays environment overrides onto cfg
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}

	// Volume is given as 0-100 and clamped
	if v := getenv(EnvMasterVolume); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(pct)/100.0, 0), 1)
	}

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Gameplay.Seed = seed
	}

	if v := getenv(EnvColor); v != "" {
		c.Display.Color = strings.ToLower(v)
	}

	return nil
}

// Validate reports every out-of-range setting
func (c Config) Validate() error {
	var errs []error

	if c.Gameplay.MaxLives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.max_lives must be positive, got %d", c.Gameplay.MaxLives))
	}
	if c.Gameplay.LevelUpEvery <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.level_up_every must be positive, got %d", c.Gameplay.LevelUpEvery))
	}
	if minMs := int(constants.MinIdle / time.Millisecond); c.Gameplay.BaseIdleMs < minMs {
		errs = append(errs, fmt.Errorf("gameplay.base_idle_ms must be at least %d, got %d", minMs, c.Gameplay.BaseIdleMs))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be in [0,1], got %g", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate < minSampleRate || c.Audio.SampleRate > maxSampleRate {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be in [%d,%d], got %d", minSampleRate, maxSampleRate, c.Audio.SampleRate))
	}
	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256, ColorMono:
	default:
		errs = append(errs, fmt.Errorf("display.color %q is not one of auto, truecolor, 256, mono", c.Display.Color))
	}

	return errors.Join(errs...)
}

// Rules converts the gameplay section to reducer rules
func (c Config) Rules() game.Rules {
	return game.Rules{
		MaxLives:     c.Gameplay.MaxLives,
		LevelUpEvery: c.Gameplay.LevelUpEvery,
		BaseIdle:     time.Duration(c.Gameplay.BaseIdleMs) * time.Millisecond,
	}
}

// AudioOutput converts the audio section to sound manager settings
func (c Config) AudioOutput() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		SampleRate:   c.Audio.SampleRate,
	}
}
