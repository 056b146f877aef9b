// Package config assembles runtime settings from built-in defaults, an optional TOML file
// and SINGULARITY_* environment overrides, in that order
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/singularity/audio"
	"github.com/lixenwraith/singularity/constants"
	"github.com/pkg/errors"
)

// ErrInvalid is returned by Validate for settings the game cannot run with
var ErrInvalid = errors.New("invalid configuration")

// Environment variable names
const (
	EnvAudioEnabled = "SINGULARITY_AUDIO_ENABLED"
	EnvMasterVolume = "SINGULARITY_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "SINGULARITY_SFX_VOLUMES"   // JSON object keyed by sound name
	EnvSampleRate   = "SINGULARITY_SAMPLE_RATE"
)

// Physics tunes the cp space
type Physics struct {
	Gravity        float64 `toml:"gravity"`
	Iterations     int     `toml:"iterations"`
	SleepThreshold float64 `toml:"sleep_threshold"`
	StepHz         int     `toml:"step_hz"`
}

// Rules holds round timing and the death line heuristic
type Rules struct {
	DropCooldownMs     int     `toml:"drop_cooldown_ms"`
	SpawnGraceMs       int     `toml:"spawn_grace_ms"`
	WinBannerMs        int     `toml:"win_banner_ms"`
	DeathCheckInterval int     `toml:"death_check_interval"`
	SettledSpeed       float64 `toml:"settled_speed"`
	DeathLineY         float64 `toml:"death_line_y"`
}

// Audio mirrors audio.AudioConfig with string-keyed volumes for the file format
type Audio struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// Display controls optional screen elements
type Display struct {
	ShowLegend bool `toml:"show_legend"`
}

// Config is the complete settings tree
type Config struct {
	Physics Physics `toml:"physics"`
	Rules   Rules   `toml:"rules"`
	Audio   Audio   `toml:"audio"`
	Display Display `toml:"display"`
}

// Default returns the built-in settings
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	volumes := make(map[string]float64, len(ac.EffectVolumes))
	for st, v := range ac.EffectVolumes {
		volumes[st.String()] = v
	}

	return &Config{
		Physics: Physics{
			Gravity:        constants.Gravity,
			Iterations:     constants.SolverIterations,
			SleepThreshold: constants.SleepTimeThreshold,
			StepHz:         constants.PhysicsStepHz,
		},
		Rules: Rules{
			DropCooldownMs:     int(constants.DropCooldown / time.Millisecond),
			SpawnGraceMs:       int(constants.SpawnGrace / time.Millisecond),
			WinBannerMs:        int(constants.WinBannerDuration / time.Millisecond),
			DeathCheckInterval: constants.DeathCheckInterval,
			SettledSpeed:       constants.SettledSpeed,
			DeathLineY:         constants.DeathLineY,
		},
		Audio: Audio{
			Enabled:      ac.Enabled,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
			Volumes:      volumes,
		},
		Display: Display{
			ShowLegend: true,
		},
	}
}

// Load reads path over the defaults (skipped when path is empty), applies env overrides and validates
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Wrapf(ErrInvalid, "unknown key %q in %s", undecoded[0].String(), path)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides audio settings from the environment, malformed values are ignored
func (c *Config) applyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = float64(val) / 100.0
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				c.Audio.Volumes[name] = v
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}
}

// Validate rejects settings that would stall or break the simulation
func (c *Config) Validate() error {
	switch {
	case c.Physics.StepHz <= 0:
		return errors.Wrap(ErrInvalid, "physics.step_hz must be positive")
	case c.Physics.Iterations <= 0:
		return errors.Wrap(ErrInvalid, "physics.iterations must be positive")
	case c.Rules.DeathCheckInterval <= 0:
		return errors.Wrap(ErrInvalid, "rules.death_check_interval must be positive")
	case c.Rules.DropCooldownMs < 0, c.Rules.SpawnGraceMs < 0, c.Rules.WinBannerMs < 0:
		return errors.Wrap(ErrInvalid, "rules durations must not be negative")
	case c.Rules.SettledSpeed < 0:
		return errors.Wrap(ErrInvalid, "rules.settled_speed must not be negative")
	case c.Rules.DeathLineY < 0 || c.Rules.DeathLineY >= constants.FieldHeight:
		return errors.Wrap(ErrInvalid, "rules.death_line_y must lie inside the field")
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return errors.Wrapf(ErrInvalid, "audio.volumes: unknown sound %q", name)
		}
	}
	return nil
}

// DropCooldown is Rules.DropCooldownMs as a duration
func (c *Config) DropCooldown() time.Duration {
	return time.Duration(c.Rules.DropCooldownMs) * time.Millisecond
}

// SpawnGrace is Rules.SpawnGraceMs as a duration
func (c *Config) SpawnGrace() time.Duration {
	return time.Duration(c.Rules.SpawnGraceMs) * time.Millisecond
}

// WinBanner is Rules.WinBannerMs as a duration
func (c *Config) WinBanner() time.Duration {
	return time.Duration(c.Rules.WinBannerMs) * time.Millisecond
}

// StepDelta is the fixed physics step in seconds
func (c *Config) StepDelta() float64 {
	return 1.0 / float64(c.Physics.StepHz)
}

// AudioConfig converts the audio section for the audio package, values clamped
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = v
		}
	}
	ac.Clamp()
	return ac
}
