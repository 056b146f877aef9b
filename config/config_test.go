package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/singularity/audio"
	"github.com/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "singularity.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestDefaultMatchesRules verifies the documented round timings
func TestDefaultMatchesRules(t *testing.T) {
	cfg := Default()

	if cfg.DropCooldown() != 600*time.Millisecond {
		t.Errorf("Expected 600ms cooldown, got %v", cfg.DropCooldown())
	}
	if cfg.SpawnGrace() != time.Second {
		t.Errorf("Expected 1s grace, got %v", cfg.SpawnGrace())
	}
	if cfg.WinBanner() != 5*time.Second {
		t.Errorf("Expected 5s banner, got %v", cfg.WinBanner())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestLoadEmptyPath verifies defaults load without a file
func TestLoadEmptyPath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Physics.StepHz != Default().Physics.StepHz {
		t.Errorf("Expected default step rate, got %d", cfg.Physics.StepHz)
	}
}

// TestLoadFile verifies file values override defaults and untouched keys keep defaults
func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
[rules]
drop_cooldown_ms = 250
settled_speed = 5.5

[audio]
master_volume = 0.8
[audio.volumes]
merge = 0.9

[display]
show_legend = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.DropCooldown() != 250*time.Millisecond {
		t.Errorf("Expected 250ms cooldown, got %v", cfg.DropCooldown())
	}
	if cfg.Rules.SettledSpeed != 5.5 {
		t.Errorf("Expected settled speed 5.5, got %f", cfg.Rules.SettledSpeed)
	}
	if cfg.SpawnGrace() != time.Second {
		t.Errorf("Expected default grace kept, got %v", cfg.SpawnGrace())
	}
	if cfg.Display.ShowLegend {
		t.Error("Expected legend disabled")
	}

	ac := cfg.AudioConfig()
	if ac.MasterVolume != 0.8 {
		t.Errorf("Expected master 0.8, got %f", ac.MasterVolume)
	}
	if ac.EffectVolumes[audio.SoundMerge] != 0.9 {
		t.Errorf("Expected merge volume 0.9, got %f", ac.EffectVolumes[audio.SoundMerge])
	}
	if ac.EffectVolumes[audio.SoundDrop] != audio.DefaultAudioConfig().EffectVolumes[audio.SoundDrop] {
		t.Error("Expected drop volume to keep its default")
	}
}

// TestLoadRejectsUnknownKey verifies typos surface as ErrInvalid
func TestLoadRejectsUnknownKey(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "[rules]\ndrop_cooldwn_ms = 10\n")

	_, err := Load(path)
	if errors.Cause(err) != ErrInvalid {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

// TestLoadMissingFile verifies the decode error is returned
func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestEnvOverrides verifies environment values win over the file
func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "25")
	t.Setenv(EnvSFXVolumes, `{"win": 0.1}`)
	t.Setenv(EnvSampleRate, "48000")

	path := writeFile(t, "[audio]\nenabled = true\nmaster_volume = 0.9\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected master 0.25, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Volumes["win"] != 0.1 {
		t.Errorf("Expected win volume 0.1, got %f", cfg.Audio.Volumes["win"])
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
}

// TestEnvMalformedIgnored verifies bad env values keep the previous setting
func TestEnvMalformedIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvSampleRate, "-1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	def := Default()
	if cfg.Audio.MasterVolume != def.Audio.MasterVolume {
		t.Errorf("Expected default master volume, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != def.Audio.SampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
}

// TestValidate verifies each guard
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step rate", func(c *Config) { c.Physics.StepHz = 0 }},
		{"zero iterations", func(c *Config) { c.Physics.Iterations = 0 }},
		{"zero check interval", func(c *Config) { c.Rules.DeathCheckInterval = 0 }},
		{"negative cooldown", func(c *Config) { c.Rules.DropCooldownMs = -1 }},
		{"negative speed", func(c *Config) { c.Rules.SettledSpeed = -0.1 }},
		{"death line below floor", func(c *Config) { c.Rules.DeathLineY = 900 }},
		{"unknown sound", func(c *Config) { c.Audio.Volumes["bell"] = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); errors.Cause(err) != ErrInvalid {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
