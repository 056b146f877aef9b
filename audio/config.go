package audio

import (
	"github.com/lixenwraith/singularity/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundDrop:     0.2,
			SoundMerge:    0.2,
			SoundWin:      0.3,
			SoundGameOver: 0.3,
		},
	}
}

// Volume returns the effective volume for a sound, master applied
func (c *AudioConfig) Volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return clampUnit(v) * clampUnit(c.MasterVolume)
}

// Clamp normalizes volumes into [0, 1] and restores a sane sample rate
func (c *AudioConfig) Clamp() {
	c.MasterVolume = clampUnit(c.MasterVolume)
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clampUnit(v)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
