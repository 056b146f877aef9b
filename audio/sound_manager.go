package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/singularity/constants"
	"github.com/pkg/errors"
)

// SoundManager plays synthesized effects through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a sound manager, cfg may be nil for defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears pending sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a one-shot effect. rank only affects SoundMerge. Returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType, rank int) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	streamer := GetSoundEffect(st, rank, sm.config)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// ToggleMute flips mute state, returns true if sound is now muted
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of effects queued so far
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}
