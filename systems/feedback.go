package systems

import (
	"github.com/lixenwraith/singularity/audio"
	"github.com/lixenwraith/singularity/events"
)

// FeedbackSystem turns queued game events into sound cues and merge bursts
// Decouples the physics step from audio and particle state
type FeedbackSystem struct {
	player    audio.Player
	particles *ParticleSystem
}

// NewFeedbackSystem creates a feedback system
// player may be nil if audio is disabled
func NewFeedbackSystem(player audio.Player, particles *ParticleSystem) *FeedbackSystem {
	return &FeedbackSystem{
		player:    player,
		particles: particles,
	}
}

// EventTypes returns the event types FeedbackSystem handles
func (s *FeedbackSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDrop,
		events.EventMerge,
		events.EventWin,
		events.EventGameOver,
		events.EventWorldReset,
	}
}

// HandleEvent plays the cue for the event and spawns particles for merges
func (s *FeedbackSystem) HandleEvent(event events.GameEvent) {
	switch event.Type {
	case events.EventDrop:
		if payload, ok := event.Payload.(*events.DropPayload); ok {
			s.play(audio.SoundDrop, payload.Rank)
		}

	case events.EventMerge:
		payload, ok := event.Payload.(*events.MergePayload)
		if !ok {
			return
		}
		if s.particles != nil {
			s.particles.Burst(payload.X, payload.Y, payload.Produced)
		}
		s.play(audio.SoundMerge, payload.Produced)

	case events.EventWin:
		s.play(audio.SoundWin, 0)

	case events.EventGameOver:
		s.play(audio.SoundGameOver, 0)

	case events.EventWorldReset:
		if s.particles != nil {
			s.particles.Clear()
		}
	}
}

func (s *FeedbackSystem) play(st audio.SoundType, rank int) {
	if s.player == nil {
		return
	}
	s.player.Play(st, rank)
}
