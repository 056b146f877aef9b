package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/singularity/audio"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/events"
	"github.com/lixenwraith/singularity/planet"
)

type playCall struct {
	sound audio.SoundType
	rank  int
}

type fakePlayer struct {
	calls []playCall
}

func (p *fakePlayer) Play(st audio.SoundType, rank int) bool {
	p.calls = append(p.calls, playCall{sound: st, rank: rank})
	return true
}

func newFeedback() (*FeedbackSystem, *fakePlayer, *ParticleSystem) {
	player := &fakePlayer{}
	particles := NewParticleSystem(rand.New(rand.NewSource(1)))
	return NewFeedbackSystem(player, particles), player, particles
}

func TestFeedbackSounds(t *testing.T) {
	tests := []struct {
		name  string
		event events.GameEvent
		want  playCall
	}{
		{
			name:  "drop",
			event: events.GameEvent{Type: events.EventDrop, Payload: &events.DropPayload{Rank: planet.Moon}},
			want:  playCall{sound: audio.SoundDrop, rank: planet.Moon},
		},
		{
			name:  "merge uses produced rank",
			event: events.GameEvent{Type: events.EventMerge, Payload: &events.MergePayload{Consumed: planet.Earth, Produced: planet.Saturn}},
			want:  playCall{sound: audio.SoundMerge, rank: planet.Saturn},
		},
		{
			name:  "win",
			event: events.GameEvent{Type: events.EventWin, Payload: &events.ScorePayload{Score: 9000}},
			want:  playCall{sound: audio.SoundWin},
		},
		{
			name:  "game over",
			event: events.GameEvent{Type: events.EventGameOver, Payload: &events.ScorePayload{Score: 10}},
			want:  playCall{sound: audio.SoundGameOver},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, player, _ := newFeedback()
			fs.HandleEvent(tt.event)
			if len(player.calls) != 1 {
				t.Fatalf("calls = %d, want 1", len(player.calls))
			}
			if player.calls[0] != tt.want {
				t.Errorf("played %+v, want %+v", player.calls[0], tt.want)
			}
		})
	}
}

func TestFeedbackMergeBurstAndReset(t *testing.T) {
	fs, _, particles := newFeedback()

	fs.HandleEvent(events.GameEvent{
		Type:    events.EventMerge,
		Payload: &events.MergePayload{Consumed: planet.Dust, Produced: planet.Asteroid, X: 50, Y: 60},
	})
	if particles.Len() != constants.MergeParticleCount {
		t.Fatalf("particles = %d, want %d", particles.Len(), constants.MergeParticleCount)
	}
	if p := particles.Particles()[0]; p.X != 50 || p.Y != 60 || p.Rank != planet.Asteroid {
		t.Errorf("burst particle = %+v", p)
	}

	fs.HandleEvent(events.GameEvent{Type: events.EventWorldReset})
	if particles.Len() != 0 {
		t.Errorf("particles = %d after reset, want 0", particles.Len())
	}
}

func TestFeedbackIgnoresBadPayload(t *testing.T) {
	fs, player, particles := newFeedback()
	fs.HandleEvent(events.GameEvent{Type: events.EventMerge, Payload: "bogus"})
	fs.HandleEvent(events.GameEvent{Type: events.EventDrop})
	if len(player.calls) != 0 || particles.Len() != 0 {
		t.Errorf("bad payloads produced calls=%d particles=%d", len(player.calls), particles.Len())
	}
}

func TestFeedbackNilPlayer(t *testing.T) {
	particles := NewParticleSystem(rand.New(rand.NewSource(1)))
	fs := NewFeedbackSystem(nil, particles)
	fs.HandleEvent(events.GameEvent{Type: events.EventDrop, Payload: &events.DropPayload{}})
	fs.HandleEvent(events.GameEvent{Type: events.EventMerge, Payload: &events.MergePayload{Produced: 1}})
	if particles.Len() != constants.MergeParticleCount {
		t.Errorf("particles = %d, want %d without audio", particles.Len(), constants.MergeParticleCount)
	}
}

func TestFeedbackRoutedThroughQueue(t *testing.T) {
	fs, player, _ := newFeedback()
	q := events.NewEventQueue()
	r := events.NewRouter(q)
	r.Register(fs)

	q.Push(events.GameEvent{Type: events.EventDrop, Payload: &events.DropPayload{Rank: 2}})
	q.Push(events.GameEvent{Type: events.EventRoundStart})
	if n := r.DispatchAll(); n != 2 {
		t.Fatalf("dispatched %d, want 2", n)
	}
	if len(player.calls) != 1 || player.calls[0].sound != audio.SoundDrop {
		t.Errorf("calls = %+v", player.calls)
	}
}
