package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/singularity/constants"
)

// drain streams s to exhaustion and returns the number of samples produced
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d not mono: %f != %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorTriangle verifies the triangle wave stays in range and starts at the trough
func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(400.0, 50*time.Millisecond, WaveTriangle, rate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)

	if samples[0][0] != -1.0 {
		t.Errorf("Expected triangle to start at -1, got %f", samples[0][0])
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Triangle sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorSquare verifies square wave only emits the two rails
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond

	got := drain(NewOscillator(110.0, duration, WaveSaw, rate))
	if want := rate.N(duration); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestEnvelopeShape verifies attack starts silent and the body reaches full volume
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade: %f >= %f", samples[99][0], samples[90][0])
	}
}

// TestMergeFrequency verifies pitch scales with the produced rank
func TestMergeFrequency(t *testing.T) {
	if f := MergeFrequency(0); f != constants.MergeSoundBaseFreq {
		t.Errorf("Expected base frequency %f, got %f", constants.MergeSoundBaseFreq, f)
	}
	if f := MergeFrequency(10); math.Abs(f-700) > 1e-9 {
		t.Errorf("Expected 700Hz for rank 10, got %f", f)
	}
}

// TestGetSoundEffect verifies every sound type builds a finite streamer
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	tests := []struct {
		st       SoundType
		duration time.Duration
	}{
		{SoundDrop, constants.DropSoundDuration},
		{SoundMerge, constants.MergeSoundDuration},
		{SoundWin, constants.WinSoundDuration},
		{SoundGameOver, constants.GameOverNote1Duration + constants.GameOverNote2Duration},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, 3, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			rate := beep.SampleRate(cfg.SampleRate)
			if got, want := drain(s), rate.N(tt.duration); got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, 0, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestMutedManagerDoesNotPlay verifies mute short-circuits without touching the speaker
func TestMutedManagerDoesNotPlay(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if !sm.IsMuted() {
		t.Fatal("Expected disabled config to start muted")
	}
	if sm.Play(SoundDrop, 0) {
		t.Error("Muted manager should not play")
	}
	if sm.ToggleMute() {
		t.Error("ToggleMute should report sound enabled")
	}
	// Not initialized: still refuses
	if sm.Play(SoundDrop, 0) {
		t.Error("Uninitialized manager should not play")
	}
	if sm.Played() != 0 {
		t.Errorf("Expected 0 played, got %d", sm.Played())
	}
}
