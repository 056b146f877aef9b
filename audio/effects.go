package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/singularity/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

var waveforms = map[WaveType]waveform{
	WaveSine:     func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveTriangle: func(p float64) float64 { return 1 - 4*math.Abs(p-0.5) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(p float64) float64 { return 2*p - 1 },
}

// tone is a fixed-length mono oscillator
type tone struct {
	shape     waveform
	step      float64 // phase advance per sample
	phase     float64
	remaining int
}

// NewOscillator creates a streamer that plays wave at freq for duration, then ends
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape, ok := waveforms[wave]
	if !ok {
		shape = waveforms[WaveSine]
	}
	return &tone{
		shape:     shape,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), t.remaining)
	for i := range samples[:n] {
		v := t.shape(t.phase)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.remaining -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// envelope scales a stream by a linear attack, flat sustain and linear release
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope wraps s with a linear attack and release, truncating it to duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain returns the multiplier at sample index pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case e.release > 0 && pos >= e.total-e.release:
		return math.Max(0, float64(e.total-pos)/float64(e.release))
	case e.attack > 0 && pos < e.attack:
		return float64(pos) / float64(e.attack)
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// math.Log2(0) is -Inf, so 0 volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// MergeFrequency is the merge tone pitch for the produced rank
func MergeFrequency(rank int) float64 {
	return constants.MergeSoundBaseFreq + float64(rank)*constants.MergeSoundRankStep
}

// CreateDropSound generates the short triangle blip played when a planet is released
func CreateDropSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.DropSoundFreq, constants.DropSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.DropSoundDuration, constants.DropSoundAttack, constants.DropSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundDrop))
}

// CreateMergeSound generates a sine ping, higher for bigger planets
func CreateMergeSound(cfg *AudioConfig, rank int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(MergeFrequency(rank), constants.MergeSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.MergeSoundDuration, constants.MergeSoundAttack, constants.MergeSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundMerge))
}

// CreateWinSound generates the low sawtooth rumble of a Black Hole forming
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.WinSoundFreq, constants.WinSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.WinSoundDuration, constants.WinSoundAttack, constants.WinSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundWin))
}

// CreateGameOverSound generates a two-note falling buzz
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.GameOverNote1Freq, constants.GameOverNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.GameOverNote1Duration, constants.GameOverSoundAttack, constants.GameOverNote1Release, rate)

	n2 := NewOscillator(constants.GameOverNote2Freq, constants.GameOverNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.GameOverNote2Duration, constants.GameOverSoundAttack, constants.GameOverNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(st SoundType, rank int, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundMerge:
		return CreateMergeSound(cfg, rank)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
