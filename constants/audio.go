package constants

import "time"

// Audio Engine
const (
	// DefaultSampleRate is the speaker sample rate
	DefaultSampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Drop Sound Timing
const (
	DropSoundFreq     = 400.0
	DropSoundDuration = 100 * time.Millisecond
	DropSoundAttack   = 5 * time.Millisecond
	DropSoundRelease  = 80 * time.Millisecond
)

// Merge Sound Timing, pitch rises with the produced rank
const (
	MergeSoundBaseFreq = 200.0
	MergeSoundRankStep = 50.0
	MergeSoundDuration = 100 * time.Millisecond
	MergeSoundAttack   = 5 * time.Millisecond
	MergeSoundRelease  = 80 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundFreq     = 100.0
	WinSoundDuration = 500 * time.Millisecond
	WinSoundAttack   = 10 * time.Millisecond
	WinSoundRelease  = 400 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNote1Freq     = 220.0
	GameOverNote2Freq     = 110.0
	GameOverNote1Duration = 150 * time.Millisecond
	GameOverNote2Duration = 350 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverNote1Release  = 60 * time.Millisecond
	GameOverNote2Release  = 300 * time.Millisecond
)
