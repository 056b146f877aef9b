package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundDrop     SoundType = iota // Planet released
	SoundMerge                     // Two planets combined, pitch follows rank
	SoundWin                       // Black Hole formed
	SoundGameOver                  // Death line crossed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundDrop:     "drop",
	SoundMerge:    "merge",
	SoundWin:      "win",
	SoundGameOver: "gameover",
}

// String returns the config name of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config name back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Player is the fire-and-forget sound sink used by game systems
type Player interface {
	Play(st SoundType, rank int) bool
}
