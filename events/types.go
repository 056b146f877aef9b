package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart signals a fresh active round
	// Trigger: start or restart command | Payload: nil
	EventRoundStart EventType = iota

	// EventDrop signals a planet released into the well
	// Trigger: accepted drop | Consumer: FeedbackSystem (sound) | Payload: *DropPayload
	EventDrop

	// EventMerge signals two equal planets combined
	// Trigger: World.Step merge resolution
	// Consumer: FeedbackSystem (sound, particles) | Payload: *MergePayload
	EventMerge

	// EventWin signals a Black Hole formed
	// Trigger: merge producing the terminal rank | Consumer: FeedbackSystem | Payload: *ScorePayload
	EventWin

	// EventGameOver signals a settled planet above the death line
	// Trigger: World.Step death line scan | Consumer: FeedbackSystem | Payload: *ScorePayload
	EventGameOver

	// EventWorldReset signals the physics world was discarded
	// Trigger: restart, return to menu | Consumer: FeedbackSystem (clears particles) | Payload: nil
	EventWorldReset
)

var eventNames = map[EventType]string{
	EventRoundStart: "round_start",
	EventDrop:       "drop",
	EventMerge:      "merge",
	EventWin:        "win",
	EventGameOver:   "game_over",
	EventWorldReset: "world_reset",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
