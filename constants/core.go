package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsStepHz is the fixed physics step rate, one step per frame
	PhysicsStepHz = 60

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256
)

// Event queue sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	// LogDir is the directory created for debug logs
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "singularity.log"

	// MaxLogSize triggers rotation of the debug log to a timestamped file
	MaxLogSize = 10 * 1024 * 1024
)
