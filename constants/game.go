package constants

import "time"

// Playfield geometry in logical pixels. Physics runs in this space, the renderer scales it
const (
	FieldWidth    = 400.0
	FieldHeight   = 600.0
	WallThickness = 50.0

	// DeathLineY is the line above which a settled planet ends the round (y grows downward)
	DeathLineY = 100.0

	// SpawnY is the vertical position of a dropped planet
	SpawnY = 50.0

	// DropMargin clamps the drop position away from the walls
	DropMargin = 50.0

	// PointerMargin clamps pointer tracking inside the well
	PointerMargin = 10.0

	// PointerStep is the horizontal pointer movement for one key press
	PointerStep = 10.0

	// PointerFineStep is the shifted pointer movement
	PointerFineStep = 2.0
)

// Round rules
const (
	// DropCooldown is the minimum interval between two accepted drops
	DropCooldown = 600 * time.Millisecond

	// SpawnGrace exempts young planets from the death line check
	SpawnGrace = 1000 * time.Millisecond

	// WinBannerDuration is how long the win banner stays visible
	WinBannerDuration = 5 * time.Second

	// DeathCheckInterval is the number of physics steps between death line scans
	DeathCheckInterval = 10

	// SettledSpeed is the speed (px/s) under which a planet counts as resting
	SettledSpeed = 12.0

	// BlackHoleBonus is added once per Black Hole formed
	BlackHoleBonus = 5000

	// MergeScoreMultiplier scales the consumed rank's score on merge
	MergeScoreMultiplier = 2

	// SpawnableRanks is the number of lowest ranks a drop can produce
	SpawnableRanks = 4
)

// Physics material and world tuning
const (
	// Gravity in px/s², matches 1g at the logical scale
	Gravity = 1000.0

	// SolverIterations is the cp space iteration count
	SolverIterations = 20

	// SleepTimeThreshold puts idle bodies to sleep after this many seconds
	SleepTimeThreshold = 0.5

	// CollisionSlop is the allowed overlap between shapes in px
	CollisionSlop = 0.5

	PlanetElasticity = 0.2
	DropFriction     = 0.005
	MergeFriction    = 0.1
	PlanetDensity    = 0.002
	WallElasticity   = 1.0
	WallFriction     = 1.0
)

// Particles
const (
	// MergeParticleCount is the burst size on merge
	MergeParticleCount = 8

	// ParticleSpeed is the max per-axis velocity in px/frame
	ParticleSpeed = 5.0

	// ParticleDecay is the life lost per frame
	ParticleDecay = 0.02

	ParticleMinSize = 2.0
	ParticleMaxSize = 6.0

	// MaxParticles caps the live particle count
	MaxParticles = 512
)
