package render

import (
	"time"

	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/physics"
	"github.com/lixenwraith/singularity/systems"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now   time.Time
	Frame int64

	Layout Layout

	// Round state
	Phase      engine.Phase
	Score      int
	NextRank   int
	BestRank   int
	WinVisible bool

	// Pointer in logical x, drop preview shown only when CanDrop
	PointerX float64
	CanDrop  bool

	Bodies    []physics.BodyState
	Particles []systems.Particle

	ShowLegend bool
	Muted      bool
}
