package physics

import (
	"math"

	"github.com/lixenwraith/singularity/constants"
)

// ClampDropX keeps a drop far enough from the walls for the largest spawnable planet
func ClampDropX(x float64) float64 {
	return clamp(x, constants.DropMargin, constants.FieldWidth-constants.DropMargin)
}

// ClampPointerX keeps the pointer inside the well
func ClampPointerX(x float64) float64 {
	return clamp(x, constants.PointerMargin, constants.FieldWidth-constants.PointerMargin)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
