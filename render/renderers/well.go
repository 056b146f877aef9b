package renderers

import (
	"math"

	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/render"
)

// WellRenderer fills the playfield and outlines the walls
type WellRenderer struct{}

// NewWellRenderer creates a well renderer
func NewWellRenderer() *WellRenderer {
	return &WellRenderer{}
}

// Render draws the well interior and its side and floor edges
func (r *WellRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.Scale == 0 {
		return
	}
	x0, y0 := l.ToPixel(0, 0)
	x1, y1 := l.ToPixel(constants.FieldWidth, constants.FieldHeight)

	px0, py0 := int(math.Floor(x0)), int(math.Floor(y0))
	px1, py1 := int(math.Ceil(x1))-1, int(math.Ceil(y1))-1

	buf.FillPixels(px0, py0, px1, py1, render.RgbWell)
	buf.FillPixels(px0-1, py0, px0-1, py1+1, render.RgbWallEdge)
	buf.FillPixels(px1+1, py0, px1+1, py1+1, render.RgbWallEdge)
	buf.FillPixels(px0-1, py1+1, px1+1, py1+1, render.RgbWallEdge)
}
