package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
)

// PlanetsRenderer draws every live body with its texture and, when it fits, its label
type PlanetsRenderer struct {
	painter *render.PlanetPainter
}

// NewPlanetsRenderer creates a planets renderer
func NewPlanetsRenderer(painter *render.PlanetPainter) *PlanetsRenderer {
	return &PlanetsRenderer{painter: painter}
}

// Render paints bodies in creation order, labels last so no later disc covers them
func (r *PlanetsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.Scale == 0 {
		return
	}

	for _, b := range ctx.Bodies {
		def, ok := planet.Get(b.Rank)
		if !ok {
			continue
		}
		cx, cy := l.ToPixel(b.X, b.Y)
		r.painter.Paint(buf, cx, cy, l.Pixels(def.Radius), b.Rank, b.Angle)
	}

	for _, b := range ctx.Bodies {
		def, ok := planet.Get(b.Rank)
		if !ok {
			continue
		}
		drawLabel(buf, l, b.X, b.Y, def, r.painter.TextColor(def.ID))
	}
}

// drawLabel centres the rank label on the body when the disc is wide enough to hold it
func drawLabel(buf *render.RenderBuffer, l render.Layout, x, y float64, def planet.Planet, fg render.RGB) {
	diameter := int(math.Floor(l.Pixels(def.Radius) * 2))
	width := render.StringWidth(def.Label)
	if diameter < constants.MinLabelDiameter || width > diameter-1 {
		return
	}
	cx, cy := l.ToCell(x, y)
	buf.DrawString(cx-width/2, cy, def.Label, fg, tcell.AttrBold)
}
