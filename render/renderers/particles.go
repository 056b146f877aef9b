package renderers

import (
	"github.com/lixenwraith/singularity/render"
)

// ParticlesRenderer draws merge sparks fading with their remaining life
type ParticlesRenderer struct {
	painter *render.PlanetPainter
}

// NewParticlesRenderer creates a particles renderer
func NewParticlesRenderer(painter *render.PlanetPainter) *ParticlesRenderer {
	return &ParticlesRenderer{painter: painter}
}

// Render draws each spark as a small disc
func (r *ParticlesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.Scale == 0 {
		return
	}
	for _, p := range ctx.Particles {
		cx, cy := l.ToPixel(p.X, p.Y)
		buf.FillCircle(cx, cy, l.Pixels(p.Size), r.painter.Color(p.Rank), p.Life)
	}
}
