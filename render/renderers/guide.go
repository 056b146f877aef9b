package renderers

import (
	"math"

	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/physics"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
)

// guideTop is where the drop guide starts, in logical y
const guideTop = 20.0

// GuideRenderer shows the drop column and the next planet at the spawn point
type GuideRenderer struct {
	painter *render.PlanetPainter
}

// NewGuideRenderer creates a guide renderer
func NewGuideRenderer(painter *render.PlanetPainter) *GuideRenderer {
	return &GuideRenderer{painter: painter}
}

// IsVisible hides the guide during the cooldown and outside play
func (r *GuideRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Phase == engine.PhasePlaying && ctx.CanDrop
}

// Render draws the faint guide line and the preview planet
func (r *GuideRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.Scale == 0 {
		return
	}
	x := physics.ClampDropX(ctx.PointerX)

	px, pyTop := l.ToPixel(x, guideTop)
	_, pyBottom := l.ToPixel(x, constants.FieldHeight)
	buf.VLine(int(math.Floor(px)), int(math.Floor(pyTop)), int(math.Ceil(pyBottom))-1, render.RGBWhite, 0.1)

	def, ok := planet.Get(ctx.NextRank)
	if !ok {
		return
	}
	cx, cy := l.ToPixel(x, constants.SpawnY)
	r.painter.Paint(buf, cx, cy, l.Pixels(def.Radius), def.ID, 0)
}
