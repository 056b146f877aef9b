package renderers

import (
	"math"

	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/render"
)

// DeathLineRenderer draws the dashed danger line and its caption
type DeathLineRenderer struct {
	lineY float64
}

// NewDeathLineRenderer creates a renderer for the line at logical y
func NewDeathLineRenderer(lineY float64) *DeathLineRenderer {
	return &DeathLineRenderer{lineY: lineY}
}

// Render draws the line across the well with the caption just above it
func (r *DeathLineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.Scale == 0 {
		return
	}
	x0, py := l.ToPixel(0, r.lineY)
	x1, _ := l.ToPixel(constants.FieldWidth, r.lineY)
	buf.HLine(int(math.Floor(x0)), int(math.Ceil(x1))-1, int(math.Floor(py)), render.RgbDangerLine,
		constants.DashLength, constants.DashGap)

	cx, cy := l.ToCell(5, r.lineY)
	if row := cy - 1; row >= l.FieldTop {
		fieldX, _, fieldX1, _ := l.FieldCells()
		caption := render.Truncate(constants.DangerLineText, fieldX1-fieldX+1)
		buf.DrawString(max(cx, fieldX), row, caption, render.RgbDangerText, 0)
	}
}
