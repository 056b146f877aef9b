package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
)

const legendTitle = "EVOLUTION"

// LegendRenderer draws the evolution chart: every rank with its icon and both names
type LegendRenderer struct {
	painter *render.PlanetPainter
}

// NewLegendRenderer creates a legend renderer
func NewLegendRenderer(painter *render.PlanetPainter) *LegendRenderer {
	return &LegendRenderer{painter: painter}
}

// IsVisible follows the toggle and the space left by the well
func (r *LegendRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.ShowLegend && ctx.Layout.LegendVisible
}

// Render fills the side panel. Entries take two rows with a painted icon when the panel is
// tall enough, one row with a colour glyph otherwise
func (r *LegendRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	x0 := l.LegendX
	top := l.FieldTop
	rows := l.FieldRows
	if rows <= 0 {
		return
	}

	buf.FillPixels(x0, top*2, l.ScreenW-1, (top+rows)*2-1, render.RgbHUDBg)
	buf.DrawString(x0+2, top, legendTitle, render.RgbHUDLabel, tcell.AttrBold)

	entryRows := 1
	if rows-2 >= planet.Count*2 {
		entryRows = 2
	}
	textWidth := constants.LegendWidth - 6

	y := top + 2
	for _, def := range planet.All() {
		if y+entryRows-1 >= top+rows {
			break
		}
		if entryRows == 2 {
			r.painter.Paint(buf, float64(x0+2)+0.5, float64(y*2)+2, 1.6, def.ID, 0)
		} else {
			glyphColor := r.painter.Color(def.ID)
			if def.ID == planet.BlackHole {
				glyphColor = render.RgbBlackHoleRim
			}
			buf.SetText(x0+2, y, PlanetGlyph, glyphColor, 0)
		}

		fg := render.RgbText
		if def.ID == ctx.BestRank {
			fg = render.RgbScore
		}
		buf.DrawString(x0+5, y, render.Truncate(def.Name, textWidth), fg, 0)
		if entryRows == 2 {
			buf.DrawString(x0+5, y+1, render.Truncate(def.LocalName, textWidth), render.RgbTextDim, 0)
		} else {
			used := render.StringWidth(def.Name) + 1
			if rest := textWidth - used; rest > 2 {
				buf.DrawString(x0+5+used, y, render.Truncate(def.LocalName, rest), render.RgbTextDim, 0)
			}
		}
		y += entryRows
	}
}
