package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PlanetGlyph marks a rank colour in text rows
const PlanetGlyph = '●'

var scorePrinter = message.NewPrinter(language.English)

// FormatScore groups thousands: 12345 -> "12,345"
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

// HUDRenderer draws the top status row and the bottom controls hint
type HUDRenderer struct {
	painter *render.PlanetPainter
}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer(painter *render.PlanetPainter) *HUDRenderer {
	return &HUDRenderer{painter: painter}
}

// Render draws score, best rank and next planet; the hint row shows controls for the phase
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.Layout.ScreenW
	h := ctx.Layout.ScreenH
	if w <= 0 || h <= 0 {
		return
	}

	for x := 0; x < w; x++ {
		buf.SetTextBg(x, 0, ' ', render.RgbText, render.RgbHUDBg, 0)
	}

	x := 1
	x += buf.DrawStringBg(x, 0, "SCORE ", render.RgbHUDLabel, render.RgbHUDBg, 0)
	x += buf.DrawStringBg(x, 0, FormatScore(ctx.Score), render.RgbScore, render.RgbHUDBg, tcell.AttrBold)

	if best, ok := planet.Get(ctx.BestRank); ok && ctx.Phase != engine.PhaseMenu {
		x += 3
		x += buf.DrawStringBg(x, 0, "BEST ", render.RgbHUDLabel, render.RgbHUDBg, 0)
		buf.DrawStringBg(x, 0, best.Name, r.painter.Color(best.ID), render.RgbHUDBg, tcell.AttrBold)
	}

	// Right aligned: [MUTE] NEXT ● Label
	right := w - 1
	if next, ok := planet.Get(ctx.NextRank); ok && ctx.Phase != engine.PhaseMenu {
		right -= render.StringWidth(next.Label)
		buf.DrawStringBg(right, 0, next.Label, render.RgbText, render.RgbHUDBg, tcell.AttrBold)
		right -= 2
		buf.SetTextBg(right, 0, PlanetGlyph, r.painter.Color(next.ID), render.RgbHUDBg, 0)
		right -= 5
		buf.DrawStringBg(right, 0, "NEXT ", render.RgbHUDLabel, render.RgbHUDBg, 0)
	}
	if ctx.Muted {
		right -= 6
		buf.DrawStringBg(right, 0, "MUTE", render.RgbTextDim, render.RgbHUDBg, 0)
	}

	if h > constants.HUDHeight+1 {
		hint := constants.ControlsHint
		switch ctx.Phase {
		case engine.PhaseMenu:
			hint = constants.StartHint
		case engine.PhaseGameOver:
			hint = constants.RestartHint
		}
		buf.DrawString(1, h-1, render.Truncate(hint, w-2), render.RgbTextDim, 0)
	}
}
