package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
)

// Backdrop dimming per screen
const (
	menuDim     = 0.6
	gameOverDim = 0.8
)

// OverlayRenderer draws the title menu, the game over screen and the win banner
type OverlayRenderer struct {
	painter *render.PlanetPainter
}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer(painter *render.PlanetPainter) *OverlayRenderer {
	return &OverlayRenderer{painter: painter}
}

// IsVisible is true outside plain play
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Phase != engine.PhasePlaying || ctx.WinVisible
}

// Render dispatches on phase
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	switch ctx.Phase {
	case engine.PhaseMenu:
		r.renderMenu(ctx, buf)
	case engine.PhaseGameOver:
		r.renderGameOver(ctx, buf)
	case engine.PhasePlaying:
		r.renderWinBanner(ctx, buf)
	}
}

func (r *OverlayRenderer) renderMenu(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	dimField(buf, l, menuDim)

	x, w := l.FieldLeft, l.FieldCols
	y := l.FieldTop + l.FieldRows/2 - 3

	// Title gradient, one colour step per rune
	title := []rune(constants.TitleText)
	col := render.CenterX(x, w, constants.TitleText)
	for i, ch := range title {
		t := 0.0
		if len(title) > 1 {
			t = float64(i) / float64(len(title)-1)
		}
		buf.SetText(col, y, ch, render.Mix(render.RgbTitleFrom, render.RgbTitleTo, t), tcell.AttrBold)
		col += render.StringWidth(string(ch))
	}

	tagline := render.Truncate(constants.TaglineText, w-2)
	buf.DrawString(render.CenterX(x, w, tagline), y+2, tagline, render.RgbHUDLabel, 0)

	preview := strings.Repeat(string(PlanetGlyph)+" ", constants.MenuPreviewRanks) + "…"
	col = render.CenterX(x, w, preview)
	for i, p := range previewRanks() {
		buf.SetText(col+i*2, y+4, PlanetGlyph, r.painter.Color(p.ID), 0)
	}
	buf.SetText(col+constants.MenuPreviewRanks*2, y+4, '…', render.RgbTextDim, 0)

	hint := render.Truncate(constants.StartHint, w-2)
	buf.DrawString(render.CenterX(x, w, hint), y+6, hint, render.RgbText, tcell.AttrBold)
}

func (r *OverlayRenderer) renderGameOver(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	dimField(buf, l, gameOverDim)

	x, w := l.FieldLeft, l.FieldCols
	y := l.FieldTop + l.FieldRows/2 - 3

	buf.DrawString(render.CenterX(x, w, constants.GameOverText), y, constants.GameOverText, render.RgbGameOver, tcell.AttrBold)
	buf.DrawString(render.CenterX(x, w, constants.FinalScoreLabel), y+2, constants.FinalScoreLabel, render.RgbText, 0)

	score := FormatScore(ctx.Score)
	buf.DrawString(render.CenterX(x, w, score), y+3, score, render.RgbScore, tcell.AttrBold)

	hint := render.Truncate(constants.RestartHint, w-2)
	buf.DrawString(render.CenterX(x, w, hint), y+5, hint, render.RgbTextDim, 0)
}

func (r *OverlayRenderer) renderWinBanner(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.WinVisible {
		return
	}
	l := ctx.Layout
	x, w := l.FieldLeft, l.FieldCols
	y := l.FieldTop

	banner := " " + constants.WinText + " "
	buf.DrawStringBg(render.CenterX(x, w, banner), y, banner, render.RgbBannerText, render.RgbBannerBg, tcell.AttrBold)
	buf.DrawStringBg(render.CenterX(x, w, constants.WinTextLocal), y+1, constants.WinTextLocal,
		render.RgbBannerLocal, render.RGBBlack, tcell.AttrBold)
}

// dimField darkens the pixels of the field area and the legend
func dimField(buf *render.RenderBuffer, l render.Layout, alpha float64) {
	for py := l.FieldTop * 2; py < (l.FieldTop+l.FieldRows)*2; py++ {
		for px := 0; px < l.ScreenW; px++ {
			buf.BlendPixel(px, py, render.RGBBlack, alpha)
		}
	}
}

// previewRanks lists the ranks shown on the title screen
func previewRanks() []planet.Planet {
	return planet.All()[:constants.MenuPreviewRanks]
}
