package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/physics"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
	"github.com/lixenwraith/singularity/systems"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newPipeline(t *testing.T, w, h int) (*render.RenderOrchestrator, tcell.Screen) {
	screen := newTestScreen(t, w, h)
	o := render.NewRenderOrchestrator(screen)
	RegisterAll(o, constants.DeathLineY)
	return o, screen
}

func baseContext(o *render.RenderOrchestrator, phase engine.Phase) render.RenderContext {
	return render.RenderContext{
		Now:        time.Unix(0, 0),
		Layout:     o.Layout(true),
		Phase:      phase,
		NextRank:   planet.Moon,
		BestRank:   -1,
		PointerX:   constants.FieldWidth / 2,
		CanDrop:    true,
		ShowLegend: true,
	}
}

// rowText reads a screen row back as a string, skipping wide rune continuations
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, width := screen.GetContent(x, y)
		sb.WriteRune(r)
		if width == 2 {
			x++
		}
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

func TestMenuOverlay(t *testing.T) {
	o, screen := newPipeline(t, 120, 40)
	o.RenderFrame(baseContext(o, engine.PhaseMenu))

	if !screenContains(screen, constants.TitleText) {
		t.Error("title missing on menu")
	}
	if !screenContains(screen, "Start") {
		t.Error("start hint missing on menu")
	}
	if screenContains(screen, "NEXT") {
		t.Error("next planet shown before the round started")
	}
}

func TestPlayingHUD(t *testing.T) {
	o, screen := newPipeline(t, 120, 40)
	ctx := baseContext(o, engine.PhasePlaying)
	ctx.Score = 12345
	ctx.BestRank = planet.Earth
	o.RenderFrame(ctx)

	hud := rowText(screen, 0)
	if !strings.Contains(hud, "12,345") {
		t.Errorf("HUD %q missing grouped score", hud)
	}
	if !strings.Contains(hud, "NEXT") || !strings.Contains(hud, "Moon") {
		t.Errorf("HUD %q missing next planet", hud)
	}
	if !strings.Contains(hud, "Earth") {
		t.Errorf("HUD %q missing best rank", hud)
	}
	if screenContains(screen, constants.GameOverText) {
		t.Error("game over text while playing")
	}
	if !screenContains(screen, constants.DangerLineText) {
		t.Error("danger line caption missing")
	}
}

func TestGameOverOverlay(t *testing.T) {
	o, screen := newPipeline(t, 120, 40)
	ctx := baseContext(o, engine.PhaseGameOver)
	ctx.Score = 4096
	o.RenderFrame(ctx)

	if !screenContains(screen, constants.GameOverText) {
		t.Error("game over text missing")
	}
	if !screenContains(screen, "4,096") {
		t.Error("final score missing")
	}
}

func TestWinBanner(t *testing.T) {
	o, screen := newPipeline(t, 120, 40)
	ctx := baseContext(o, engine.PhasePlaying)
	ctx.WinVisible = true
	o.RenderFrame(ctx)

	if !screenContains(screen, constants.WinText) {
		t.Error("win banner missing")
	}
	if !screenContains(screen, constants.WinTextLocal) {
		t.Error("localized win banner missing")
	}

	ctx.WinVisible = false
	o.RenderFrame(ctx)
	if screenContains(screen, constants.WinText) {
		t.Error("win banner still shown after expiry")
	}
}

func TestLegendListsRanks(t *testing.T) {
	o, screen := newPipeline(t, 120, 40)
	o.RenderFrame(baseContext(o, engine.PhasePlaying))

	for _, def := range planet.All() {
		if !screenContains(screen, def.Name) {
			t.Errorf("legend missing %s", def.Name)
		}
	}
	if !screenContains(screen, "ブラックホール") {
		t.Error("legend missing localized names")
	}

	ctx := baseContext(o, engine.PhasePlaying)
	ctx.ShowLegend = false
	ctx.Layout = o.Layout(false)
	o.RenderFrame(ctx)
	if screenContains(screen, legendTitle) {
		t.Error("legend drawn while hidden")
	}
}

func TestPlanetsAndParticlesPaintField(t *testing.T) {
	o, _ := newPipeline(t, 120, 60)
	ctx := baseContext(o, engine.PhasePlaying)
	ctx.CanDrop = false
	ctx.Bodies = []physics.BodyState{{ID: 1, Rank: planet.NeutronStar, X: 200, Y: 450}}
	ctx.Particles = []systems.Particle{{X: 60, Y: 300, Life: 1, Size: 6, Rank: planet.Star}}
	o.RenderFrame(ctx)

	buf := o.Buffer()
	painter := render.NewPlanetPainter()
	l := ctx.Layout

	px, py := l.ToPixel(200, 450)
	if got := buf.Pixel(int(px), int(py)); got == render.RgbWell || got == render.RgbBackground {
		t.Errorf("planet centre pixel = %v, want painted", got)
	}

	px, py = l.ToPixel(60, 300)
	if got := buf.Pixel(int(px), int(py)); got != painter.Color(planet.Star) {
		t.Errorf("particle pixel = %v, want %v", got, painter.Color(planet.Star))
	}
}

func TestGuideFollowsCooldown(t *testing.T) {
	o, _ := newPipeline(t, 120, 60)
	ctx := baseContext(o, engine.PhasePlaying)
	l := ctx.Layout
	px, py := l.ToPixel(ctx.PointerX, constants.SpawnY)

	ctx.CanDrop = false
	o.RenderFrame(ctx)
	hidden := o.Buffer().Pixel(int(px), int(py))

	ctx.CanDrop = true
	o.RenderFrame(ctx)
	shown := o.Buffer().Pixel(int(px), int(py))

	if hidden == shown {
		t.Error("preview planet not drawn when a drop is allowed")
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTinyScreenDoesNotPanic(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {5, 2}, {10, 3}} {
		o, _ := newPipeline(t, size[0], size[1])
		for _, phase := range []engine.Phase{engine.PhaseMenu, engine.PhasePlaying, engine.PhaseGameOver} {
			ctx := baseContext(o, phase)
			ctx.Bodies = []physics.BodyState{{Rank: planet.BlackHole, X: 200, Y: 300}}
			ctx.WinVisible = true
			o.RenderFrame(ctx)
		}
	}
}
