package modes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/config"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/game"
	"github.com/lixenwraith/singularity/physics"
	"github.com/lixenwraith/singularity/render"
)

func newTestHandler(t *testing.T) (*InputHandler, *game.Game, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Physics.Gravity = 0
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	g := game.New(cfg, clock, rand.New(rand.NewSource(3)), nil)
	t.Cleanup(g.Close)

	layout := render.ComputeLayout(80, 40, false)
	h := NewInputHandler(g, func() render.Layout { return layout }, nil)
	return h, g, clock
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestExitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"q", runeKey('q')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t)
			if h.HandleEvent(tt.ev) {
				t.Errorf("%s did not request exit", tt.name)
			}
		})
	}
}

func TestStartAndDropKeys(t *testing.T) {
	h, g, clock := newTestHandler(t)

	// Drop keys are ignored in the menu
	h.HandleEvent(runeKey(' '))
	if g.World().Count() != 0 {
		t.Fatalf("drop from menu created %d bodies", g.World().Count())
	}

	if !h.HandleEvent(runeKey('s')) {
		t.Fatal("start key requested exit")
	}
	if g.Round().Phase() != engine.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Round().Phase())
	}

	h.HandleEvent(runeKey(' '))
	clock.Advance(constants.DropCooldown)
	h.HandleEvent(runeKey('j'))
	clock.Advance(constants.DropCooldown)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if g.World().Count() != 3 {
		t.Errorf("bodies = %d, want 3", g.World().Count())
	}
}

func TestEnterStartsFromMenu(t *testing.T) {
	h, g, _ := newTestHandler(t)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if g.Round().Phase() != engine.PhasePlaying {
		t.Errorf("phase = %v, want playing", g.Round().Phase())
	}
	if g.World().Count() != 0 {
		t.Errorf("enter from menu also dropped: %d bodies", g.World().Count())
	}
}

func TestPointerKeys(t *testing.T) {
	h, g, _ := newTestHandler(t)
	start := g.PointerX()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		dx   float64
	}{
		{"h", runeKey('h'), -constants.PointerStep},
		{"l", runeKey('l'), constants.PointerStep},
		{"H", runeKey('H'), -constants.PointerFineStep},
		{"L", runeKey('L'), constants.PointerFineStep},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), -constants.PointerStep},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), constants.PointerStep},
		{"shift-left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), -constants.PointerFineStep},
		{"shift-right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), constants.PointerFineStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.SetPointer(start)
			h.HandleEvent(tt.ev)
			if got := g.PointerX(); got != start+tt.dx {
				t.Errorf("pointer = %v, want %v", got, start+tt.dx)
			}
		})
	}
}

func TestRoundKeys(t *testing.T) {
	h, g, _ := newTestHandler(t)
	h.HandleEvent(runeKey('s'))
	h.HandleEvent(runeKey(' '))

	h.HandleEvent(runeKey('r'))
	if g.World().Count() != 0 || g.Round().Phase() != engine.PhasePlaying {
		t.Errorf("restart left %d bodies in phase %v", g.World().Count(), g.Round().Phase())
	}

	h.HandleEvent(runeKey('m'))
	if g.Round().Phase() != engine.PhaseMenu {
		t.Errorf("phase = %v after menu key, want menu", g.Round().Phase())
	}
}

func TestEnterRestartsAfterGameOver(t *testing.T) {
	h, g, _ := newTestHandler(t)
	h.HandleEvent(runeKey('s'))
	g.Round().GameOver()

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if g.Round().Phase() != engine.PhasePlaying {
		t.Errorf("phase = %v, want playing after restart", g.Round().Phase())
	}
}

func TestToggleKeys(t *testing.T) {
	h, g, _ := newTestHandler(t)

	legend := g.ShowLegend()
	h.HandleEvent(runeKey('?'))
	if g.ShowLegend() == legend {
		t.Error("? did not toggle the legend")
	}

	// No player: mute toggle is a no-op that must not panic
	h.HandleEvent(runeKey('M'))
	if !g.Muted() {
		t.Error("game without a player should stay muted")
	}
}

func TestMouseMovesPointerAndClicks(t *testing.T) {
	h, g, _ := newTestHandler(t)
	layout := render.ComputeLayout(80, 40, false)

	x0, _, x1, _ := layout.FieldCells()
	col := (x0 + x1) / 3
	h.HandleEvent(tcell.NewEventMouse(col, 10, tcell.ButtonNone, tcell.ModNone))
	if want := physics.ClampPointerX(layout.LogicalX(col)); g.PointerX() != want {
		t.Errorf("pointer = %v, want %v", g.PointerX(), want)
	}

	// Click in the menu starts the round
	h.HandleEvent(tcell.NewEventMouse(col, 10, tcell.Button1, tcell.ModNone))
	if g.Round().Phase() != engine.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Round().Phase())
	}
	h.HandleEvent(tcell.NewEventMouse(col, 10, tcell.ButtonNone, tcell.ModNone))

	// Press edge drops once, holding does not repeat
	h.HandleEvent(tcell.NewEventMouse(col, 10, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(col+1, 10, tcell.Button1, tcell.ModNone))
	if g.World().Count() != 1 {
		t.Errorf("bodies = %d, want 1", g.World().Count())
	}

	// Far outside the well the pointer clamps
	h.HandleEvent(tcell.NewEventMouse(0, 10, tcell.ButtonNone, tcell.ModNone))
	if g.PointerX() != constants.PointerMargin {
		t.Errorf("pointer = %v, want %v", g.PointerX(), constants.PointerMargin)
	}
}

func TestResizeCallback(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, engine.NewMockTimeProvider(time.Unix(0, 0)), rand.New(rand.NewSource(1)), nil)
	defer g.Close()

	resized := 0
	h := NewInputHandler(g, nil, func() { resized++ })
	if !h.HandleEvent(tcell.NewEventResize(100, 40)) {
		t.Fatal("resize requested exit")
	}
	if resized != 1 {
		t.Errorf("resize callback ran %d times, want 1", resized)
	}

	// Without a layout source mouse motion is ignored
	before := g.PointerX()
	h.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	if g.PointerX() != before {
		t.Errorf("pointer moved to %v without a layout", g.PointerX())
	}
}
