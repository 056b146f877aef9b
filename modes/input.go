package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/game"
	"github.com/lixenwraith/singularity/render"
)

// InputHandler maps terminal events onto game intents
type InputHandler struct {
	game     *game.Game
	layout   func() render.Layout
	onResize func()

	buttons tcell.ButtonMask // last seen mouse buttons, for click edges
}

// NewInputHandler creates a new input handler. layout returns the current screen layout for
// mouse mapping; onResize may be nil
func NewInputHandler(g *game.Game, layout func() render.Layout, onResize func()) *InputHandler {
	return &InputHandler{
		game:     g,
		layout:   layout,
		onResize: onResize,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			h.onResize()
		}
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	fine := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		h.movePointer(-1, fine)
		return true
	case tcell.KeyRight:
		h.movePointer(1, fine)
		return true
	case tcell.KeyEnter:
		h.primary()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'h':
		h.movePointer(-1, false)
	case 'H':
		h.movePointer(-1, true)
	case 'l':
		h.movePointer(1, false)
	case 'L':
		h.movePointer(1, true)
	case ' ', 'j':
		h.game.Drop()
	case 's':
		h.game.Start()
	case 'r':
		h.game.Restart()
	case 'm':
		h.game.ReturnToMenu()
	case '?':
		h.game.ToggleLegend()
	case 'M':
		h.game.ToggleMute()
	}
	return true
}

// primary is enter or click: start from the menu, restart after game over, drop while playing
func (h *InputHandler) primary() {
	switch h.game.Round().Phase() {
	case engine.PhaseMenu:
		h.game.Start()
	case engine.PhaseGameOver:
		h.game.Restart()
	case engine.PhasePlaying:
		h.game.Drop()
	}
}

func (h *InputHandler) movePointer(dir float64, fine bool) {
	step := constants.PointerStep
	if fine {
		step = constants.PointerFineStep
	}
	h.game.MovePointer(dir * step)
}

// handleMouseEvent tracks the pointer and fires primary on a left button press edge
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	if h.layout != nil {
		h.game.SetPointer(h.layout().LogicalX(x))
	}

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if pressed {
		h.primary()
	}
}
