package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// UpperHalfBlock carries the top pixel in fg and the bottom pixel in bg
const UpperHalfBlock = '▀'

// Cell is a text cell written over the pixel layer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask

	set   bool
	hasBg bool
	cont  bool // right half of a wide rune
}

// RenderBuffer is a two-layer compositor: a pixel layer at twice the vertical resolution of
// the terminal and a text layer that overrides it cell by cell
type RenderBuffer struct {
	width  int // cells
	height int // cells
	pixels []RGB
	cells  []Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.pixels = make([]RGB, size*2)
	} else {
		b.cells = b.cells[:size]
		b.pixels = b.pixels[:size*2]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions in cells
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets pixels to the background and drops all text using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = RgbBackground
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *RenderBuffer) pixelInBounds(px, py int) bool {
	return px >= 0 && px < b.width && py >= 0 && py < b.height*2
}

// ===== PIXEL LAYER =====

// SetPixel writes an opaque pixel
func (b *RenderBuffer) SetPixel(px, py int, c RGB) {
	if !b.pixelInBounds(px, py) {
		return
	}
	b.pixels[py*b.width+px] = c
}

// BlendPixel alpha-blends c over the pixel
func (b *RenderBuffer) BlendPixel(px, py int, c RGB, alpha float64) {
	if !b.pixelInBounds(px, py) {
		return
	}
	idx := py*b.width + px
	b.pixels[idx] = Blend(b.pixels[idx], c, alpha)
}

// ScreenPixel applies a screen blend over the pixel
func (b *RenderBuffer) ScreenPixel(px, py int, c RGB, alpha float64) {
	if !b.pixelInBounds(px, py) {
		return
	}
	idx := py*b.width + px
	b.pixels[idx] = Screen(b.pixels[idx], c, alpha)
}

// Pixel returns the pixel colour, background when out of range
func (b *RenderBuffer) Pixel(px, py int) RGB {
	if !b.pixelInBounds(px, py) {
		return RgbBackground
	}
	return b.pixels[py*b.width+px]
}

// FillPixels fills a pixel rectangle, clipped
func (b *RenderBuffer) FillPixels(px0, py0, px1, py1 int, c RGB) {
	for py := max(py0, 0); py <= min(py1, b.height*2-1); py++ {
		for px := max(px0, 0); px <= min(px1, b.width-1); px++ {
			b.pixels[py*b.width+px] = c
		}
	}
}

// ===== TEXT LAYER =====

// SetText writes a rune over the pixels; the cell background is taken from the pixels below
func (b *RenderBuffer) SetText(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Attrs: attrs, set: true}
}

// SetTextBg writes a rune with an explicit background
func (b *RenderBuffer) SetTextBg(x, y int, r rune, fg, bg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs, set: true, hasBg: true}
}

// DrawString writes s from (x, y) honouring East Asian widths, returns the columns used
func (b *RenderBuffer) DrawString(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	return b.drawString(x, y, s, fg, RGB{}, false, attrs)
}

// DrawStringBg is DrawString with an explicit background
func (b *RenderBuffer) DrawStringBg(x, y int, s string, fg, bg RGB, attrs tcell.AttrMask) int {
	return b.drawString(x, y, s, fg, bg, true, attrs)
}

func (b *RenderBuffer) drawString(x, y int, s string, fg, bg RGB, hasBg bool, attrs tcell.AttrMask) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.inBounds(col, y) && (w == 1 || b.inBounds(col+1, y)) {
			b.cells[y*b.width+col] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs, set: true, hasBg: hasBg}
			if w == 2 {
				b.cells[y*b.width+col+1] = Cell{Fg: fg, Bg: bg, set: true, hasBg: hasBg, cont: true}
			}
		}
		col += w
	}
	return col - x
}

// Cell returns the text cell at (x, y) and whether text was written there
func (b *RenderBuffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	c := b.cells[y*b.width+x]
	return c, c.set
}

// ===== OUTPUT =====

// Resolve returns the final glyph and style for a cell
func (b *RenderBuffer) Resolve(x, y int) (rune, tcell.Style) {
	top := b.pixels[(2*y)*b.width+x]
	bottom := b.pixels[(2*y+1)*b.width+x]
	c := b.cells[y*b.width+x]

	if c.set {
		bg := c.Bg
		if !c.hasBg {
			bg = Average(top, bottom)
		}
		style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(bg.TCell()).Attributes(c.Attrs)
		return c.Rune, style
	}

	if top == bottom {
		return ' ', tcell.StyleDefault.Background(top.TCell())
	}
	return UpperHalfBlock, tcell.StyleDefault.Foreground(top.TCell()).Background(bottom.TCell())
}

// FlushToScreen writes the composed frame to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y*b.width+x].cont {
				continue
			}
			r, style := b.Resolve(x, y)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
