package render

import (
	"math"

	"github.com/lixenwraith/singularity/constants"
)

// Layout maps the logical field onto the terminal. The pixel grid is one pixel per column
// and two per row (upper half block), so pixel (px, py) lives in cell (px, py/2)
type Layout struct {
	ScreenW, ScreenH int

	// Cell rectangle reserved for the well
	FieldLeft, FieldTop  int
	FieldCols, FieldRows int

	// Scale is screen pixels per logical px. OriginX/OriginY are the screen pixel
	// coordinates of logical (0, 0)
	Scale   float64
	OriginX float64
	OriginY float64

	LegendVisible bool
	LegendX       int
}

// ComputeLayout fits the field into a w x h terminal. The legend is placed on the right
// when requested and the well keeps at least MinFieldColumns
func ComputeLayout(w, h int, legend bool) Layout {
	l := Layout{ScreenW: w, ScreenH: h}

	l.FieldTop = constants.HUDHeight
	l.FieldRows = h - constants.HUDHeight - 1 // bottom row holds the controls hint
	if l.FieldRows < 0 {
		l.FieldRows = 0
	}
	l.FieldCols = w
	if legend && w-constants.LegendWidth >= constants.MinFieldColumns {
		l.LegendVisible = true
		l.FieldCols = w - constants.LegendWidth
		l.LegendX = l.FieldCols
	}

	pw := float64(l.FieldCols)
	ph := float64(l.FieldRows * 2)
	l.Scale = math.Max(0, math.Min(pw/constants.FieldWidth, ph/constants.FieldHeight))

	l.OriginX = float64(l.FieldLeft) + (pw-constants.FieldWidth*l.Scale)/2
	l.OriginY = float64(l.FieldTop*2) + (ph-constants.FieldHeight*l.Scale)/2
	return l
}

// ToPixel converts a logical point to screen pixel coordinates
func (l Layout) ToPixel(x, y float64) (float64, float64) {
	return l.OriginX + x*l.Scale, l.OriginY + y*l.Scale
}

// ToCell converts a logical point to the cell containing it
func (l Layout) ToCell(x, y float64) (int, int) {
	px, py := l.ToPixel(x, y)
	return int(math.Floor(px)), int(math.Floor(py / 2))
}

// Pixels scales a logical length
func (l Layout) Pixels(d float64) float64 {
	return d * l.Scale
}

// LogicalX maps a terminal column back to logical x at the column centre
func (l Layout) LogicalX(cellX int) float64 {
	if l.Scale == 0 {
		return constants.FieldWidth / 2
	}
	return (float64(cellX) + 0.5 - l.OriginX) / l.Scale
}

// FieldCells returns the cell rectangle the scaled field covers
func (l Layout) FieldCells() (x0, y0, x1, y1 int) {
	x0, y0 = l.ToCell(0, 0)
	px1, py1 := l.ToPixel(constants.FieldWidth, constants.FieldHeight)
	x1 = int(math.Ceil(px1)) - 1
	y1 = int(math.Ceil(py1/2)) - 1
	return x0, y0, x1, y1
}
