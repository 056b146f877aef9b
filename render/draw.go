package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// CircleShader colours one pixel of a disc. dx, dy are the offsets from the centre in
// units of the radius, rotated by the disc angle; lx, ly are the unrotated offsets
type CircleShader func(dx, dy, lx, ly float64) (c RGB, alpha float64)

// ShadeCircle rasterises a disc centred at pixel (cx, cy) and applies shader to every pixel
// whose centre lies inside radius
func (b *RenderBuffer) ShadeCircle(cx, cy, radius, angle float64, shader CircleShader) {
	if radius <= 0 {
		return
	}
	sin, cos := math.Sincos(-angle)
	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			lx := (float64(px) + 0.5 - cx) / radius
			ly := (float64(py) + 0.5 - cy) / radius
			if lx*lx+ly*ly > 1 {
				continue
			}
			dx := lx*cos - ly*sin
			dy := lx*sin + ly*cos
			c, alpha := shader(dx, dy, lx, ly)
			b.BlendPixel(px, py, c, alpha)
		}
	}
}

// FillCircle paints a flat disc with alpha
func (b *RenderBuffer) FillCircle(cx, cy, radius float64, c RGB, alpha float64) {
	b.ShadeCircle(cx, cy, radius, 0, func(_, _, _, _ float64) (RGB, float64) {
		return c, alpha
	})
	// Sub-pixel discs still leave a mark
	if radius < 0.5 {
		b.BlendPixel(int(math.Floor(cx)), int(math.Floor(cy)), c, alpha)
	}
}

// ScreenCircle screen-blends a flat disc, lightening what is below
func (b *RenderBuffer) ScreenCircle(cx, cy, radius float64, c RGB, alpha float64) {
	for py := int(math.Floor(cy - radius)); py <= int(math.Ceil(cy+radius)); py++ {
		for px := int(math.Floor(cx - radius)); px <= int(math.Ceil(cx+radius)); px++ {
			lx := float64(px) + 0.5 - cx
			ly := float64(py) + 0.5 - cy
			if lx*lx+ly*ly <= radius*radius {
				b.ScreenPixel(px, py, c, alpha)
			}
		}
	}
}

// HLine draws a horizontal pixel line from px0 to px1 inclusive. dash and gap in pixels,
// gap 0 draws solid
func (b *RenderBuffer) HLine(px0, px1, py int, c RGB, dash, gap int) {
	period := dash + gap
	for px := px0; px <= px1; px++ {
		if gap > 0 && dash > 0 && (px-px0)%period >= dash {
			continue
		}
		b.SetPixel(px, py, c)
	}
}

// VLine blends a vertical pixel line
func (b *RenderBuffer) VLine(px, py0, py1 int, c RGB, alpha float64) {
	for py := py0; py <= py1; py++ {
		b.BlendPixel(px, py, c, alpha)
	}
}

// StringWidth returns the display width of s in columns
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w columns
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

// CenterX returns the column at which s is centred within [x, x+w)
func CenterX(x, w int, s string) int {
	return x + (w-StringWidth(s))/2
}
