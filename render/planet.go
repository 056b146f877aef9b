package render

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lixenwraith/singularity/planet"
)

// Noise parameters for the gas bands
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseSeed   = 7
)

type crater struct {
	x, y, r float64
}

var (
	asteroidCraters = []crater{{0.2, -0.2, 0.3}, {-0.4, 0.3, 0.2}}
	moonCraters     = []crater{{0, 0, 0.4}, {0.5, -0.4, 0.2}, {-0.3, 0.4, 0.25}}
)

// PlanetPainter rasterises ranks with their procedural textures, lighting, rings and glow
type PlanetPainter struct {
	noise  *perlin.Perlin
	colors [planet.Count]RGB
	text   [planet.Count]RGB
}

// NewPlanetPainter parses the rank colours once
func NewPlanetPainter() *PlanetPainter {
	p := &PlanetPainter{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, noiseSeed),
	}
	for _, def := range planet.All() {
		p.colors[def.ID] = Hex(def.Color)
		p.text[def.ID] = Hex(def.TextColor)
	}
	return p
}

// Color returns the base colour of rank
func (p *PlanetPainter) Color(rank int) RGB {
	if rank < 0 || rank >= planet.Count {
		return RGBBlack
	}
	return p.colors[rank]
}

// TextColor returns the label colour of rank
func (p *PlanetPainter) TextColor(rank int) RGB {
	if rank < 0 || rank >= planet.Count {
		return RGBWhite
	}
	return p.text[rank]
}

// Paint draws rank centred at pixel (cx, cy) with pixel radius r, rotated by angle
func (p *PlanetPainter) Paint(buf *RenderBuffer, cx, cy, r float64, rank int, angle float64) {
	if rank < 0 || rank >= planet.Count || r <= 0 {
		return
	}
	def := planet.MustGet(rank)
	base := p.colors[rank]

	if rank >= planet.Star {
		glow := base
		if rank == planet.BlackHole {
			glow = RgbBlackHoleRim
		}
		p.paintHalo(buf, cx, cy, r, glow, rank == planet.BlackHole)
	}
	if def.HasRing {
		p.paintRing(buf, cx, cy, r, angle)
	}

	rim := math.Max(0.08, 1.0/r)
	buf.ShadeCircle(cx, cy, r, angle, func(dx, dy, lx, ly float64) (RGB, float64) {
		c := p.texture(rank, base, dx, dy, r)
		c = shadow(c, lx, ly)
		if lx*lx+ly*ly > (1-rim)*(1-rim) {
			c = Blend(c, RGBWhite, 0.15)
		}
		return c, 1
	})

	// Stars tint themselves with a screen pass
	if rank >= planet.Star {
		buf.ScreenCircle(cx, cy, r*0.9, base, 0.35)
	}
}

// texture returns the unlit colour at rotated unit offset (dx, dy)
func (p *PlanetPainter) texture(rank int, base RGB, dx, dy, r float64) RGB {
	c := base
	switch rank {
	case planet.Dust:
		if inDisc(dx, dy, 0.3, -0.3, 0.4) {
			c = Blend(c, RGBWhite, 0.1)
		}

	case planet.Asteroid, planet.Moon:
		craters := asteroidCraters
		if rank == planet.Moon {
			craters = moonCraters
		}
		for _, cr := range craters {
			if inDisc(dx, dy, cr.x, cr.y, cr.r) {
				c = Blend(c, RGBBlack, 0.2)
			}
		}

	case planet.Earth:
		if inDisc(dx, dy, -0.4, -0.4, 0.5) || inDisc(dx, dy, 0.5, 0.3, 0.4) {
			c = RgbContinent
		}
		if inDisc(dx, dy, 0, -0.5, 0.4) || inDisc(dx, dy, -0.6, 0.2, 0.3) {
			c = Blend(c, RGBWhite, 0.4)
		}

	case planet.Saturn:
		if dy >= -0.2 && dy < 0.2 {
			c = Blend(c, RGBWhite, 0.1)
		} else if dy >= 0.4 && dy < 0.6 {
			c = Blend(c, RGBBlack, 0.1)
		}

	case planet.GasGiant:
		// Band edges wander with the noise so the stripes read as turbulent gas
		wy := dy + 0.08*p.noise.Noise2D(dx*3, dy*3)
		if (wy >= -0.5 && wy < -0.3) || (wy >= 0.1 && wy < 0.4) {
			c = Blend(c, RgbGasBand, 0.1)
		}
		ex, ey := (dx-0.3)/0.25, (dy-0.2)/0.15
		if ex*ex+ey*ey <= 1 {
			c = Blend(c, RgbGasSpot, 0.2)
		}

	case planet.BrownDwarf:
		if inDisc(dx, dy, 0.3, 0.3, 0.6) {
			c = Blend(c, RGBBlack, 0.3)
		}
		n := p.noise.Noise2D(dx*2, dy*6)
		c = Blend(c, RGBBlack, math.Max(0, n)*0.25)

	case planet.Star, planet.RedGiant, planet.NeutronStar:
		t := math.Hypot(dx, dy)
		if t < 0.4 {
			c = Blend(c, RgbStarCore, 0.8*(1-t/0.4))
		}

	case planet.BlackHole:
		d := math.Hypot(dx, dy)
		band := math.Max(0.05, 1.5/r)
		switch {
		case math.Abs(d-0.85) <= band:
			c = RgbBlackHoleRim
		case d < 0.85:
			c = RGBBlack
		}
	}
	return c
}

// shadow applies the fixed top-left light: clear near the highlight, darker toward the edge
func shadow(c RGB, lx, ly float64) RGB {
	t := math.Hypot(lx+0.3, ly+0.3) / 1.3
	var alpha float64
	switch {
	case t <= 0.3:
		alpha = 0
	case t <= 0.8:
		alpha = 0.2 * (t - 0.3) / 0.5
	default:
		alpha = 0.2 + 0.4*math.Min(1, (t-0.8)/0.2)
	}
	return Blend(c, RGBBlack, alpha)
}

func (p *PlanetPainter) paintRing(buf *RenderBuffer, cx, cy, r, angle float64) {
	rx, ry := r*1.8, r*0.4
	sin, cos := math.Sincos(-(angle + math.Pi/4))

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-rx)), int(math.Ceil(cy+rx))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			ox := float64(px) + 0.5 - cx
			oy := float64(py) + 0.5 - cy
			ex := (ox*cos - oy*sin) / rx
			ey := (ox*sin + oy*cos) / ry
			k := math.Sqrt(ex*ex + ey*ey)
			switch {
			case k >= 0.85 && k <= 1.1:
				buf.BlendPixel(px, py, RgbRingStroke, 0.6)
			case k < 0.85:
				buf.BlendPixel(px, py, RgbRingFill, 0.3)
			}
		}
	}
}

// paintHalo draws a soft glow fading out past the surface
func (p *PlanetPainter) paintHalo(buf *RenderBuffer, cx, cy, r float64, c RGB, wide bool) {
	spread := 0.25
	if wide {
		spread = 0.4
	}
	outer := r * (1 + spread)
	buf.ShadeCircle(cx, cy, outer, 0, func(_, _, lx, ly float64) (RGB, float64) {
		d := math.Hypot(lx, ly) * outer / r
		if d <= 1 {
			return c, 0
		}
		return c, 0.4 * (1 - (d-1)/spread)
	})
}

func inDisc(x, y, cx, cy, r float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
