package systems

import (
	"math/rand"

	"github.com/lixenwraith/singularity/constants"
)

// Particle is one cosmetic spark in logical pixel space
type Particle struct {
	X, Y   float64
	VX, VY float64 // px per frame
	Life   float64 // 1 at spawn, removed at 0
	Size   float64 // radius in px
	Rank   int     // colour source
}

// ParticleSystem owns the live merge bursts
type ParticleSystem struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty system drawing randomness from rng
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		rng:       rng,
		particles: make([]Particle, 0, constants.MergeParticleCount*4),
	}
}

// Burst spawns a ring of sparks coloured after rank. Oldest sparks are dropped past the cap
func (s *ParticleSystem) Burst(x, y float64, rank int) {
	for i := 0; i < constants.MergeParticleCount; i++ {
		s.particles = append(s.particles, Particle{
			X:    x,
			Y:    y,
			VX:   (s.rng.Float64()*2 - 1) * constants.ParticleSpeed,
			VY:   (s.rng.Float64()*2 - 1) * constants.ParticleSpeed,
			Life: 1.0,
			Size: constants.ParticleMinSize + s.rng.Float64()*(constants.ParticleMaxSize-constants.ParticleMinSize),
			Rank: rank,
		})
	}
	if over := len(s.particles) - constants.MaxParticles; over > 0 {
		s.particles = append(s.particles[:0], s.particles[over:]...)
	}
}

// Update advances one frame and compacts expired sparks in place
func (s *ParticleSystem) Update() {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= constants.ParticleDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.particles = live
}

// Particles returns a copy for rendering
func (s *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Len returns the live spark count
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Clear drops every spark
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
