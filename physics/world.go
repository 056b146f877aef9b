// Package physics owns the cp space the planets live in. Integration, collision detection
// and sleeping are left to cp; this package adds the walls, the merge rule and the death line scan
package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/planet"
)

// CollisionPlanet is the cp collision type shared by every planet shape
const CollisionPlanet cp.CollisionType = 1

// Settings tunes a World
type Settings struct {
	Gravity            float64 // px/s², positive pulls toward the floor
	Iterations         uint
	SleepThreshold     float64 // seconds
	DeathLineY         float64
	SettledSpeed       float64 // px/s
	DeathCheckInterval int     // steps between scans
	SpawnGrace         time.Duration
}

// DefaultSettings returns the built-in tuning
func DefaultSettings() Settings {
	return Settings{
		Gravity:            constants.Gravity,
		Iterations:         constants.SolverIterations,
		SleepThreshold:     constants.SleepTimeThreshold,
		DeathLineY:         constants.DeathLineY,
		SettledSpeed:       constants.SettledSpeed,
		DeathCheckInterval: constants.DeathCheckInterval,
		SpawnGrace:         constants.SpawnGrace,
	}
}

// Body is one live planet
type Body struct {
	ID        uint64
	Rank      int
	CreatedAt time.Time

	body    *cp.Body
	shape   *cp.Shape
	removed bool
}

// Position returns the body centre
func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// Speed returns the linear speed in px/s
func (b *Body) Speed() float64 {
	return b.body.Velocity().Length()
}

// Angle returns the rotation in radians
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// BodyState is a render snapshot of one body
type BodyState struct {
	ID    uint64
	Rank  int
	X, Y  float64
	Angle float64
}

// MergeResult describes one resolved merge
type MergeResult struct {
	Consumed int
	Produced int
	X, Y     float64
	Body     *Body
}

// StepResult is everything one Step produced
type StepResult struct {
	Merges []MergeResult
	// Checked is set on steps that ran the death line scan
	Checked  bool
	Overflow bool
	Culprit  *Body
}

type contact struct {
	a, b *Body
}

// World is a cp space with walls and planet bookkeeping. Not safe for concurrent use
type World struct {
	settings Settings
	space    *cp.Space
	walls    []*cp.Shape

	live     []*Body
	contacts []contact
	nextID   uint64
	steps    int
	closed   bool
}

// NewWorld creates the space, the floor and both side walls
func NewWorld(settings Settings) *World {
	if settings.DeathCheckInterval <= 0 {
		settings.DeathCheckInterval = constants.DeathCheckInterval
	}
	if settings.Iterations == 0 {
		settings.Iterations = constants.SolverIterations
	}

	space := cp.NewSpace()
	space.Iterations = settings.Iterations
	space.SetGravity(cp.Vector{X: 0, Y: settings.Gravity})
	space.SleepTimeThreshold = settings.SleepThreshold
	space.SetCollisionSlop(constants.CollisionSlop)

	w := &World{
		settings: settings,
		space:    space,
	}
	w.addWalls()

	handler := space.NewCollisionHandler(CollisionPlanet, CollisionPlanet)
	handler.BeginFunc = w.beginContact

	return w
}

// addWalls places thick segments just outside the field so their inner faces sit on the edges
func (w *World) addWalls() {
	const half = constants.WallThickness / 2
	width, height := constants.FieldWidth, constants.FieldHeight

	segments := [][2]cp.Vector{
		{{X: -constants.WallThickness, Y: height + half}, {X: width + constants.WallThickness, Y: height + half}},
		{{X: -half, Y: -height}, {X: -half, Y: height + half}},
		{{X: width + half, Y: -height}, {X: width + half, Y: height + half}},
	}

	for _, seg := range segments {
		shape := w.space.AddShape(cp.NewSegment(w.space.StaticBody, seg[0], seg[1], half))
		shape.SetElasticity(constants.WallElasticity)
		shape.SetFriction(constants.WallFriction)
		w.walls = append(w.walls, shape)
	}
}

// beginContact records equal-rank pairs; the space is locked here so nothing is removed yet
func (w *World) beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	pa, okA := a.UserData.(*Body)
	pb, okB := b.UserData.(*Body)
	if okA && okB && pa != pb && pa.Rank == pb.Rank {
		w.contacts = append(w.contacts, contact{a: pa, b: pb})
	}
	return true
}

// AddPlanet creates a body of rank centred at pos. Returns nil for an unknown rank or a closed world
func (w *World) AddPlanet(rank int, pos cp.Vector, now time.Time, friction float64) *Body {
	if w.closed {
		return nil
	}
	p, ok := planet.Get(rank)
	if !ok {
		return nil
	}

	mass := constants.PlanetDensity * math.Pi * p.Radius * p.Radius
	body := w.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, p.Radius, cp.Vector{})))
	body.SetPosition(pos)

	shape := w.space.AddShape(cp.NewCircle(body, p.Radius, cp.Vector{}))
	shape.SetElasticity(constants.PlanetElasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(CollisionPlanet)

	w.nextID++
	b := &Body{
		ID:        w.nextID,
		Rank:      rank,
		CreatedAt: now,
		body:      body,
		shape:     shape,
	}
	body.UserData = b
	w.live = append(w.live, b)
	return b
}

// Step advances the space by dt seconds, resolves the merges recorded during the step and
// runs the death line scan every DeathCheckInterval steps
func (w *World) Step(dt float64, now time.Time) StepResult {
	var res StepResult
	if w.closed {
		return res
	}

	w.contacts = w.contacts[:0]
	w.space.Step(dt)
	res.Merges = w.resolve(w.contacts, now)

	w.steps++
	if w.steps >= w.settings.DeathCheckInterval {
		w.steps = 0
		res.Checked = true
		res.Culprit = w.scanDeathLine(now)
		res.Overflow = res.Culprit != nil
	}
	return res
}

// remove detaches b from the space. Safe to call once per body outside a step
func (w *World) remove(b *Body) {
	if b.removed {
		return
	}
	b.removed = true
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.body.UserData = nil

	for i, lb := range w.live {
		if lb == b {
			w.live = append(w.live[:i], w.live[i+1:]...)
			break
		}
	}
}

// scanDeathLine returns the first body that has outlived the spawn grace and rests above the line
func (w *World) scanDeathLine(now time.Time) *Body {
	for _, b := range w.live {
		if now.Sub(b.CreatedAt) < w.settings.SpawnGrace {
			continue
		}
		if b.Position().Y < w.settings.DeathLineY && b.Speed() < w.settings.SettledSpeed {
			return b
		}
	}
	return nil
}

// Bodies returns a snapshot of every live planet in creation order
func (w *World) Bodies() []BodyState {
	out := make([]BodyState, 0, len(w.live))
	for _, b := range w.live {
		pos := b.Position()
		out = append(out, BodyState{
			ID:    b.ID,
			Rank:  b.Rank,
			X:     pos.X,
			Y:     pos.Y,
			Angle: b.Angle(),
		})
	}
	return out
}

// Count returns the number of live planets
func (w *World) Count() int {
	return len(w.live)
}

// Closed reports whether Close has run
func (w *World) Closed() bool {
	return w.closed
}

// Close removes every body and wall and drops the space. Further calls are no-ops
func (w *World) Close() {
	if w.closed {
		return
	}
	for len(w.live) > 0 {
		w.remove(w.live[len(w.live)-1])
	}
	for _, s := range w.walls {
		w.space.RemoveShape(s)
	}
	w.walls = nil
	w.contacts = nil
	w.space = nil
	w.closed = true
}
