// Package game is the composition root: it owns the round, the physics world and the event
// pipeline, exposes player intents as methods and advances everything once per frame
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/lixenwraith/singularity/audio"
	"github.com/lixenwraith/singularity/config"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/events"
	"github.com/lixenwraith/singularity/physics"
	"github.com/lixenwraith/singularity/planet"
	"github.com/lixenwraith/singularity/render"
	"github.com/lixenwraith/singularity/systems"
)

// Muter is implemented by players that support a runtime mute toggle
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Game holds all mutable game state. Owned by the main loop goroutine
type Game struct {
	cfg   *config.Config
	clock engine.TimeProvider
	round *engine.Round
	world *physics.World

	queue     *events.EventQueue
	router    *events.Router
	particles *systems.ParticleSystem
	player    audio.Player

	pointerX   float64
	lastDrop   time.Time
	dropped    bool
	showLegend bool
	frame      int64
}

// New creates a game in the menu with an empty world. player may be nil
func New(cfg *config.Config, clock engine.TimeProvider, rng *rand.Rand, player audio.Player) *Game {
	queue := events.NewEventQueue()
	particles := systems.NewParticleSystem(rng)

	g := &Game{
		cfg:        cfg,
		clock:      clock,
		round:      engine.NewRound(rng, cfg.WinBanner()),
		queue:      queue,
		router:     events.NewRouter(queue),
		particles:  particles,
		player:     player,
		pointerX:   constants.FieldWidth / 2,
		showLegend: cfg.Display.ShowLegend,
	}
	g.router.Register(systems.NewFeedbackSystem(player, particles))
	g.world = physics.NewWorld(g.worldSettings())
	return g
}

// worldSettings derives physics tuning from config
func (g *Game) worldSettings() physics.Settings {
	s := physics.DefaultSettings()
	s.Gravity = g.cfg.Physics.Gravity
	s.Iterations = uint(g.cfg.Physics.Iterations)
	s.SleepThreshold = g.cfg.Physics.SleepThreshold
	s.DeathLineY = g.cfg.Rules.DeathLineY
	s.SettledSpeed = g.cfg.Rules.SettledSpeed
	s.DeathCheckInterval = g.cfg.Rules.DeathCheckInterval
	s.SpawnGrace = g.cfg.SpawnGrace()
	return s
}

// resetWorld discards every body and starts from an empty well
func (g *Game) resetWorld(now time.Time) {
	if g.world != nil {
		g.world.Close()
	}
	g.world = physics.NewWorld(g.worldSettings())
	g.dropped = false
	g.lastDrop = time.Time{}
	g.push(events.EventWorldReset, nil, now)
	log.Debug("World reset")
}

func (g *Game) push(t events.EventType, payload any, now time.Time) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: now,
	})
}

// ===== INTENTS =====

// Start begins the first round from the menu
func (g *Game) Start() bool {
	if !g.round.Start() {
		return false
	}
	now := g.clock.Now()
	g.resetWorld(now)
	g.push(events.EventRoundStart, nil, now)
	log.Info("Round started", "next", g.round.NextRank())
	return true
}

// Restart tears down the world and begins a new round. Accepted from play and game over
func (g *Game) Restart() bool {
	if !g.round.Restart() {
		return false
	}
	now := g.clock.Now()
	g.resetWorld(now)
	g.push(events.EventRoundStart, nil, now)
	log.Info("Round restarted", "next", g.round.NextRank())
	return true
}

// ReturnToMenu abandons the round and empties the well
func (g *Game) ReturnToMenu() bool {
	if g.round.Phase() == engine.PhaseMenu {
		return false
	}
	g.round.ReturnToMenu()
	g.resetWorld(g.clock.Now())
	log.Info("Returned to menu")
	return true
}

// CanDrop reports whether a drop would be accepted now
func (g *Game) CanDrop() bool {
	return g.round.IsPlaying() && g.cooldownElapsed(g.clock.Now())
}

func (g *Game) cooldownElapsed(now time.Time) bool {
	return !g.dropped || now.Sub(g.lastDrop) >= g.cfg.DropCooldown()
}

// Drop releases the next planet at the pointer. Ignored outside play and during the cooldown
func (g *Game) Drop() bool {
	now := g.clock.Now()
	if !g.round.IsPlaying() || !g.cooldownElapsed(now) {
		return false
	}

	rank := g.round.TakeNextRank()
	x := physics.ClampDropX(g.pointerX)
	if g.world.AddPlanet(rank, cp.Vector{X: x, Y: constants.SpawnY}, now, constants.DropFriction) == nil {
		return false
	}
	g.lastDrop = now
	g.dropped = true

	g.push(events.EventDrop, &events.DropPayload{Rank: rank, X: x, Y: constants.SpawnY}, now)
	log.Debug("Drop", "rank", rank, "x", x)
	return true
}

// SetPointer moves the pointer to logical x, clamped to the well
func (g *Game) SetPointer(x float64) {
	g.pointerX = physics.ClampPointerX(x)
}

// MovePointer shifts the pointer by dx logical px
func (g *Game) MovePointer(dx float64) {
	g.SetPointer(g.pointerX + dx)
}

// ToggleLegend flips the evolution chart
func (g *Game) ToggleLegend() bool {
	g.showLegend = !g.showLegend
	return g.showLegend
}

// ToggleMute flips audio when the player supports it, returns the new muted state
func (g *Game) ToggleMute() bool {
	m, ok := g.player.(Muter)
	if !ok {
		return true
	}
	muted := m.ToggleMute()
	log.Info("Audio mute toggled", "muted", muted)
	return muted
}

// Muted reports whether sound is off
func (g *Game) Muted() bool {
	if m, ok := g.player.(Muter); ok {
		return m.IsMuted()
	}
	return g.player == nil
}

// ===== FRAME =====

// Tick advances one frame: a physics step while playing, score and round transitions from
// its results, then event dispatch and particle motion
func (g *Game) Tick() {
	now := g.clock.Now()
	g.frame++

	if g.round.IsPlaying() {
		res := g.world.Step(g.cfg.StepDelta(), now)

		for _, m := range res.Merges {
			won := g.round.AddMergeScore(m.Consumed, now)
			g.push(events.EventMerge, &events.MergePayload{
				Consumed: m.Consumed,
				Produced: m.Produced,
				X:        m.X,
				Y:        m.Y,
			}, now)
			log.Debug("Merge", "consumed", m.Consumed, "produced", m.Produced, "score", g.round.Score())

			if won {
				g.push(events.EventWin, &events.ScorePayload{Score: g.round.Score()}, now)
				log.Info("Black hole formed", "score", g.round.Score(), "wins", g.round.Wins())
			}
		}

		if res.Overflow && g.round.GameOver() {
			g.push(events.EventGameOver, &events.ScorePayload{Score: g.round.Score()}, now)
			log.Info("Game over", "score", g.round.Score(), "drops", g.round.Drops(),
				"merges", g.round.Merges(), "best", planet.MustGet(max(g.round.BestRank(), 0)).Name)
		}
	}

	g.router.DispatchAll()
	g.particles.Update()
}

// RenderContext snapshots the state for one frame
func (g *Game) RenderContext(layout render.Layout) render.RenderContext {
	now := g.clock.Now()
	return render.RenderContext{
		Now:        now,
		Frame:      g.frame,
		Layout:     layout,
		Phase:      g.round.Phase(),
		Score:      g.round.Score(),
		NextRank:   g.round.NextRank(),
		BestRank:   g.round.BestRank(),
		WinVisible: g.round.WinVisible(now),
		PointerX:   g.pointerX,
		CanDrop:    g.round.IsPlaying() && g.cooldownElapsed(now),
		Bodies:     g.world.Bodies(),
		Particles:  g.particles.Particles(),
		ShowLegend: g.showLegend,
		Muted:      g.Muted(),
	}
}

// Close releases the world
func (g *Game) Close() {
	if g.world != nil {
		g.world.Close()
	}
}

// ===== ACCESSORS =====

// Round exposes the round controller
func (g *Game) Round() *engine.Round { return g.round }

// World exposes the current physics world
func (g *Game) World() *physics.World { return g.world }

// PointerX returns the pointer in logical x
func (g *Game) PointerX() float64 { return g.pointerX }

// ShowLegend reports whether the legend is enabled
func (g *Game) ShowLegend() bool { return g.showLegend }

// Particles exposes the particle system
func (g *Game) Particles() *systems.ParticleSystem { return g.particles }
