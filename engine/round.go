package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/planet"
)

// Phase is the round state
type Phase int

const (
	PhaseMenu     Phase = iota // not started
	PhasePlaying               // active
	PhaseGameOver              // ended by the death line
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Round tracks phase, score and the pending drop rank
// Owned by the game goroutine, not safe for concurrent use
type Round struct {
	rng            *rand.Rand
	bannerDuration time.Duration

	phase    Phase
	score    int
	nextRank int
	bestRank int
	drops    int
	merges   int
	wins     int
	winUntil time.Time
}

// NewRound creates a round controller in the menu phase
func NewRound(rng *rand.Rand, bannerDuration time.Duration) *Round {
	r := &Round{
		rng:            rng,
		bannerDuration: bannerDuration,
	}
	r.reset()
	r.phase = PhaseMenu
	return r
}

// reset clears per-round counters and samples a fresh next rank
func (r *Round) reset() {
	r.score = 0
	r.drops = 0
	r.merges = 0
	r.wins = 0
	r.bestRank = -1
	r.winUntil = time.Time{}
	r.nextRank = planet.RandomSpawn(r.rng)
}

// Start moves the menu into an active round. Returns false outside the menu
func (r *Round) Start() bool {
	if r.phase != PhaseMenu {
		return false
	}
	r.reset()
	r.phase = PhasePlaying
	return true
}

// Restart begins a new active round from game over or mid-round. Returns false from the menu
func (r *Round) Restart() bool {
	if r.phase == PhaseMenu {
		return false
	}
	r.reset()
	r.phase = PhasePlaying
	return true
}

// ReturnToMenu abandons the round
func (r *Round) ReturnToMenu() {
	r.phase = PhaseMenu
	r.winUntil = time.Time{}
}

// GameOver ends an active round. Returns false if the round was not active
func (r *Round) GameOver() bool {
	if r.phase != PhasePlaying {
		return false
	}
	r.phase = PhaseGameOver
	return true
}

// TakeNextRank returns the pending drop rank and samples its replacement
func (r *Round) TakeNextRank() int {
	rank := r.nextRank
	r.nextRank = planet.RandomSpawn(r.rng)
	r.drops++
	if rank > r.bestRank {
		r.bestRank = rank
	}
	return rank
}

// AddMergeScore credits a merge that consumed two planets of rank consumed
// Returns true when the merge formed the terminal rank, which opens the win banner
func (r *Round) AddMergeScore(consumed int, now time.Time) bool {
	if r.phase != PhasePlaying {
		return false
	}
	p, ok := planet.Get(consumed)
	if !ok {
		return false
	}
	produced, ok := planet.Next(consumed)
	if !ok {
		return false
	}

	r.score += p.Score * constants.MergeScoreMultiplier
	r.merges++
	if produced.ID > r.bestRank {
		r.bestRank = produced.ID
	}

	if !planet.IsTerminal(produced.ID) {
		return false
	}
	r.score += constants.BlackHoleBonus
	r.wins++
	r.winUntil = now.Add(r.bannerDuration)
	return true
}

// WinVisible reports whether the win banner is still showing
func (r *Round) WinVisible(now time.Time) bool {
	return !r.winUntil.IsZero() && now.Before(r.winUntil)
}

// Phase returns the current round state
func (r *Round) Phase() Phase { return r.phase }

// IsPlaying reports whether drops and merges are accepted
func (r *Round) IsPlaying() bool { return r.phase == PhasePlaying }

// Score returns the accumulated score
func (r *Round) Score() int { return r.score }

// NextRank returns the rank the next drop will produce
func (r *Round) NextRank() int { return r.nextRank }

// BestRank returns the largest rank seen this round, -1 before the first drop
func (r *Round) BestRank() int { return r.bestRank }

// Drops returns the number of accepted drops this round
func (r *Round) Drops() int { return r.drops }

// Merges returns the number of scored merges this round
func (r *Round) Merges() int { return r.merges }

// Wins returns the number of Black Holes formed this round
func (r *Round) Wins() int { return r.wins }
