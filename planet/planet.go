// Package planet holds the static rank table: eleven bodies ordered by radius and score,
// from cosmic dust up to the terminal Black Hole
package planet

import (
	"math/rand"

	"github.com/lixenwraith/singularity/constants"
)

// Planet is one rank definition
type Planet struct {
	ID        int
	Label     string
	Name      string
	LocalName string // Japanese name shown in the legend
	Radius    float64
	Color     string // hex
	TextColor string // hex
	Score     int
	HasRing   bool
}

// Rank ids
const (
	Dust = iota
	Asteroid
	Moon
	Earth
	Saturn
	GasGiant
	BrownDwarf
	Star
	RedGiant
	NeutronStar
	BlackHole
)

// Count is the number of ranks
const Count = BlackHole + 1

var table = [Count]Planet{
	{ID: Dust, Label: "Dust", Name: "Dust", LocalName: "宇宙ダスト", Radius: 15, Color: "#94a3b8", TextColor: "#000000", Score: 2},
	{ID: Asteroid, Label: "Ast", Name: "Asteroid", LocalName: "小惑星", Radius: 22, Color: "#a855f7", TextColor: "#ffffff", Score: 4},
	{ID: Moon, Label: "Moon", Name: "Moon", LocalName: "衛星", Radius: 30, Color: "#cbd5e1", TextColor: "#000000", Score: 8},
	{ID: Earth, Label: "Earth", Name: "Earth", LocalName: "地球", Radius: 38, Color: "#2563eb", TextColor: "#ffffff", Score: 16},
	{ID: Saturn, Label: "Saturn", Name: "Saturn", LocalName: "土星", Radius: 48, Color: "#4ade80", TextColor: "#000000", Score: 32, HasRing: true},
	{ID: GasGiant, Label: "Gas", Name: "Gas Giant", LocalName: "巨大ガス惑星", Radius: 60, Color: "#d97706", TextColor: "#ffffff", Score: 64},
	{ID: BrownDwarf, Label: "BD", Name: "Brown Dwarf", LocalName: "褐色矮星", Radius: 72, Color: "#78350f", TextColor: "#ffffff", Score: 128},
	{ID: Star, Label: "Star", Name: "Star", LocalName: "恒星", Radius: 85, Color: "#facc15", TextColor: "#000000", Score: 256},
	{ID: RedGiant, Label: "RG", Name: "Red Giant", LocalName: "赤色巨星", Radius: 98, Color: "#dc2626", TextColor: "#ffffff", Score: 512},
	{ID: NeutronStar, Label: "NS", Name: "Neutron Star", LocalName: "中性子星", Radius: 110, Color: "#60a5fa", TextColor: "#000000", Score: 1024},
	{ID: BlackHole, Label: "BH", Name: "Black Hole", LocalName: "ブラックホール", Radius: 125, Color: "#000000", TextColor: "#ffffff", Score: 2048},
}

// Get returns the definition for rank, false when out of range
func Get(rank int) (Planet, bool) {
	if rank < 0 || rank >= Count {
		return Planet{}, false
	}
	return table[rank], true
}

// MustGet panics on an invalid rank
func MustGet(rank int) Planet {
	p, ok := Get(rank)
	if !ok {
		panic("planet: rank out of range")
	}
	return p
}

// Next returns the rank formed by merging two planets of rank. False for the terminal rank
func Next(rank int) (Planet, bool) {
	if rank < 0 || IsTerminal(rank) {
		return Planet{}, false
	}
	return Get(rank + 1)
}

// IsTerminal reports whether rank is the Black Hole
func IsTerminal(rank int) bool {
	return rank == BlackHole
}

// IsSpawnable reports whether a drop can produce rank
func IsSpawnable(rank int) bool {
	return rank >= 0 && rank < constants.SpawnableRanks
}

// RandomSpawn picks a drop rank uniformly from the lowest spawnable ranks
func RandomSpawn(rng *rand.Rand) int {
	return rng.Intn(constants.SpawnableRanks)
}

// All returns a copy of the table in rank order
func All() []Planet {
	out := make([]Planet, Count)
	copy(out, table[:])
	return out
}
