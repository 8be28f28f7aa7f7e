package game

import (
	"fmt"

	"github.com/vovakirdan/bug-smash/internal/core"
)

// Rand is the random source used for spawning and movement.
// *math/rand.Rand satisfies it; tests inject a seeded one for reproducibility.
type Rand interface {
	Float64() float64
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return core.Lerp(lo, hi, r.Float64())
}

// bugID scopes ids to (level, index) so regenerations never collide.
func bugID(level, index int) string {
	return fmt.Sprintf("bug-%d-%d", level, index)
}

// spawnBugs creates a fresh batch for the level. It depends only on the
// configuration, the level number and the random source.
func (g *Game) spawnBugs(level int) []Bug {
	params := g.levels.Params(level)
	bc := g.cfg.Bugs
	maxX, maxY := g.limits()

	bugs := make([]Bug, 0, params.Count)
	for i := range params.Count {
		bugs = append(bugs, Bug{
			ID:    bugID(level, i),
			X:     g.rng.Float64() * maxX,
			Y:     g.rng.Float64() * maxY,
			Speed: params.Speed * uniform(g.rng, bc.SpawnSpeedMin, bc.SpawnSpeedMax),
			VX:    uniform(g.rng, -bc.InitialVelocity, bc.InitialVelocity),
			VY:    uniform(g.rng, -bc.InitialVelocity, bc.InitialVelocity),
			TX:    g.rng.Float64() * maxX,
			TY:    g.rng.Float64() * maxY,
			Alive: true,
		})
	}
	return bugs
}

// limits returns the largest valid top-left coordinates for a bug.
func (g *Game) limits() (maxX, maxY float64) {
	maxX = max(0, g.cfg.Arena.Width-g.cfg.Bugs.Size)
	maxY = max(0, g.cfg.Arena.Height-g.cfg.Bugs.Size)
	return maxX, maxY
}
