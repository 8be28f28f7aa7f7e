package game

import (
	"testing"

	"github.com/vovakirdan/bug-smash/internal/config"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// testConfig is the default configuration with a small first level.
func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Levels.BaseCount = 3
	return cfg
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	return New(testConfig(), seed)
}

// smashAll activates every bug currently in the game.
func smashAll(g *Game) {
	for _, b := range g.View().Bugs {
		g.Activate(b.ID)
	}
}

// checkInvariants verifies the flag invariants that must hold at every
// observable state.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	if g.IsGameOver() && g.IsGameWon() {
		t.Fatal("invariant violated: game over and game won at once")
	}
	if g.IsPlaying() && (g.IsGameOver() || g.IsGameWon()) {
		t.Fatal("invariant violated: playing after the game ended")
	}
	if g.IsPaused() && !g.IsPlaying() {
		t.Fatal("invariant violated: paused while not playing")
	}
	if g.Score() < 0 || g.TimeLeft() < 0 || g.Level() < 1 {
		t.Fatalf("invariant violated: score=%d time=%d level=%d", g.Score(), g.TimeLeft(), g.Level())
	}
}
