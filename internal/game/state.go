package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/bug-smash/internal/core"
)

// StateVersion is the current persisted state layout.
const StateVersion = 1

// ErrInvalidState is returned by Restore for structurally malformed states.
var ErrInvalidState = errors.New("game: invalid persisted state")

// State is the persisted subset of a game: enough to resume in any phase,
// including mid-level and mid-transition.
type State struct {
	Version    int   `msgpack:"version"`
	Level      int   `msgpack:"level"`
	Score      int   `msgpack:"score"`
	TimeLeft   int   `msgpack:"time_left"`
	Playing    bool  `msgpack:"playing"`
	Paused     bool  `msgpack:"paused"`
	GameOver   bool  `msgpack:"game_over"`
	GameWon    bool  `msgpack:"game_won"`
	Transition bool  `msgpack:"transition"`
	Bugs       []Bug `msgpack:"bugs"`
}

// State captures the persisted subset of the current game.
func (g *Game) State() State {
	bugs := make([]Bug, len(g.bugs))
	copy(bugs, g.bugs)

	return State{
		Version:    StateVersion,
		Level:      g.level,
		Score:      g.score,
		TimeLeft:   g.timeLeft,
		Playing:    g.playing,
		Paused:     g.paused,
		GameOver:   g.gameOver,
		GameWon:    g.gameWon,
		Transition: g.transition.pending(),
		Bugs:       bugs,
	}
}

// Restore replaces the game with a persisted state.
// A malformed state resets the game to idle and returns an error wrapping
// ErrInvalidState. Positions outside the arena are clamped and the time left
// is capped at the level's limit.
//
// An interrupted level transition is re-armed with the full delay. An idle
// state above level 1 can only come from an interrupted transition, so it is
// treated the same way.
func (g *Game) Restore(st State) error {
	if err := g.checkState(st); err != nil {
		g.Reset()
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	g.cancelTransition()
	g.level = st.Level
	g.score = st.Score
	g.timeLeft = min(st.TimeLeft, g.levels.TimeLimit(st.Level))
	g.playing = st.Playing
	g.paused = st.Paused
	g.gameOver = st.GameOver
	g.gameWon = st.GameWon

	maxX, maxY := g.limits()
	g.bugs = make([]Bug, len(st.Bugs))
	for i, b := range st.Bugs {
		b.X = core.ClampF(b.X, 0, maxX)
		b.Y = core.ClampF(b.Y, 0, maxY)
		b.TX = core.ClampF(b.TX, 0, maxX)
		b.TY = core.ClampF(b.TY, 0, maxY)
		g.bugs[i] = b
	}

	g.emit(EventRestored, "")

	idleMidRun := !st.Playing && !st.GameOver && !st.GameWon && st.Level > 1
	switch {
	case st.Transition || idleMidRun:
		g.scheduleNextLevel(g.cfg.Scoring.TransitionDelay)
	case g.levelComplete():
		g.completeLevel()
	}
	return nil
}

func (g *Game) checkState(st State) error {
	switch {
	case st.Version != StateVersion:
		return fmt.Errorf("unsupported version %d", st.Version)
	case st.Level < 1 || st.Level > g.levels.MaxLevel():
		return fmt.Errorf("level %d out of range [1, %d]", st.Level, g.levels.MaxLevel())
	case st.Score < 0:
		return fmt.Errorf("negative score %d", st.Score)
	case st.TimeLeft < 0:
		return fmt.Errorf("negative time left %d", st.TimeLeft)
	case st.GameOver && st.GameWon:
		return errors.New("both game over and game won")
	case st.Playing && (st.GameOver || st.GameWon):
		return errors.New("playing after the game ended")
	case st.Paused && !st.Playing:
		return errors.New("paused while not playing")
	case st.Transition && (st.Playing || st.GameOver || st.GameWon):
		return errors.New("transition outside of a cleared level")
	case st.Transition && st.Level < 2:
		return errors.New("transition into level 1")
	}

	seen := make(map[string]bool, len(st.Bugs))
	for _, b := range st.Bugs {
		if b.ID == "" {
			return errors.New("bug with empty id")
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate bug id %q", b.ID)
		}
		seen[b.ID] = true

		for _, v := range []float64{b.X, b.Y, b.VX, b.VY, b.TX, b.TY, b.Speed} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("bug %q has a non-finite value", b.ID)
			}
		}
	}
	return nil
}
