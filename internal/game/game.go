// Package game implements the Bug Smash simulation core: level progression,
// bug spawning, per-frame movement with wall bounces, scoring, the countdown
// timer and pause handling.
//
// A Game has a single writer. The host calls Advance once per rendered frame,
// Tick once per second and the input methods (Activate, TogglePause,
// StartNewGame, Quit) in response to the player, all from one goroutine.
// Nothing blocks: the pause between levels is a cancellable task that Advance
// counts down.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bug-smash/internal/config"
)

// Game is the simulation state machine.
type Game struct {
	cfg    config.GameConfig
	levels Progression
	rng    Rand

	level    int
	score    int
	timeLeft int // Seconds
	bugs     []Bug

	playing  bool
	paused   bool
	gameOver bool
	gameWon  bool

	transition deferred
	epoch      uint64 // Bumped on every reset; stale transitions compare against it

	listeners []subscription
	nextSubID uint64
}

// New creates an idle game seeded for reproducible play.
func New(cfg config.GameConfig, seed int64) *Game {
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates an idle game using the given random source.
func NewWithRand(cfg config.GameConfig, r Rand) *Game {
	return &Game{
		cfg:    cfg,
		levels: NewProgression(cfg.Levels),
		rng:    r,
		level:  1,
	}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Progression returns the level parameter calculator.
func (g *Game) Progression() Progression {
	return g.levels
}

// StartNewGame begins a fresh run at level 1 with zero score.
// Valid from any phase; a pending level transition is cancelled.
func (g *Game) StartNewGame() {
	g.cancelTransition()
	g.level = 1
	g.score = 0
	g.gameOver = false
	g.gameWon = false
	g.paused = false
	g.emit(EventNewGame, "")
	g.startLevel()
}

// Quit abandons the current run and returns to idle without awarding score.
func (g *Game) Quit() {
	g.Reset()
}

// Reset clears all transient state and returns to idle.
func (g *Game) Reset() {
	g.cancelTransition()
	g.level = 1
	g.score = 0
	g.timeLeft = 0
	g.bugs = nil
	g.playing = false
	g.paused = false
	g.gameOver = false
	g.gameWon = false
	g.emit(EventReset, "")
}

// startLevel spawns the current level's bugs and starts its clock.
// Score is carried over.
func (g *Game) startLevel() {
	g.playing = true
	g.paused = false
	g.timeLeft = g.levels.TimeLimit(g.level)
	g.bugs = g.spawnBugs(g.level)
	g.emit(EventLevelStarted, "")
}

// completeLevel ends the level. Callers must have checked levelComplete.
func (g *Game) completeLevel() {
	g.playing = false
	g.paused = false

	if g.level >= g.levels.MaxLevel() {
		g.gameWon = true
		g.emit(EventLevelCompleted, "")
		g.emit(EventGameWon, "")
		return
	}

	g.score += g.timeLeft * g.cfg.Scoring.TimeBonus
	g.level++
	g.emit(EventLevelCompleted, "")
	g.scheduleNextLevel(g.cfg.Scoring.TransitionDelay)
}

// scheduleNextLevel arms the transition task. The callback re-checks that
// nothing reset or restarted the game in the meantime.
func (g *Game) scheduleNextLevel(delay time.Duration) {
	epoch, next := g.epoch, g.level
	g.transition.schedule(delay, func() {
		if g.epoch != epoch || g.level != next || g.playing || g.gameOver || g.gameWon {
			return
		}
		g.startLevel()
	})
}

func (g *Game) cancelTransition() {
	g.epoch++
	g.transition.cancel()
}

// levelComplete is the level-complete predicate: playing and no bug alive.
func (g *Game) levelComplete() bool {
	return g.playing && g.BugsRemaining() == 0
}

// Advance runs one frame of dt. It counts down a pending level transition,
// then moves every alive bug while playing and not paused. Movement is scaled
// by dt against the configured reference frame rate. The frame that starts a
// new level leaves the bugs where they spawned.
func (g *Game) Advance(dt time.Duration) {
	if g.transition.advance(dt) {
		return
	}
	if !g.playing || g.paused || dt <= 0 {
		return
	}
	g.moveBugs(float64(dt) / float64(g.cfg.Bugs.StepInterval()))
}

// Tick runs the one-second countdown. Reaching zero ends the game.
func (g *Game) Tick() {
	if !g.playing || g.paused {
		return
	}

	if g.timeLeft > 0 {
		g.timeLeft--
	}
	g.emit(EventTimer, "")

	if g.timeLeft <= 0 {
		g.playing = false
		g.gameOver = true
		g.emit(EventGameOver, "")
	}
}

// TogglePause flips the pause flag. Ignored unless a level is being played.
func (g *Game) TogglePause() {
	if !g.playing {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.emit(EventPaused, "")
	} else {
		g.emit(EventResumed, "")
	}
}

// Activate smashes a bug. Unknown ids and dead bugs are ignored, so repeated
// clicks score once. Smashes while paused, between levels or after the run
// has ended are ignored too: the score only changes during play.
func (g *Game) Activate(id string) {
	if !g.playing || g.paused {
		return
	}

	i := g.indexOf(id)
	if i < 0 || !g.bugs[i].Alive {
		return
	}

	g.bugs[i].Alive = false
	g.score += g.cfg.Scoring.PointsPerLevel * g.level
	g.emit(EventBugSmashed, id)

	// Score first: completion reads it when awarding the time bonus
	if g.levelComplete() {
		g.completeLevel()
	}
}

// Remove purges a smashed bug from the collection. Alive bugs and unknown
// ids are ignored.
func (g *Game) Remove(id string) {
	i := g.indexOf(id)
	if i < 0 || g.bugs[i].Alive {
		return
	}
	g.bugs = append(g.bugs[:i], g.bugs[i+1:]...)
	g.emit(EventBugRemoved, id)
}

// BugAt returns the topmost alive bug whose footprint, grown by slop pixels,
// contains the point.
func (g *Game) BugAt(x, y, slop float64) (string, bool) {
	size := g.cfg.Bugs.Size
	for i := len(g.bugs) - 1; i >= 0; i-- {
		b := g.bugs[i]
		if b.Alive && b.Footprint(size).Grow(slop).Contains(x, y) {
			return b.ID, true
		}
	}
	return "", false
}

func (g *Game) indexOf(id string) int {
	for i := range g.bugs {
		if g.bugs[i].ID == id {
			return i
		}
	}
	return -1
}

// Level returns the current level (1-based).
func (g *Game) Level() int { return g.level }

// Score returns the cumulative score.
func (g *Game) Score() int { return g.score }

// TimeLeft returns the remaining seconds on the current level.
func (g *Game) TimeLeft() int { return g.timeLeft }

// IsPlaying reports whether a level is running (paused or not).
func (g *Game) IsPlaying() bool { return g.playing }

// IsPaused reports whether the running level is paused.
func (g *Game) IsPaused() bool { return g.paused }

// IsGameOver reports whether the clock ran out.
func (g *Game) IsGameOver() bool { return g.gameOver }

// IsGameWon reports whether the final level was cleared.
func (g *Game) IsGameWon() bool { return g.gameWon }

// InTransition reports whether the next level is scheduled to start.
func (g *Game) InTransition() bool { return g.transition.pending() }

// BugsRemaining returns the number of alive bugs.
func (g *Game) BugsRemaining() int {
	n := 0
	for _, b := range g.bugs {
		if b.Alive {
			n++
		}
	}
	return n
}
