package game

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	idle := newTestGame(t, 1)

	playing := newTestGame(t, 1)
	playing.StartNewGame()

	paused := newTestGame(t, 1)
	paused.StartNewGame()
	paused.TogglePause()

	transition := newTestGame(t, 1)
	transition.StartNewGame()
	smashAll(transition)

	over := newTestGame(t, 1)
	over.StartNewGame()
	for i := 0; i < 15; i++ {
		over.Tick()
	}

	cfg := testConfig()
	cfg.Levels.MaxLevel = 1
	won := New(cfg, 1)
	won.StartNewGame()
	smashAll(won)

	tests := []struct {
		name string
		g    *Game
		want Route
		got  Route
	}{
		{"home from idle", idle, RouteHome, RouteHome},
		{"play from idle", idle, RoutePlay, RouteHome},
		{"game over from idle", idle, RouteGameOver, RouteHome},
		{"won from idle", idle, RouteWon, RouteHome},

		{"play while playing", playing, RoutePlay, RoutePlay},
		{"won while playing", playing, RouteWon, RoutePlay},
		{"home while playing", playing, RouteHome, RouteHome},

		{"play while paused", paused, RoutePlay, RoutePlay},
		{"game over while paused", paused, RouteGameOver, RoutePlay},

		{"play in transition", transition, RoutePlay, RoutePlay},
		{"won in transition", transition, RouteWon, RoutePlay},

		{"game over after timeout", over, RouteGameOver, RouteGameOver},
		{"play after timeout", over, RoutePlay, RouteGameOver},
		{"won after timeout", over, RouteWon, RouteGameOver},

		{"won after win", won, RouteWon, RouteWon},
		{"play after win", won, RoutePlay, RouteWon},
		{"game over after win", won, RouteGameOver, RouteWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if r := tc.g.Resolve(tc.want); r != tc.got {
				t.Errorf("Resolve(%v) = %v, expected %v", tc.want, r, tc.got)
			}
		})
	}
}

func TestPhaseFollowsFlags(t *testing.T) {
	g := newTestGame(t, 1)
	steps := []struct {
		do   func()
		want Phase
	}{
		{func() {}, PhaseIdle},
		{g.StartNewGame, PhasePlaying},
		{g.TogglePause, PhasePaused},
		{g.TogglePause, PhasePlaying},
		{func() { smashAll(g) }, PhaseTransition},
		{func() { g.Advance(2 * time.Second) }, PhasePlaying},
		{g.Quit, PhaseIdle},
	}

	for i, s := range steps {
		s.do()
		if p := g.Phase(); p != s.want {
			t.Fatalf("step %d: phase = %v, expected %v", i, p, s.want)
		}
	}
}

func TestViewSnapshot(t *testing.T) {
	g := newTestGame(t, 4)
	g.StartNewGame()
	g.Activate(g.View().Bugs[2].ID)

	v := g.View()
	if v.Level != 1 || v.MaxLevel != 4 || v.Score != 10 || v.TimeLimit != 15 {
		t.Errorf("unexpected header values: %+v", v)
	}
	if v.BugsRemaining != 2 || len(v.Bugs) != 3 || v.Bugs[2].Alive {
		t.Errorf("unexpected bugs: remaining=%d %+v", v.BugsRemaining, v.Bugs)
	}
	if v.ArenaW != 800 || v.ArenaH != 600 || v.BugSize != 32 {
		t.Errorf("arena = %vx%v size %v", v.ArenaW, v.ArenaH, v.BugSize)
	}
	if !v.Playing || v.Phase != PhasePlaying {
		t.Errorf("phase = %v playing=%v", v.Phase, v.Playing)
	}

	v.Bugs[0].X = -100
	v.Bugs[0].Alive = false
	if b := g.View().Bugs[0]; b.X == -100 || !b.Alive {
		t.Error("mutating a view changed the game")
	}
}

func TestEnumStrings(t *testing.T) {
	if PhaseTransition.String() != "transition" || Phase(42).String() != "unknown" {
		t.Error("phase names")
	}
	if RouteGameOver.String() != "game_over" || Route(42).String() != "unknown" {
		t.Error("route names")
	}
	if EventBugSmashed.String() != "bug_smashed" || EventKind(42).String() != "unknown" {
		t.Error("event names")
	}
}
