package game

import (
	"reflect"
	"testing"
)

func TestSpawnBatch(t *testing.T) {
	g := New(testConfig(), 7)
	g.StartNewGame()

	cfg := g.Config()
	maxX := cfg.Arena.Width - cfg.Bugs.Size
	maxY := cfg.Arena.Height - cfg.Bugs.Size
	speed := g.Progression().Speed(1)

	bugs := g.State().Bugs
	if len(bugs) != 3 {
		t.Fatalf("expected 3 bugs, got %d", len(bugs))
	}

	seen := make(map[string]bool)
	for i, b := range bugs {
		if want := bugID(1, i); b.ID != want {
			t.Errorf("bug %d id = %q, expected %q", i, b.ID, want)
		}
		if seen[b.ID] {
			t.Errorf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true

		if !b.Alive {
			t.Errorf("%s should spawn alive", b.ID)
		}
		if b.X < 0 || b.X > maxX || b.Y < 0 || b.Y > maxY {
			t.Errorf("%s spawned partially off-area at (%v, %v)", b.ID, b.X, b.Y)
		}
		if b.TX < 0 || b.TX > maxX || b.TY < 0 || b.TY > maxY {
			t.Errorf("%s target out of bounds (%v, %v)", b.ID, b.TX, b.TY)
		}
		if b.Speed < speed*0.7 || b.Speed > speed*1.3 {
			t.Errorf("%s speed %v outside [%v, %v]", b.ID, b.Speed, speed*0.7, speed*1.3)
		}
		if b.VX < -2 || b.VX > 2 || b.VY < -2 || b.VY > 2 {
			t.Errorf("%s initial velocity (%v, %v) outside [-2, 2]", b.ID, b.VX, b.VY)
		}
	}
}

func TestSpawnDeterminism(t *testing.T) {
	g1 := New(testConfig(), 12345)
	g2 := New(testConfig(), 12345)
	g1.StartNewGame()
	g2.StartNewGame()

	if !reflect.DeepEqual(g1.State().Bugs, g2.State().Bugs) {
		t.Error("equal seeds should spawn identical batches")
	}

	g3 := New(testConfig(), 54321)
	g3.StartNewGame()
	if reflect.DeepEqual(g1.State().Bugs, g3.State().Bugs) {
		t.Error("different seeds should spawn different batches")
	}
}

func TestSpawnExtremesStayInBounds(t *testing.T) {
	// A source pinned to the top of its range must still keep bugs inside
	for _, r := range []constRand{0, 0.999999} {
		g := NewWithRand(testConfig(), r)
		g.StartNewGame()

		maxX, maxY := g.limits()
		for _, b := range g.State().Bugs {
			if b.X < 0 || b.X > maxX || b.Y < 0 || b.Y > maxY {
				t.Errorf("rand=%v: bug at (%v, %v) out of bounds", r, b.X, b.Y)
			}
		}
	}
}

func TestSpawnIDsScopedByLevel(t *testing.T) {
	g := New(testConfig(), 1)
	g.StartNewGame()
	first := g.State().Bugs[0].ID

	smashAll(g)
	g.Advance(g.Config().Scoring.TransitionDelay)

	if g.Level() != 2 {
		t.Fatalf("expected level 2, got %d", g.Level())
	}
	for _, b := range g.State().Bugs {
		if b.ID == first {
			t.Errorf("level 2 reused level 1 id %q", b.ID)
		}
	}
	if g.State().Bugs[0].ID != "bug-2-0" {
		t.Errorf("first level 2 id = %q", g.State().Bugs[0].ID)
	}
}
