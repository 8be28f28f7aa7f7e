package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bug-smash/internal/core"
	"github.com/vovakirdan/bug-smash/internal/game"
)

func TestDrawPlay(t *testing.T) {
	s := core.NewScreen(82, 24)
	vp := NewViewport(82, 24, 800, 600)

	view := game.View{
		Level: 2, MaxLevel: 4, Score: 1250, TimeLeft: 3, BugsRemaining: 1,
		Phase: game.PhasePlaying, Playing: true,
		ArenaW: 800, ArenaH: 600, BugSize: 32,
		Bugs: []game.BugView{
			{ID: "a", X: 84, Y: 44, Alive: true},  // Center (100, 60) -> cell (11, 4)
			{ID: "b", X: 384, Y: 284, Alive: false}, // Center (400, 300) -> cell (41, 12)
		},
	}

	drawPlay(s, playScene{
		view:      view,
		viewport:  vp,
		crossX:    5,
		crossY:    5,
		fading:    map[string]int{"b": 20},
		fadeTotal: 24,
		help:      "help line",
	})

	hud := s.Row(0)
	for _, want := range []string{"Level 2/4", "Score 1,250", "Time 3s", "Bugs 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if c := s.GetCell(strings.Index(hud, "3s"), 0); c.Color != core.ColorRed {
		t.Error("low time should be drawn red")
	}

	if c := s.GetCell(11, 4); c.Rune != bugRune || c.Color != core.ColorGreen {
		t.Errorf("alive bug cell = %+v", c)
	}
	if c := s.GetCell(41, 12); c.Rune != smashedRune || c.Color != core.ColorRed {
		t.Errorf("fading bug cell = %+v", c)
	}
	if c := s.GetCell(5, 5); c.Rune != crosshairRune {
		t.Errorf("crosshair cell = %+v", c)
	}
	if !strings.Contains(s.Row(23), "help line") {
		t.Error("help line missing")
	}
	if s.Get(0, 1) != '╭' {
		t.Error("arena border missing")
	}
}

func TestResultText(t *testing.T) {
	lost := resultText(game.View{Score: 1234, Level: 2, MaxLevel: 4})
	if lost != "Bug Smash: 1,234 points, reached level 2 of 4" {
		t.Errorf("unexpected text %q", lost)
	}

	won := resultText(game.View{Score: 900, Level: 4, MaxLevel: 4, GameWon: true})
	if won != "Bug Smash: 900 points, cleared all 4 levels" {
		t.Errorf("unexpected text %q", won)
	}
}

func TestBannerClearsArenaStrip(t *testing.T) {
	s := core.NewScreen(82, 24)
	vp := NewViewport(82, 24, 800, 600)

	view := game.View{
		Level: 1, MaxLevel: 4, TimeLeft: 10, BugsRemaining: 2,
		Phase: game.PhasePaused, Playing: true, Paused: true,
		ArenaW: 800, ArenaH: 600, BugSize: 32,
		Bugs: []game.BugView{
			{ID: "a", X: 84, Y: 44, Alive: true},   // Cell (11, 4), outside the banner
			{ID: "b", X: 384, Y: 284, Alive: true}, // Cell (41, 12), under the banner
		},
	}
	drawPlay(s, playScene{view: view, viewport: vp, crossX: 5, crossY: 5})

	if s.Get(11, 4) != bugRune {
		t.Error("bug outside the banner should stay visible")
	}
	if s.Get(41, 12) != ' ' {
		t.Errorf("banner strip not cleared, got %q", s.Get(41, 12))
	}
	if !strings.Contains(s.Row(11), "PAUSED") || !strings.Contains(s.Row(13), "press p to resume") {
		t.Errorf("banner text missing:\n%s\n%s", s.Row(11), s.Row(13))
	}
	if s.Get(0, 12) != '│' || s.Get(81, 12) != '│' {
		t.Error("banner strip overwrote the arena border")
	}
}
