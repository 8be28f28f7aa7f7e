package game

// Phase is the logical state encoded by the game's flags.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseTransition // Level cleared, next one scheduled
	PhaseGameOver
	PhaseGameWon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "game_over"
	case PhaseGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Phase derives the current phase from the flags.
func (g *Game) Phase() Phase {
	switch {
	case g.gameWon:
		return PhaseGameWon
	case g.gameOver:
		return PhaseGameOver
	case g.playing && g.paused:
		return PhasePaused
	case g.playing:
		return PhasePlaying
	case g.transition.pending():
		return PhaseTransition
	default:
		return PhaseIdle
	}
}

// View is the read-only snapshot a renderer needs for one frame.
type View struct {
	Level         int
	MaxLevel      int
	Score         int
	TimeLeft      int
	TimeLimit     int
	BugsRemaining int
	Phase         Phase

	Playing    bool
	Paused     bool
	GameOver   bool
	GameWon    bool
	Transition bool

	ArenaW, ArenaH float64
	BugSize        float64
	Bugs           []BugView
}

// View returns a snapshot of the current state. The bug slice is a copy.
func (g *Game) View() View {
	bugs := make([]BugView, len(g.bugs))
	for i, b := range g.bugs {
		bugs[i] = BugView{ID: b.ID, X: b.X, Y: b.Y, Alive: b.Alive}
	}

	return View{
		Level:         g.level,
		MaxLevel:      g.levels.MaxLevel(),
		Score:         g.score,
		TimeLeft:      g.timeLeft,
		TimeLimit:     g.levels.TimeLimit(g.level),
		BugsRemaining: g.BugsRemaining(),
		Phase:         g.Phase(),
		Playing:       g.playing,
		Paused:        g.paused,
		GameOver:      g.gameOver,
		GameWon:       g.gameWon,
		Transition:    g.transition.pending(),
		ArenaW:        g.cfg.Arena.Width,
		ArenaH:        g.cfg.Arena.Height,
		BugSize:       g.cfg.Bugs.Size,
		Bugs:          bugs,
	}
}

// Route names a screen the host can show.
type Route int

const (
	RouteHome Route = iota
	RoutePlay
	RouteGameOver
	RouteWon
)

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RoutePlay:
		return "play"
	case RouteGameOver:
		return "game_over"
	case RouteWon:
		return "won"
	default:
		return "unknown"
	}
}

// Resolve guards navigation. It returns want when the current phase allows
// it, otherwise the route matching the phase. It has no side effects.
func (g *Game) Resolve(want Route) Route {
	phase := g.Phase()
	switch want {
	case RouteHome:
		return RouteHome
	case RoutePlay:
		if phase == PhasePlaying || phase == PhasePaused || phase == PhaseTransition {
			return RoutePlay
		}
	case RouteGameOver:
		if phase == PhaseGameOver {
			return RouteGameOver
		}
	case RouteWon:
		if phase == PhaseGameWon {
			return RouteWon
		}
	}
	return routeFor(phase)
}

func routeFor(p Phase) Route {
	switch p {
	case PhasePlaying, PhasePaused, PhaseTransition:
		return RoutePlay
	case PhaseGameOver:
		return RouteGameOver
	case PhaseGameWon:
		return RouteWon
	default:
		return RouteHome
	}
}
