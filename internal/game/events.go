package game

// EventKind identifies a state change in the game.
type EventKind int

const (
	EventNewGame EventKind = iota
	EventLevelStarted
	EventBugSmashed
	EventBugRemoved
	EventLevelCompleted
	EventGameOver
	EventGameWon
	EventPaused
	EventResumed
	EventTimer
	EventReset
	EventRestored
)

func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventLevelStarted:
		return "level_started"
	case EventBugSmashed:
		return "bug_smashed"
	case EventBugRemoved:
		return "bug_removed"
	case EventLevelCompleted:
		return "level_completed"
	case EventGameOver:
		return "game_over"
	case EventGameWon:
		return "game_won"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventTimer:
		return "timer"
	case EventReset:
		return "reset"
	case EventRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// Event describes a state change. Level and Score are the values after the change.
type Event struct {
	Kind  EventKind
	Level int
	Score int
	BugID string // Set for EventBugSmashed and EventBugRemoved
}

// Listener receives events synchronously on the goroutine that caused them.
// Listeners must not call back into mutating Game methods.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// Subscribe registers a listener and returns a function that removes it.
func (g *Game) Subscribe(fn Listener) (unsubscribe func()) {
	g.nextSubID++
	id := g.nextSubID
	g.listeners = append(g.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, s := range g.listeners {
			if s.id == id {
				g.listeners = append(g.listeners[:i:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

func (g *Game) emit(kind EventKind, bugID string) {
	if len(g.listeners) == 0 {
		return
	}
	ev := Event{Kind: kind, Level: g.level, Score: g.score, BugID: bugID}
	for _, s := range g.listeners {
		s.fn(ev)
	}
}
