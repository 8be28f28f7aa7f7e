package core

// Action represents a semantic player intent, abstracted from physical keys
// and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move crosshair up
	ActionDown           // Move crosshair down
	ActionLeft           // Move crosshair left
	ActionRight          // Move crosshair right
	ActionSmash          // Space/Enter/click - smash the bug under the crosshair
	ActionPause          // P, Escape - pause/unpause
	ActionNewGame        // N - start a new game
	ActionQuit           // X - abandon the run and return home
	ActionExit           // Q, Ctrl+C - leave the program
	ActionCopy           // C - copy result on end screens
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSmash:
		return "Smash"
	case ActionPause:
		return "Pause"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	case ActionExit:
		return "Exit"
	case ActionCopy:
		return "Copy"
	default:
		return "Unknown"
	}
}
