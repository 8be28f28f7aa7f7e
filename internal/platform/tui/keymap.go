package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bug-smash/internal/core"
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Smash   key.Binding
	Pause   key.Binding
	NewGame key.Binding
	Quit    key.Binding
	Exit    key.Binding
	Copy    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Smash: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "smash"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "quit to menu"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy result"),
		),
	}
}

// ShortHelp returns the bindings shown while playing.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Smash, k.Pause, k.NewGame, k.Quit, k.Exit}
}

// FullHelp returns every binding.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Smash, k.Pause, k.NewGame},
		{k.Quit, k.Exit, k.Copy},
	}
}

// Action translates a key message to a game action.
// Exit is checked first so it works on every screen.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Smash):
		return core.ActionSmash
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Copy):
		return core.ActionCopy
	}
	return core.ActionNone
}
