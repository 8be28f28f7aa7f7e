// Package tui hosts the game in a terminal with Bubble Tea.
// It drives the simulation clocks, maps keys and mouse clicks to game
// operations and renders the arena, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg drives one movement step.
type FrameMsg time.Time

// SecondMsg drives the one-second countdown.
type SecondMsg time.Time

// frameCmd schedules the next frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// secondCmd schedules the next countdown tick. It runs independently of the
// frame rate.
func secondCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg(t)
	})
}
