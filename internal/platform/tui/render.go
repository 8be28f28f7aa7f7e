package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/bug-smash/internal/core"
	"github.com/vovakirdan/bug-smash/internal/game"
)

const (
	bugRune       = 'ж'
	smashedRune   = '✕'
	crosshairRune = '+'
	lowTime       = 5 // Seconds left when the clock turns red
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// playScene is everything drawPlay needs for one frame.
type playScene struct {
	view      game.View
	viewport  Viewport
	crossX    int
	crossY    int
	fading    map[string]int
	fadeTotal int
	help      string
}

// drawPlay renders the HUD, arena, bugs and crosshair into s.
func drawPlay(s *core.Screen, sc playScene) {
	s.Clear()
	v := sc.view

	timeColor := core.ColorCyan
	if v.TimeLeft <= lowTime {
		timeColor = core.ColorRed
	}

	x := 1
	x = drawLabel(s, x, 0, "Level ", fmt.Sprintf("%d/%d", v.Level, v.MaxLevel), core.ColorMagenta)
	x = drawLabel(s, x, 0, "Score ", humanize.Comma(int64(v.Score)), core.ColorYellow)
	x = drawLabel(s, x, 0, "Time ", fmt.Sprintf("%ds", v.TimeLeft), timeColor)
	drawLabel(s, x, 0, "Bugs ", fmt.Sprint(v.BugsRemaining), core.ColorGreen)

	switch v.Phase {
	case game.PhasePaused:
		s.DrawText(s.Width()-len("PAUSED")-1, 0, "PAUSED", core.ColorOrange)
	case game.PhaseTransition:
		s.DrawText(s.Width()-len("NEXT LEVEL")-1, 0, "NEXT LEVEL", core.ColorOrange)
	}

	vp := sc.viewport
	s.DrawBox(vp.Frame, core.ColorGray)
	s.DrawText(1, s.Height()-1, sc.help, core.ColorGray)

	if !vp.Usable() {
		return
	}

	half := v.BugSize / 2
	for _, b := range v.Bugs {
		cx, cy := vp.ToCell(b.X+half, b.Y+half)
		switch {
		case b.Alive:
			s.Set(cx, cy, bugRune, core.ColorGreen)
		case sc.fading[b.ID] > sc.fadeTotal/2:
			s.Set(cx, cy, smashedRune, core.ColorRed)
		default:
			s.Set(cx, cy, smashedRune, core.ColorGray)
		}
	}

	// The crosshair tints whatever is under it
	if r := s.Get(sc.crossX, sc.crossY); r == ' ' {
		s.Set(sc.crossX, sc.crossY, crosshairRune, core.ColorYellow)
	} else {
		s.Set(sc.crossX, sc.crossY, r, core.ColorYellow)
	}

	switch v.Phase {
	case game.PhasePaused:
		drawBanner(s, vp, "PAUSED", "press p to resume")
	case game.PhaseTransition:
		drawBanner(s, vp, fmt.Sprintf("LEVEL %d", v.Level), "get ready")
	}
}

// drawLabel writes "name value" and returns the x after it plus a gap.
func drawLabel(s *core.Screen, x, y int, name, value string, c core.Color) int {
	s.DrawText(x, y, name, core.ColorGray)
	x += len(name)
	s.DrawText(x, y, value, c)
	return x + len([]rune(value)) + 3
}

// drawBanner blanks a strip of the arena and writes a two-line message on it.
func drawBanner(s *core.Screen, vp Viewport, title, subtitle string) {
	_, cy := vp.Center()
	top := max(cy-1, vp.Inner.Y)
	bottom := min(cy+2, vp.Inner.Bottom())
	s.FillRect(core.NewRect(vp.Inner.X, top, vp.Inner.W, bottom-top), ' ', core.ColorDefault)
	s.DrawTextCentered(cy-1, title, core.ColorOrange)
	s.DrawTextCentered(cy+1, subtitle, core.ColorGray)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderResult draws the game over and victory panels.
func renderResult(v game.View, best int, status string, width, height int) string {
	var b strings.Builder

	if v.GameWon {
		b.WriteString(titleStyle.Render("ALL BUGS SMASHED!"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "You cleared all %d levels.\n", v.MaxLevel)
	} else {
		b.WriteString(titleStyle.Foreground(lipgloss.Color("9")).Render("TIME'S UP"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "You reached level %d of %d.\n", v.Level, v.MaxLevel)
	}

	fmt.Fprintf(&b, "Score: %s\n", selectedStyle.Render(humanize.Comma(int64(v.Score))))
	if best > 0 {
		fmt.Fprintf(&b, "Best:  %s\n", humanize.Comma(int64(best)))
	}
	if v.Score > 0 && v.Score >= best {
		b.WriteString(selectedStyle.Render("New personal best!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("n: new game  •  x: menu  •  c: copy  •  q: exit"))
	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(status))
	}

	panel := panelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

// resultText is the plain summary copied to the clipboard.
func resultText(v game.View) string {
	outcome := fmt.Sprintf("reached level %d of %d", v.Level, v.MaxLevel)
	if v.GameWon {
		outcome = fmt.Sprintf("cleared all %d levels", v.MaxLevel)
	}
	return fmt.Sprintf("Bug Smash: %s points, %s", humanize.Comma(int64(v.Score)), outcome)
}
