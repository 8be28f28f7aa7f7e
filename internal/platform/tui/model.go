package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/bug-smash/internal/core"
	"github.com/vovakirdan/bug-smash/internal/game"
	"github.com/vovakirdan/bug-smash/internal/storage"
)

// fadeDuration is how long a smashed bug stays on screen before removal.
const fadeDuration = 400 * time.Millisecond

// homeItem is an entry of the home menu.
type homeItem int

const (
	homeNewGame homeItem = iota
	homeScores
	homeExit
)

var homeItems = []homeItem{homeNewGame, homeScores, homeExit}

func (h homeItem) String() string {
	switch h {
	case homeNewGame:
		return "New game"
	case homeScores:
		return "High scores"
	case homeExit:
		return "Exit"
	default:
		return ""
	}
}

// Model is the Bubble Tea model hosting one game. It is the game's single
// writer: frame ticks call Advance, second ticks call Tick and input calls
// the player operations, all on Bubble Tea's update goroutine.
type Model struct {
	game   *game.Game
	store  *storage.Store
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	route      game.Route
	menuCursor int
	scores     *ScoreboardModel // Non-nil while the scoreboard is open

	crossX, crossY int
	fading         map[string]int // Smashed bug id -> frames left on screen
	fadeFrames     int

	best     int // Player's best score
	top      int // Best score of any player
	status   string
	quitting bool
}

// NewModel creates a model for g. store may be nil.
// A game restored mid-run opens straight on the play screen.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       g,
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		fading:     make(map[string]int),
		fadeFrames: max(1, int(fadeDuration/cfg.FrameInterval())),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.PlayerBest(cfg.Player); err == nil {
			m.best = best
		}
		if top, err := store.HighScore(); err == nil {
			m.top = top
		}
	}

	m.route = g.Resolve(game.RoutePlay)
	m.crossX, m.crossY = m.viewport().Center()
	return m
}

// Init starts both clocks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.config.FrameInterval()), secondCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case FrameMsg:
		m.handleFrame()
		cmd = frameCmd(m.config.FrameInterval())

	case SecondMsg:
		m.game.Tick()
		cmd = secondCmd()

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		if m.scores != nil {
			sb, _ := m.scores.Update(msg)
			board := sb.(ScoreboardModel)
			m.scores = &board
		}

	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.syncRoute()
	return m, cmd
}

// syncRoute applies the navigation guard after every change.
func (m *Model) syncRoute() {
	prev := m.route
	m.route = m.game.Resolve(m.route)

	if m.route != prev && (m.route == game.RouteGameOver || m.route == game.RouteWon) {
		m.best = max(m.best, m.game.Score())
		m.top = max(m.top, m.best)
		m.status = ""
	}
}

func (m *Model) handleFrame() {
	m.game.Advance(m.config.FrameInterval())

	for _, b := range m.game.View().Bugs {
		if _, ok := m.fading[b.ID]; !ok && !b.Alive {
			m.fading[b.ID] = m.fadeFrames
		}
	}
	for id, left := range m.fading {
		if left > 1 {
			m.fading[id] = left - 1
			continue
		}
		m.game.Remove(id)
		delete(m.fading, id)
	}
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	vp := m.viewport()
	if vp.Usable() {
		m.crossX = core.Clamp(m.crossX, vp.Inner.X, vp.Inner.Right()-1)
		m.crossY = core.Clamp(m.crossY, vp.Inner.Y, vp.Inner.Bottom()-1)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionExit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.route {
	case game.RouteHome:
		return m.handleHomeKey(action)
	case game.RoutePlay:
		m.handlePlayKey(action)
	case game.RouteGameOver, game.RouteWon:
		m.handleResultKey(action)
	}
	return m, nil
}

func (m Model) handleHomeKey(action core.Action) (Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.menuCursor = (m.menuCursor + len(homeItems) - 1) % len(homeItems)
	case core.ActionDown:
		m.menuCursor = (m.menuCursor + 1) % len(homeItems)
	case core.ActionNewGame:
		m.startGame()
	case core.ActionSmash:
		switch homeItems[m.menuCursor] {
		case homeNewGame:
			m.startGame()
		case homeScores:
			board := NewScoreboardModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH)
			m.scores = &board
		case homeExit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handlePlayKey(action core.Action) {
	vp := m.viewport()

	switch action {
	case core.ActionUp:
		m.crossY = max(m.crossY-1, vp.Inner.Y)
	case core.ActionDown:
		m.crossY = min(m.crossY+1, vp.Inner.Bottom()-1)
	case core.ActionLeft:
		m.crossX = max(m.crossX-1, vp.Inner.X)
	case core.ActionRight:
		m.crossX = min(m.crossX+1, vp.Inner.Right()-1)
	case core.ActionSmash:
		m.smashAt(m.crossX, m.crossY)
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionNewGame:
		m.startGame()
	case core.ActionQuit:
		m.game.Quit()
		m.route = game.RouteHome
	}
}

func (m *Model) handleResultKey(action core.Action) {
	switch action {
	case core.ActionNewGame:
		m.startGame()
	case core.ActionQuit, core.ActionSmash:
		m.game.Quit()
		m.route = game.RouteHome
	case core.ActionCopy:
		m.copyResult()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.route != game.RoutePlay || m.scores != nil {
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if !m.viewport().Inner.Contains(msg.X, msg.Y) {
		return
	}
	m.crossX, m.crossY = msg.X, msg.Y
	m.smashAt(msg.X, msg.Y)
}

// smashAt activates the topmost bug under a screen cell.
func (m *Model) smashAt(cx, cy int) {
	vp := m.viewport()
	x, y, ok := vp.ToPixel(cx, cy)
	if !ok {
		return
	}
	if id, found := m.game.BugAt(x, y, vp.Slop()); found {
		m.game.Activate(id)
	}
}

func (m *Model) startGame() {
	clear(m.fading)
	m.game.StartNewGame()
	m.route = game.RoutePlay
	m.status = ""
}

func (m *Model) copyResult() {
	if !m.config.Local {
		m.status = "Clipboard is only available when playing locally."
		return
	}
	if err := clipboard.WriteAll(resultText(m.game.View())); err != nil {
		m.status = fmt.Sprintf("Could not copy: %v", err)
		return
	}
	m.status = "Result copied to clipboard."
}

func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scores.Update(msg)
	board := sb.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.scores = nil
		return m, nil
	}

	m.scores = &board
	return m, cmd
}

func (m Model) viewport() Viewport {
	cfg := m.game.Config()
	return NewViewport(m.config.ScreenW, m.config.ScreenH, cfg.Arena.Width, cfg.Arena.Height)
}

// Route returns the screen currently shown.
func (m Model) Route() game.Route {
	return m.route
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	switch m.route {
	case game.RoutePlay:
		drawPlay(m.screen, playScene{
			view:      m.game.View(),
			viewport:  m.viewport(),
			crossX:    m.crossX,
			crossY:    m.crossY,
			fading:    m.fading,
			fadeTotal: m.fadeFrames,
			help:      m.help.ShortHelpView(m.keys.ShortHelp()),
		})
		return RenderScreen(m.screen)
	case game.RouteGameOver, game.RouteWon:
		return renderResult(m.game.View(), m.best, m.status, m.config.ScreenW, m.config.ScreenH)
	default:
		return m.viewHome()
	}
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B U G   S M A S H"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Smash every bug before the clock runs out"), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range homeItems {
		line := "  " + item.String()
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}

	if m.top > 0 {
		b.WriteString("\n")
		record := fmt.Sprintf("Top score: %s  •  Your best: %s",
			humanize.Comma(int64(m.top)), humanize.Comma(int64(m.best)))
		b.WriteString(centerText(record, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("↑/↓: navigate  •  enter: select  •  n: new game  •  q: exit"), m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Run starts the Bubble Tea program for a local game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
