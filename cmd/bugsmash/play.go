package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-smash/internal/core"
	"github.com/vovakirdan/bug-smash/internal/game"
	"github.com/vovakirdan/bug-smash/internal/platform/tui"
	"github.com/vovakirdan/bug-smash/internal/storage"
)

var flagContinue bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Bug Smash in this terminal.

Controls:
  Arrows/hjkl  - Move the crosshair
  Space/Enter  - Smash the bug under the crosshair
  Mouse click  - Smash the bug under the pointer
  P/Esc        - Pause
  N            - New game
  X            - Quit to menu
  C            - Copy the result (end screens)
  Q/Ctrl+C     - Exit

The session is saved as you play and resumed next time unless
--continue=false is given.

Examples:
  bugsmash play
  bugsmash play --difficulty easy
  bugsmash play --continue=false
  bugsmash play --config ./my-bugsmash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagContinue, "continue", true, "Resume the saved session")
	rootCmd.Flags().BoolVar(&flagContinue, "continue", true, "Resume the saved session")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	player := playerName()
	cfg.Player = player

	g := game.New(gameCfg, cfg.Seed)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bugsmash",
		Level:  log.WarnLevel,
	})

	var saver *storage.Autosaver
	if store != nil {
		slot := localSlot(player)
		if flagContinue {
			if err := store.Resume(g, slot); err != nil && !errors.Is(err, storage.ErrNoSavedState) {
				fmt.Fprintf(os.Stderr, "Warning: discarding saved session: %v\n", err)
			}
		}

		saver = storage.NewAutosaver(store, slot, player, logger)
		saver.Attach(g)
	}

	runErr := tui.Run(g, store, cfg)

	// Flush before closing the database
	if saver != nil {
		saver.Close()
		logger.Debug("session saved", "run", saver.RunID())
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
