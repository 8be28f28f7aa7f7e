package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-smash/internal/storage"
)

var flagStateClear bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show or clear the saved session",
	Long: `Show the session saved for the current player, or delete it with
--clear so the next game starts fresh.

Examples:
  bugsmash state
  bugsmash state --player alice
  bugsmash state --clear`,
	Args: cobra.NoArgs,
	Run:  runState,
}

func init() {
	stateCmd.Flags().BoolVar(&flagStateClear, "clear", false, "Delete the saved session")
}

func runState(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot := localSlot(playerName())

	if flagStateClear {
		if err := store.DeleteState(slot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved session %s cleared.\n", slot)
		return
	}

	data, savedAt, err := store.LoadState(slot)
	if errors.Is(err, storage.ErrNoSavedState) {
		fmt.Printf("No saved session for %s.\n", slot)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := storage.DecodeState(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	alive := 0
	for _, b := range st.Bugs {
		if b.Alive {
			alive++
		}
	}

	phase := "idle"
	switch {
	case st.GameWon:
		phase = "won"
	case st.GameOver:
		phase = "game over"
	case st.Paused:
		phase = "paused"
	case st.Playing:
		phase = "playing"
	case st.Transition:
		phase = "between levels"
	}

	fmt.Printf("Saved session %s (%s)\n", slot, humanize.Time(savedAt))
	fmt.Println()
	fmt.Printf("  Phase:     %s\n", phase)
	fmt.Printf("  Level:     %d\n", st.Level)
	fmt.Printf("  Score:     %s\n", humanize.Comma(int64(st.Score)))
	fmt.Printf("  Time left: %ds\n", st.TimeLeft)
	fmt.Printf("  Bugs:      %d alive of %d\n", alive, len(st.Bugs))
	fmt.Printf("  Size:      %s\n", humanize.Bytes(uint64(len(data))))
}
