package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-smash/internal/platform/tui"
	"github.com/vovakirdan/bug-smash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  bugsmash scores
  bugsmash scores --mine --limit 20
  bugsmash scores --tui
  bugsmash scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show the current player's runs")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player := playerName()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresMine {
		scores, err = store.PlayerScores(player, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagScoresMine {
		fmt.Printf("High Scores - %s\n", player)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bugsmash play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %9s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Result", "When")
	fmt.Printf("  %-4s  %-16s  %9s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, e := range scores {
		result := "-"
		if e.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-16s  %9s  %-5d  %-6s  %s\n",
			i+1, e.Player, humanize.Comma(int64(e.Score)), e.Level, result, humanize.Time(e.CreatedAt))
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Best: %s  •  %s runs, %s won\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.Runs)),
			humanize.Comma(int64(stats.Wins)))
	}
}
