// bugsmash is a timed arcade game for the terminal: smash every bug in the
// arena before the clock runs out.
//
// Usage:
//
//	bugsmash                 - Play (same as bugsmash play)
//	bugsmash play            - Play in this terminal
//	bugsmash scores          - Show high scores
//	bugsmash serve           - Start SSH server for remote play
//	bugsmash config          - Print the effective game configuration
//	bugsmash state           - Show or clear the saved session
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bugsmash/bugsmash.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--player <name>       - Name used for scores and the save slot
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-smash/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugsmash",
	Short: "Bug Smash - smash the bugs before time runs out",
	Long: `Bug Smash is a timed arcade game for the terminal. Bugs wander around
the arena; smash them all before the clock reaches zero to advance.
Four levels, each with more, faster bugs and less time.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration
  state    - Show or clear the saved session

Examples:
  bugsmash
  bugsmash play --difficulty hard
  bugsmash scores --player alice
  bugsmash serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bugsmash/bugsmash.db", "Path to scores and sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default: current user)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(stateCmd)
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// localSlot is the save slot for local play.
func localSlot(player string) string {
	return "local:" + player
}
