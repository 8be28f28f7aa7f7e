package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-smash/internal/config"
	"github.com/vovakirdan/bug-smash/internal/game"
)

var (
	flagConfigDefaults bool
	flagConfigLevels   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, after the config file search
and the difficulty preset are applied. Redirect it to a file to start a
custom config.

Config search order:
  1. --config <path>
  2. ~/.bugsmash/configs/bugsmash.yaml
  3. ./configs/bugsmash.yaml
  4. built-in defaults

Examples:
  bugsmash config
  bugsmash config --difficulty hard
  bugsmash config --defaults > ~/.bugsmash/configs/bugsmash.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().BoolVar(&flagConfigLevels, "levels", false, "Print the derived per-level table instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagConfigLevels {
		printLevels(cfg)
		return
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func printLevels(cfg config.GameConfig) {
	p := game.NewProgression(cfg.Levels)

	fmt.Printf("  %-5s  %-6s  %-4s  %s\n", "Level", "Time", "Bugs", "Speed")
	fmt.Printf("  %-5s  %-6s  %-4s  %s\n", "-----", "----", "----", "-----")
	for level := 1; level <= p.MaxLevel(); level++ {
		lp := p.Params(level)
		fmt.Printf("  %-5d  %-6s  %-4d  %.2f\n", lp.Level, fmt.Sprintf("%ds", lp.TimeLimit), lp.Count, lp.Speed)
	}
}
