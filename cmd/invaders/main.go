// invaders is a terminal arcade shooter: hold the bottom row against a
// marching formation.
//
// Usage:
//
//	invaders list               - List game modes
//	invaders play [mode]        - Play classic (default) or endless
//	invaders menu               - Start menu to pick a mode interactively
//	invaders scores [mode]      - Show high scores
//	invaders config             - Print the effective game configuration
//	invaders serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

// logger reports problems before and after the terminal UI owns the screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "invaders"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - hold the line in your terminal",
	Long: `Invaders is a terminal shooter. A formation of enemies marches side to
side and drops a row at every wall; shoot them all before they reach you.
Hits charge the super meter; press F when it is full for a barrage.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play endless --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores classic`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags hands --config and --difficulty to the game and reports a
// broken config file up front, since the game falls back to defaults silently.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	if _, err := config.LoadInvaders(flagConfig); err != nil {
		logger.Warn("using default game config", "error", err)
	}
	return nil
}
