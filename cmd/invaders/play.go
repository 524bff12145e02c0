package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|endless]",
	Short: "Play a game mode",
	Long: `Start playing. Classic ends when the formation is destroyed; endless
spawns a faster formation every time you clear one.

Controls:
  A/D, Left/Right - Move
  Space/Up/W      - Fire
  F               - Super (when the meter is full)
  P               - Pause
  R               - Restart (after game over)
  Esc/B           - Leave (when paused or over)
  Ctrl+S          - Screenshot to ~/.invaders/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial values

Examples:
  invaders play
  invaders play endless
  invaders play --difficulty hard --seed 42
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := "classic"
	if len(args) == 1 {
		mode = args[0]
	}
	gameID, ok := resolveMode(mode)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'invaders list' to see the modes", mode)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	deps, closeDeps := openDeps()
	defer closeDeps()

	return tui.Run(game, runtimeConfig(), deps)
}
