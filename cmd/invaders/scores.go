package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|endless]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or for every mode when none is given.

Examples:
  invaders scores
  invaders scores endless --limit 20
  invaders scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given mode")
}

func runScores(_ *cobra.Command, args []string) error {
	var games []registry.GameInfo
	if len(args) == 1 {
		gameID, ok := resolveMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q, run 'invaders list' to see the modes", args[0])
		}
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		games = append(games, registry.GameInfo{ID: game.ID(), Title: game.Title()})
	} else {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		games = registry.List()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(games[0].ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", games[0].Title)
		return nil
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			return err
		}
	}
	return nil
}

// printScores prints the leaderboard and totals for one mode.
func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %10s  %4s  %s\n", "Rank", "Player", "Score", "Wave", "When")
	fmt.Printf("  %-4s  %-12s  %10s  %4s  %s\n", "----", "------", "-----", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %10s  %4d  %s\n",
			i+1, e.Player, humanize.Comma(int64(e.Score)), e.Wave, humanize.Time(e.CreatedAt))
	}

	stats, err := store.GetGameStats(g.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %s played, best wave %d, average %s, last played %s\n",
		humanize.Comma(int64(stats.GamesCount)),
		stats.BestWave,
		humanize.CommafWithDigits(stats.AvgScore, 1),
		humanize.Time(stats.LastPlayed),
	)
	return nil
}
