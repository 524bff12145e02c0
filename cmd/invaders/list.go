package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every game mode with the name accepted by play and scores.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	names := make(map[string]string, len(modeIDs))
	for name, id := range modeIDs {
		names[id] = name
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-8s  %-17s  %s\n", "Mode", "ID", "Title")
	fmt.Printf("  %-8s  %-17s  %s\n", "----", "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-8s  %-17s  %s\n", names[g.ID], g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play <mode>' to play.")
}
