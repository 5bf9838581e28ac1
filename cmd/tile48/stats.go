package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkozhevn/tile48/internal/achievements"
	"github.com/dkozhevn/tile48/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics and achievements",
	Long: `Display aggregated statistics over all recorded games, and the
unlocked achievements.

Examples:
  tile48 stats`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  Best score:    %d\n", stats.BestScore)
	fmt.Printf("  Average score: %.0f\n", stats.AvgScore)
	fmt.Printf("  Best tile:     %d\n", stats.BestTile)
	fmt.Printf("  Total moves:   %d\n", stats.TotalMoves)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	unlocked, err := store.UnlockedAchievements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving achievements: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Achievements (%d/%d)\n", len(unlocked), len(achievements.Definitions))
	fmt.Println()

	unlockedSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = true
	}

	for _, a := range achievements.Definitions {
		mark := " "
		if unlockedSet[a.ID] {
			mark = "x"
		}
		fmt.Printf("  [%s] %-18s %s\n", mark, a.Name, a.Desc)
	}
}
