package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkozhevn/tile48/internal/platform/tui"
	"github.com/dkozhevn/tile48/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top scores.

Examples:
  tile48 scores
  tile48 scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tile48 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-7s  %s\n", "Rank", "Score", "Max", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-7s  %s\n", "----", "-----", "---", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-10d  %-8d  %-7d  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
