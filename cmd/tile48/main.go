// tile48 is a terminal 2048: slide tiles, merge equal pairs, reach 2048.
//
// Usage:
//
//	tile48 play              - Play in the local terminal
//	tile48 scores            - Show the score history
//	tile48 stats             - Show play statistics and achievements
//	tile48 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Database path (default: XDG data dir)
//	--config <path>  - Game config YAML path
//	--seed <value>   - RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile48",
	Short: "2048 in your terminal",
	Long: `tile48 is the sliding-tile merge game for the terminal.

Available commands:
  play     - Play in the local terminal
  scores   - View the score history
  stats    - View play statistics and achievements
  serve    - Start SSH server for remote play

Examples:
  tile48 play
  tile48 play --seed 42
  tile48 scores
  tile48 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
