package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkozhevn/tile48/internal/achievements"
	"github.com/dkozhevn/tile48/internal/config"
	"github.com/dkozhevn/tile48/internal/platform/tui"
	"github.com/dkozhevn/tile48/internal/session"
	"github.com/dkozhevn/tile48/internal/storage"
)

var flagNewGame bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game. An unfinished game is resumed automatically.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U                - Undo last move
  N or R           - New game
  Q/Esc/Ctrl+C     - Quit (game is saved)

Examples:
  tile48 play
  tile48 play --new
  tile48 play --seed 42
  tile48 play --config ./my-tile48.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNewGame, "new", false, "Discard the saved game and start over")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Bells and background colors only make sense on a real terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.UI.ColorTiles = false
		cfg.UI.Bell = false
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sessCfg := session.Config{
		Seed:        seed,
		FourProb:    cfg.Spawn.FourProbability,
		UndoEnabled: cfg.Game.Undo,
		Autosave:    cfg.Game.Autosave,
		Logger:      log.New(io.Discard),
	}
	if store != nil {
		sessCfg.Recorder = store

		unlocked, achErr := store.UnlockedAchievements()
		if achErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load achievements: %v\n", achErr)
		}
		sessCfg.Observer = achievements.NewEvaluator(unlocked)
	}
	var bell *tui.BellNotifier
	if cfg.UI.Bell {
		bell = tui.NewBellNotifier()
		sessCfg.Notifier = bell
	}

	sess := session.New(sessCfg)
	if flagNewGame {
		sess.NewGame()
	} else {
		sess.Resume()
	}

	runErr := tui.RunGame(sess, cfg.UI.ColorTiles, bell)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
