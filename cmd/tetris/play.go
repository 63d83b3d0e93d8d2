package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Show the title screen, then play.

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Up/K/W/X     - Rotate clockwise
  Down/J/S     - Soft drop
  Space        - Hard drop
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+S       - Save a screenshot to ~/.tetris/screenshots

Examples:
  tetris play
  tetris play --seed 7 --fps 30
  tetris play --log-file /tmp/tetris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Get terminal size for the first frame; resizes follow from the program.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameLog, closer, err := gameLogger(cfg)
	if err != nil {
		logger.Fatal("could not open log file", "path", cfg.Log.File, "error", err)
	}
	defer closer.Close()

	// Scores are best effort: play goes on without them.
	var store storage.HighScoreStore
	if s, err := openStore(cfg); err != nil {
		logger.Warn("could not open score store, high scores disabled", "error", err)
	} else {
		store = s
		defer store.Close()
	}

	opts := tui.Options{
		Config: cfg.Runtime(flagSeed, width, height),
		Theme: tetris.Theme{
			Block: cfg.Theme.Block,
			Empty: cfg.Theme.Empty,
		},
		Store:  store,
		Logger: gameLog,
	}
	if err := tui.Run(opts); err != nil {
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}
