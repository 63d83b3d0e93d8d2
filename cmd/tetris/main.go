// tetris is the falling-block puzzle, played in the terminal.
//
// Usage:
//
//	tetris [play]         - Show the title screen and play
//	tetris score          - Show the stored high score
//	tetris score --reset  - Reset the high score to 0
//	tetris config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.tetris/config.yaml, ./configs/tetris.yaml)
//	--fps <rate>       - Override the frame rate
//	--seed <value>     - Set RNG seed for a reproducible piece sequence
//	--log-file <path>  - Write logs to a file while playing
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

// gameID keys the high score in stores shared with other games.
const gameID = "tetris"

// logger reports to stderr outside the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Tetris: steer falling tetrominoes, complete rows to clear them,
and survive as the pieces speed up every 5 lines.

Available commands:
  play     - Play (the default)
  score    - Show or reset the high score
  config   - Print the effective configuration

Examples:
  tetris
  tetris --seed 42
  tetris score --reset
  tetris config --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies flag overrides.
// A broken explicit config is fatal.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid settings", "error", err)
	}
	logger.SetLevel(cfg.LogLevel())
	return cfg
}

// openStore opens the configured high score store.
func openStore(cfg config.Config) (storage.HighScoreStore, error) {
	return storage.Open(cfg.Scores.Backend, cfg.ScorePath(), gameID)
}

// gameLogger returns the logger used while the game owns the terminal.
// Without a log file it discards everything, since stderr would draw over
// the game. The returned closer releases the file.
func gameLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           cfg.LogLevel(),
	}
	if cfg.Log.File == "" {
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.NewWithOptions(f, opts), f, nil
}
