// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config contains every user-tunable setting.
type Config struct {
	Timing Timing `yaml:"timing"`
	Scores Scores `yaml:"scores"`
	Theme  Theme  `yaml:"theme"`
	Log    Log    `yaml:"log"`
}

// Timing defines the frame loop and fall speed.
type Timing struct {
	FPS        int `yaml:"fps"`
	BaseFallMS int `yaml:"base_fall_ms"`
}

// Scores selects where the high score is kept.
type Scores struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Theme defines the glyphs of grid cells.
type Theme struct {
	Block string `yaml:"block"`
	Empty string `yaml:"empty"`
}

// Log configures the file logger used while the game is on screen.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Timing.FPS < 1 || c.Timing.FPS > 120 {
		return fmt.Errorf("config: timing.fps must be between 1 and 120, got %d", c.Timing.FPS)
	}
	if c.Timing.BaseFallMS < 50 {
		return fmt.Errorf("config: timing.base_fall_ms must be at least 50, got %d", c.Timing.BaseFallMS)
	}
	switch c.Scores.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown scores.backend %q", c.Scores.Backend)
	}
	if n := len([]rune(c.Theme.Block)); n != 2 {
		return fmt.Errorf("config: theme.block must be 2 characters, got %d", n)
	}
	if n := len([]rune(c.Theme.Empty)); n != 2 {
		return fmt.Errorf("config: theme.empty must be 2 characters, got %d", n)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// FallBase returns the level 1 fall interval.
func (c Config) FallBase() time.Duration {
	return time.Duration(c.Timing.BaseFallMS) * time.Millisecond
}

// Runtime builds the game's runtime config for the given seed and screen.
func (c Config) Runtime(seed int64, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.ScreenW, rc.ScreenH = width, height
	}
	rc.TickRate = c.Timing.FPS
	rc.Seed = seed
	rc.FallBase = c.FallBase()
	return rc
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ScorePath returns the configured score location, or the backend default:
// tetris_highscore.txt in the working directory for the file backend,
// ~/.tetris/scores.db for SQLite.
func (c Config) ScorePath() string {
	if c.Scores.Path != "" {
		return c.Scores.Path
	}
	if c.Scores.Backend == BackendSQLite {
		if dir := userDir(); dir != "" {
			return filepath.Join(dir, "scores.db")
		}
		return "tetris_scores.db"
	}
	return "tetris_highscore.txt"
}

// Marshal returns the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userDir returns ~/.tetris, or empty if home is unavailable.
func userDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris")
}
