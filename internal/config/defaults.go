package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			FPS:        20,
			BaseFallMS: 1000,
		},
		Scores: Scores{
			Backend: BackendFile,
		},
		Theme: Theme{
			Block: "██",
			Empty: "  ",
		},
		Log: Log{
			Level: "info",
		},
	}
}
