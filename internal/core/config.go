package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the control loop
	Seed     int64 // RNG seed for the piece sequence

	// FallBase is the interval between automatic falls at level 1.
	FallBase time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 20 frames per second matches a 50ms poll loop.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		FallBase: time.Second,
	}
}

// GameState is the summary the platform needs after each step.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	GameOver bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	Locked  bool // A piece was locked into the grid this frame
	Cleared int  // Rows cleared by that lock
}
