package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid         Grid
	Current      [4]core.Point // Global cells of the falling piece
	CurrentColor core.Color
	Next         Piece // Local cells, base layout
	Score        int
	Level        int
	Lines        int
	HighScore    int
	FallInterval time.Duration
	Phase        Phase
	NewHighScore bool // Score beats the high score the game started with
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:         g.grid,
		Current:      g.current.GlobalCells(g.x, g.y),
		CurrentColor: g.current.Color,
		Next:         g.next,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		HighScore:    g.highScore,
		FallInterval: g.fallInterval,
		Phase:        g.phase,
		NewHighScore: g.score > 0 && g.score > g.highScore,
	}
}
