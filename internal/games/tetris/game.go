package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Spawn position of every new piece.
const (
	spawnX = Width/2 - 1
	spawnY = 0
)

// kicks are the horizontal shifts tried, in order, when a rotation collides.
var kicks = [...]int{1, -1, 2, -2}

// Game is one attempt at the puzzle. It is replaced, not reused, when the
// player starts over.
type Game struct {
	rng *rand.Rand

	grid    Grid
	current Piece
	x, y    int // Offset of the current piece
	next    Piece

	score int
	level int
	lines int

	fallBase     time.Duration
	fallInterval time.Duration
	lastFall     time.Time

	phase     Phase
	highScore int
	theme     Theme
}

// New creates a game and deals its first two pieces.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{theme: DefaultTheme()}
	g.Reset(cfg)
	return g
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Reset clears the grid, zeroes score and lines and draws two fresh pieces.
// The remembered high score is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = Grid{}

	g.fallBase = cfg.FallBase
	if g.fallBase <= 0 {
		g.fallBase = DefaultFallBase
	}

	g.score = 0
	g.lines = 0
	g.level = LevelFor(0)
	g.fallInterval = FallIntervalFor(g.fallBase, g.level)
	g.lastFall = time.Time{}
	g.phase = PhasePlaying

	g.current = g.randomPiece()
	g.next = g.randomPiece()
	g.x, g.y = spawnX, spawnY
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// SetTheme changes the glyphs used by Render.
func (g *Game) SetTheme(t Theme) {
	g.theme = t.withDefaults()
}

// Step applies one frame: every queued action in arrival order, then a
// fall if at least one fall interval has passed since the last one.
// The first Step of a game only starts the fall clock.
func (g *Game) Step(in core.InputFrame, now time.Time) core.StepResult {
	var res core.StepResult
	if g.phase != PhasePlaying {
		res.State = g.State()
		return res
	}

	if g.lastFall.IsZero() {
		g.lastFall = now
	}

	for _, a := range in.Actions {
		if g.phase != PhasePlaying {
			break
		}
		switch a {
		case core.ActionLeft:
			g.MoveLeft()
		case core.ActionRight:
			g.MoveRight()
		case core.ActionRotate:
			g.Rotate()
		case core.ActionDown:
			if locked, n := g.SoftDrop(); locked {
				res.Locked = true
				res.Cleared += n
			}
		case core.ActionDrop:
			res.Cleared += g.HardDrop()
			res.Locked = true
		}
	}

	if g.phase == PhasePlaying && now.Sub(g.lastFall) >= g.fallInterval {
		if locked, n := g.Tick(); locked {
			res.Locked = true
			res.Cleared += n
		}
		g.lastFall = now
	}

	res.State = g.State()
	return res
}

// MoveLeft shifts the current piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the current piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.x += dx
	if g.collides() {
		g.x -= dx
		return false
	}
	return true
}

// Rotate turns the current piece clockwise. If the turned piece collides,
// it is nudged sideways by each of the kick offsets in turn; if none fits,
// the piece is left exactly as it was.
func (g *Game) Rotate() bool {
	if g.phase != PhasePlaying {
		return false
	}

	before := g.current
	g.current = before.Rotate()
	if !g.collides() {
		return true
	}

	for _, dx := range kicks {
		g.x += dx
		if !g.collides() {
			return true
		}
		g.x -= dx
	}

	g.current = before
	return false
}

// SoftDrop moves the piece down one row. See Tick.
func (g *Game) SoftDrop() (locked bool, cleared int) {
	return g.Tick()
}

// Tick moves the piece down one row. If it cannot move, it is locked,
// full rows are cleared and scored, and the next piece spawns.
func (g *Game) Tick() (locked bool, cleared int) {
	if g.phase != PhasePlaying {
		return false, 0
	}
	g.y++
	if !g.collides() {
		return false, 0
	}
	g.y--
	return true, g.lockAndSpawn()
}

// HardDrop drops the piece to the lowest legal row and locks it there.
// It returns the number of rows cleared.
func (g *Game) HardDrop() int {
	if g.phase != PhasePlaying {
		return 0
	}
	for !g.collides() {
		g.y++
	}
	g.y--
	return g.lockAndSpawn()
}

func (g *Game) collides() bool {
	cells := g.current.GlobalCells(g.x, g.y)
	return g.grid.CollidesAt(cells[:])
}

func (g *Game) lockAndSpawn() int {
	cells := g.current.GlobalCells(g.x, g.y)
	g.grid.Lock(cells[:], g.current.Color)

	n := g.grid.ClearFullRows()
	if n > 0 {
		g.award(n)
	}

	g.spawn()
	return n
}

// award applies the scoring and leveling rules for n rows cleared at once.
// Points use the level in effect before the clear.
func (g *Game) award(n int) {
	g.score += PointsFor(n, g.level)
	g.lines += n
	g.level = LevelFor(g.lines)
	g.fallInterval = FallIntervalFor(g.fallBase, g.level)
}

// spawn promotes the next piece. A spawn that collides ends the game and
// leaves the grid untouched.
func (g *Game) spawn() {
	g.current = g.next
	g.next = g.randomPiece()
	g.x, g.y = spawnX, spawnY

	if g.collides() {
		g.phase = PhaseGameOver
	}
}

// randomPiece draws a kind uniformly, with no memory of earlier draws.
func (g *Game) randomPiece() Piece {
	return NewPiece(Kinds[g.rng.Intn(len(Kinds))])
}

// State returns the summary used by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// FallInterval returns the current time between automatic falls.
func (g *Game) FallInterval() time.Duration {
	return g.fallInterval
}

// Position returns the current piece offset.
func (g *Game) Position() (x, y int) {
	return g.x, g.y
}
