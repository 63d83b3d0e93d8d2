package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the play screen, in terminal columns/rows.
const (
	cellW   = 2               // Each grid cell is two columns wide
	boardW  = Width*cellW + 2 // Grid plus side borders
	boardH  = Height + 2      // Grid plus top/bottom borders
	panelW  = 20
	gutter  = 3
	layoutW = boardW + gutter + panelW

	previewW = 5*cellW + 2
	previewH = 4 + 2

	// MinWidth and MinHeight are the smallest screen the play view fits in.
	MinWidth  = layoutW
	MinHeight = boardH
)

// Theme holds the two-column glyphs for grid cells.
type Theme struct {
	Block string
	Empty string
}

// DefaultTheme returns solid blocks on a blank background.
func DefaultTheme() Theme {
	return Theme{Block: "██", Empty: "  "}
}

// withDefaults replaces glyphs that are not exactly two runes wide.
func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	if len([]rune(t.Block)) != cellW {
		t.Block = def.Block
	}
	if len([]rune(t.Empty)) != cellW {
		t.Empty = def.Empty
	}
	return t
}

// Render draws the play screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.theme)
}

// RenderSnapshot draws the board, side panel and, after the game ends,
// the game-over panel.
func RenderSnapshot(dst *core.Screen, snap Snapshot, theme Theme) {
	dst.Clear()
	theme = theme.withDefaults()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		renderTooSmall(dst)
		return
	}

	originX := (dst.Width() - layoutW) / 2
	originY := (dst.Height() - boardH) / 2

	renderBoard(dst, snap, theme, originX, originY)
	renderPanel(dst, snap, theme, originX+boardW+gutter, originY)

	if snap.Phase == PhaseGameOver {
		renderGameOver(dst, snap, originX+boardW/2, originY+boardH/2)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.ColorGray)
}

func renderBoard(dst *core.Screen, snap Snapshot, theme Theme, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorWhite)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := snap.Grid[y][x]
			if c == core.ColorDefault {
				drawCell(dst, ox, oy, x, y, theme.Empty, core.ColorGray)
				continue
			}
			drawCell(dst, ox, oy, x, y, theme.Block, c)
		}
	}

	if snap.Phase == PhasePlaying {
		for _, c := range snap.Current {
			if c.Y < 0 {
				continue
			}
			drawCell(dst, ox, oy, c.X, c.Y, theme.Block, snap.CurrentColor)
		}
	}
}

// drawCell paints grid cell (x, y) of a board whose border starts at (ox, oy).
func drawCell(dst *core.Screen, ox, oy, x, y int, glyph string, c core.Color) {
	dst.DrawTextColored(ox+1+x*cellW, oy+1+y, glyph, c)
}

func renderPanel(dst *core.Screen, snap Snapshot, theme Theme, px, py int) {
	dst.DrawTextColored(px, py, "NEXT", core.ColorBrightMagenta)
	box := core.NewRect(px, py+1, previewW, previewH)
	dst.DrawBox(box, core.ColorWhite)
	renderPreview(dst, snap.Next, theme, box)

	info := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprint(snap.Score)},
		{"HIGH", fmt.Sprint(snap.HighScore)},
		{"LEVEL", fmt.Sprint(snap.Level)},
		{"LINES", fmt.Sprint(snap.Lines)},
		{"SPEED", fmt.Sprintf("%dms", snap.FallInterval.Milliseconds())},
	}
	y := box.Bottom() + 1
	for i, row := range info {
		dst.DrawTextColored(px, y+i, row.label, core.ColorBrightCyan)
		dst.DrawText(px+7, y+i, row.value)
	}

	y += len(info) + 1
	dst.DrawTextColored(px, y, "CONTROLS", core.ColorGreen)
	for i, c := range controls {
		dst.DrawTextColored(px, y+1+i, c.keys, core.ColorOrange)
		dst.DrawTextColored(px+7, y+1+i, c.desc, core.ColorBrightRed)
	}
}

// renderPreview centers the next piece inside the preview box.
func renderPreview(dst *core.Screen, p Piece, theme Theme, box core.Rect) {
	lo, hi := p.Bounds()
	pieceW := (hi.X - lo.X + 1) * cellW
	pieceH := hi.Y - lo.Y + 1
	innerW := box.W - 2
	innerH := box.H - 2

	left := box.X + 1 + (innerW-pieceW)/2
	top := box.Y + 1 + (innerH-pieceH)/2
	for _, c := range p.Cells {
		dst.DrawTextColored(left+(c.X-lo.X)*cellW, top+c.Y-lo.Y, theme.Block, p.Color)
	}
}

var controls = []struct {
	keys string
	desc string
}{
	{"←/→", "Move"},
	{"↑", "Rotate"},
	{"↓", "Soft drop"},
	{"Space", "Hard drop"},
	{"Q/Esc", "Quit"},
}

func renderGameOver(dst *core.Screen, snap Snapshot, centerX, centerY int) {
	best := fmt.Sprintf("High Score: %d", snap.HighScore)
	bestColor := core.ColorBrightYellow
	if snap.NewHighScore {
		best = "NEW HIGH SCORE!"
	}

	drawPanel(dst, centerX, centerY, []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{fmt.Sprintf("Final Score: %d", snap.Score), core.ColorBrightMagenta},
		{best, bestColor},
		{"", core.ColorDefault},
		{"R: restart", core.ColorBrightGreen},
		{"Q/Esc: quit", core.ColorBrightRed},
	})
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered box of centered lines around (centerX, centerY),
// blanking whatever is behind it.
func drawPanel(dst *core.Screen, centerX, centerY int, lines []panelLine) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l.text)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		x := centerX - len([]rune(l.text))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}
