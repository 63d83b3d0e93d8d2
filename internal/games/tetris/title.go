package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Block-letter glyphs for the title banner, 5x5 each.
var bannerLetters = map[rune][5]string{
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'E': {"#####", "#....", "###..", "#....", "#####"},
	'R': {"###..", "#..#.", "###..", "#.#..", "#..#."},
	'I': {".##..", ".##..", ".##..", ".##..", ".##.."},
	'S': {".###.", "#....", ".##..", "...#.", "###.."},
}

const (
	bannerWord   = "TETRIS"
	letterW      = 5 * cellW
	letterGap    = 2
	bannerW      = len(bannerWord)*letterW + (len(bannerWord)-1)*letterGap
	bannerHeight = 5
)

// Each banner letter borrows a piece color.
var bannerColors = []core.Color{
	core.ColorMagenta,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorOrange,
}

// RenderTitle draws the start screen: banner, high score and controls.
func RenderTitle(dst *core.Screen, highScore int) {
	dst.Clear()

	lines := 2 + bannerHeight + 2 + 2 + len(controls) + 3
	y := max((dst.Height()-lines)/2, 0)

	if dst.Width() >= bannerW {
		drawBanner(dst, (dst.Width()-bannerW)/2, y)
		y += bannerHeight + 2
	} else {
		dst.DrawTextCentered(y, "T E T R I S", core.ColorBrightBlue)
		y += 2
	}

	dst.DrawTextCentered(y, fmt.Sprintf("High Score: %d", highScore), core.ColorBrightYellow)
	y += 2

	dst.DrawTextCentered(y, "CONTROLS", core.ColorGreen)
	y++
	for _, c := range controls {
		dst.DrawTextCentered(y, fmt.Sprintf("%-6s %-10s", c.keys, c.desc), core.ColorOrange)
		y++
	}

	y++
	dst.DrawTextCentered(y, "Press any key to start", core.ColorBrightWhite)
}

func drawBanner(dst *core.Screen, x, y int) {
	for i, ch := range bannerWord {
		glyph := bannerLetters[ch]
		color := bannerColors[i%len(bannerColors)]
		lx := x + i*(letterW+letterGap)
		for row, line := range glyph {
			for col, px := range line {
				if px != '#' {
					continue
				}
				dst.DrawTextColored(lx+col*cellW, y+row, "██", color)
			}
		}
	}
}
