package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Grid dimensions. They are fixed for every game.
const (
	Width  = 10
	Height = 20
)

// Grid holds the locked cells. core.ColorDefault (0) is an empty cell;
// anything else is the color of the piece that locked there.
type Grid [Height][Width]core.Color

// Get returns the cell at (x, y), or ColorDefault outside the grid.
func (g *Grid) Get(x, y int) core.Color {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return core.ColorDefault
	}
	return g[y][x]
}

// CollidesAt reports whether any of the given absolute cells is outside
// the side walls or below the floor, or overlaps a locked cell.
// Cells above the top row (y < 0) only collide with the walls: pieces
// may poke out of the top while spawning or rotating.
func (g *Grid) CollidesAt(cells []core.Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return true
		}
		if c.Y >= 0 && g[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// Lock writes color into every given cell that lies inside the grid.
// Cells above the visible grid are dropped.
func (g *Grid) Lock(cells []core.Point, color core.Color) {
	for _, c := range cells {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
			continue
		}
		g[c.Y][c.X] = color
	}
}

// IsRowFull reports whether every column of row y is occupied.
func (g *Grid) IsRowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, c := range g[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down,
// and returns how many rows were removed.
//
// Rows are scanned bottom to top. After a removal the same index is
// examined again, because the row that was above it has just moved in.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !g.IsRowFull(y) {
			y--
			continue
		}

		cleared++
		for row := y; row > 0; row-- {
			g[row] = g[row-1]
		}
		g[0] = [Width]core.Color{}
	}
	return cleared
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g[y][x] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}
