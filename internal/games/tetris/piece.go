package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino in a particular rotation state.
// Pieces are values: Rotate returns a new piece, so keeping the old one
// around is all it takes to undo a rejected rotation.
type Piece struct {
	Kind  Kind
	Cells [4]core.Point
	Color core.Color
}

// NewPiece returns a piece of the given kind in its base layout.
func NewPiece(k Kind) Piece {
	def := Shape(k)
	return Piece{
		Kind:  k,
		Cells: def.Cells,
		Color: def.Color,
	}
}

// Rotate returns the piece turned 90 degrees clockwise about its kind's
// pivot: (x, y) -> (px + (y - py), py - (x - px)). O is returned unchanged.
// Legality against the grid is the caller's concern.
func (p Piece) Rotate() Piece {
	if p.Kind == KindO {
		return p
	}

	pivot := Shape(p.Kind).Pivot
	rotated := p
	for i, c := range p.Cells {
		dx := c.X - pivot.X
		dy := c.Y - pivot.Y
		rotated.Cells[i] = core.Point{X: pivot.X + dy, Y: pivot.Y - dx}
	}
	return rotated
}

// GlobalCells translates the local cells by the given offset.
func (p Piece) GlobalCells(offsetX, offsetY int) [4]core.Point {
	var out [4]core.Point
	for i, c := range p.Cells {
		out[i] = c.Add(offsetX, offsetY)
	}
	return out
}

// Bounds returns the top-left and bottom-right local cells of the
// piece's bounding box (both inclusive).
func (p Piece) Bounds() (lo, hi core.Point) {
	return bounds(p.Cells)
}

// SameCells reports whether both pieces occupy the same set of local
// cells, regardless of order.
func (p Piece) SameCells(other Piece) bool {
	for _, c := range p.Cells {
		found := false
		for _, o := range other.Cells {
			if c == o {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
