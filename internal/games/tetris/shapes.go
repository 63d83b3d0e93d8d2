// Package tetris implements the falling-block puzzle: the seven tetromino
// shapes, piece rotation with wall kicks, the 10x20 grid and the
// scoring/leveling state machine.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindO Kind = iota
	KindI
	KindS
	KindZ
	KindL
	KindJ
	KindT
)

// Kinds lists every piece kind in declaration order.
var Kinds = [...]Kind{KindO, KindI, KindS, KindZ, KindL, KindJ, KindT}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// ShapeDef is the static definition of a kind.
type ShapeDef struct {
	Cells [4]core.Point // Base layout, piece-local
	Pivot core.Point    // Rotation center
	Color core.Color    // Never ColorDefault, which marks empty grid cells
}

var shapes = [...]ShapeDef{
	KindO: {
		Cells: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Color: core.ColorBrightYellow,
	},
	KindI: {
		// Vertical bar. Its geometric center is not a cell, so it turns
		// about a fixed pivot instead of its bounding box.
		Cells: [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
		Pivot: core.Point{X: 1, Y: 1},
		Color: core.ColorBrightCyan,
	},
	KindS: {
		Cells: [4]core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Color: core.ColorBrightRed,
	},
	KindZ: {
		Cells: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		Color: core.ColorBrightGreen,
	},
	KindL: {
		Cells: [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		Color: core.ColorOrange,
	},
	KindJ: {
		Cells: [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		Color: core.ColorBrightMagenta,
	},
	KindT: {
		Cells: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
		Color: core.ColorMagenta,
	},
}

func init() {
	// Every kind except I turns about the integer center of its base
	// bounding box. Fixing it once keeps four turns an identity.
	for _, k := range Kinds {
		if k == KindI {
			continue
		}
		shapes[k].Pivot = boundsCenter(shapes[k].Cells)
	}
}

// Shape returns the definition for the given kind.
// Unknown kinds fall back to O.
func Shape(k Kind) ShapeDef {
	if k < 0 || int(k) >= len(shapes) {
		return shapes[KindO]
	}
	return shapes[k]
}

// boundsCenter returns (floor((minX+maxX)/2), floor((minY+maxY)/2)).
func boundsCenter(cells [4]core.Point) core.Point {
	lo, hi := bounds(cells)
	return core.Point{
		X: floorHalf(lo.X + hi.X),
		Y: floorHalf(lo.Y + hi.Y),
	}
}

func bounds(cells [4]core.Point) (lo, hi core.Point) {
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi
}

// floorHalf divides by two rounding toward negative infinity.
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}
