package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(g *Grid, y int, c core.Color) {
	for x := 0; x < Width; x++ {
		g[y][x] = c
	}
}

func TestCollidesAt(t *testing.T) {
	var g Grid
	g[10][3] = core.ColorRed

	tests := []struct {
		name     string
		cell     core.Point
		expected bool
	}{
		{"left of grid", core.Point{X: -1, Y: 5}, true},
		{"right of grid", core.Point{X: Width, Y: 5}, true},
		{"below grid", core.Point{X: 3, Y: Height}, true},
		{"above grid is free", core.Point{X: 3, Y: -2}, false},
		{"above grid but outside wall", core.Point{X: -1, Y: -2}, true},
		{"locked cell", core.Point{X: 3, Y: 10}, true},
		{"empty cell", core.Point{X: 4, Y: 10}, false},
		{"bottom-right corner", core.Point{X: Width - 1, Y: Height - 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CollidesAt([]core.Point{tc.cell}); got != tc.expected {
				t.Errorf("CollidesAt(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestLockDropsCellsOutsideGrid(t *testing.T) {
	var g Grid
	g.Lock([]core.Point{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: Width, Y: 3}, {X: 9, Y: 19}}, core.ColorCyan)

	if g.Filled() != 2 {
		t.Fatalf("Filled() = %d, expected 2", g.Filled())
	}
	if g.Get(0, 0) != core.ColorCyan || g.Get(9, 19) != core.ColorCyan {
		t.Error("in-bounds cells should be locked")
	}
}

func TestClearFullRowsNoneFull(t *testing.T) {
	var g Grid
	for y := 5; y < Height; y++ {
		for x := 0; x < Width-1; x++ {
			g[y][x] = core.ColorGreen
		}
	}
	before := g

	if n := g.ClearFullRows(); n != 0 {
		t.Errorf("ClearFullRows() = %d, expected 0", n)
	}
	if g != before {
		t.Error("grid should be unchanged")
	}
}

func TestClearFullRowsNonAdjacent(t *testing.T) {
	var g Grid
	// Every row gets a unique, non-full pattern.
	for y := 0; y < Height; y++ {
		g[y][y%Width] = core.Color(1 + y%8)
	}
	fillRow(&g, 5, core.ColorRed)
	fillRow(&g, 7, core.ColorBlue)
	before := g

	if n := g.ClearFullRows(); n != 2 {
		t.Fatalf("ClearFullRows() = %d, expected 2", n)
	}

	var want Grid
	for y := 8; y < Height; y++ {
		want[y] = before[y]
	}
	want[7] = before[6]
	for y := 0; y <= 4; y++ {
		want[y+2] = before[y]
	}

	if g != want {
		for y := 0; y < Height; y++ {
			if g[y] != want[y] {
				t.Errorf("row %d = %v, expected %v", y, g[y], want[y])
			}
		}
	}
}

func TestClearFullRowsTetris(t *testing.T) {
	var g Grid
	for y := Height - 4; y < Height; y++ {
		fillRow(&g, y, core.ColorCyan)
	}
	g[Height-5][0] = core.ColorRed

	if n := g.ClearFullRows(); n != 4 {
		t.Fatalf("ClearFullRows() = %d, expected 4", n)
	}
	if g.Filled() != 1 || g.Get(0, Height-1) != core.ColorRed {
		t.Error("the lone cell above the cleared rows should land on the floor")
	}
}

func TestClearFullRowsWholeGrid(t *testing.T) {
	var g Grid
	for y := 0; y < Height; y++ {
		fillRow(&g, y, core.ColorYellow)
	}

	if n := g.ClearFullRows(); n != Height {
		t.Errorf("ClearFullRows() = %d, expected %d", n, Height)
	}
	if g.Filled() != 0 {
		t.Error("grid should be empty")
	}
}

func TestIsRowFullOutOfRange(t *testing.T) {
	var g Grid
	if g.IsRowFull(-1) || g.IsRowFull(Height) {
		t.Error("out-of-range rows are never full")
	}
}
