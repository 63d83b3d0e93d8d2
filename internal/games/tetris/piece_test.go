package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestNewPieceHasFourDistinctCells(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k)
		seen := map[core.Point]bool{}
		for _, c := range p.Cells {
			seen[c] = true
		}
		if len(seen) != 4 {
			t.Errorf("%v: expected 4 distinct cells, got %v", k, p.Cells)
		}
		if p.Color == core.ColorDefault {
			t.Errorf("%v: color must not be the empty tag", k)
		}
	}
}

func TestRotateOIsNoOp(t *testing.T) {
	p := NewPiece(KindO)
	r := p
	for i := 1; i <= 4; i++ {
		r = r.Rotate()
		if r != p {
			t.Errorf("O after %d rotations = %v, expected %v", i, r.Cells, p.Cells)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		if k == KindO {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k)
			r := p.Rotate().Rotate().Rotate().Rotate()
			if !r.SameCells(p) {
				t.Errorf("after 4 rotations got %v, expected %v", r.Cells, p.Cells)
			}

			// Intermediate states must differ from the start.
			if p.Rotate().SameCells(p) {
				t.Errorf("single rotation should change the cells of %v", k)
			}
		})
	}
}

func TestRotateKeepsFourDistinctCells(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k)
		for i := 0; i < 8; i++ {
			p = p.Rotate()
			seen := map[core.Point]bool{}
			for _, c := range p.Cells {
				seen[c] = true
			}
			if len(seen) != 4 {
				t.Fatalf("%v rotation %d collapsed cells: %v", k, i+1, p.Cells)
			}
		}
	}
}

func TestRotateFromBaseUsesBoundingBoxCenter(t *testing.T) {
	for _, k := range []Kind{KindS, KindZ, KindL, KindJ, KindT} {
		p := NewPiece(k)
		center := boundsCenter(p.Cells)

		var want [4]core.Point
		for i, c := range p.Cells {
			want[i] = core.Point{
				X: center.X + (c.Y - center.Y),
				Y: center.Y - (c.X - center.X),
			}
		}

		if got := p.Rotate().Cells; got != want {
			t.Errorf("%v: Rotate() = %v, expected %v", k, got, want)
		}
	}
}

func TestRotateIAboutFixedPivot(t *testing.T) {
	p := NewPiece(KindI)

	horizontal := p.Rotate()
	want := [4]core.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	if horizontal.Cells != want {
		t.Errorf("I rotated once = %v, expected %v", horizontal.Cells, want)
	}

	want = [4]core.Point{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: -1}}
	if got := horizontal.Rotate().Cells; got != want {
		t.Errorf("I rotated twice = %v, expected %v", got, want)
	}
}

func TestGlobalCells(t *testing.T) {
	p := NewPiece(KindT)
	got := p.GlobalCells(4, 7)
	want := [4]core.Point{{X: 4, Y: 7}, {X: 5, Y: 7}, {X: 6, Y: 7}, {X: 5, Y: 8}}
	if got != want {
		t.Errorf("GlobalCells(4, 7) = %v, expected %v", got, want)
	}
	if p.Cells != NewPiece(KindT).Cells {
		t.Error("GlobalCells must not modify the piece")
	}
}

func TestFloorHalf(t *testing.T) {
	tests := []struct{ in, want int }{
		{-4, -2},
		{-3, -2},
		{-1, -1},
		{0, 0},
		{1, 0},
		{3, 1},
	}
	for _, tc := range tests {
		if got := floorHalf(tc.in); got != tc.want {
			t.Errorf("floorHalf(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestShapeUnknownKindFallsBack(t *testing.T) {
	if Shape(Kind(42)) != Shape(KindO) {
		t.Error("unknown kind should fall back to O")
	}
	if Kind(42).String() != "?" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
