package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{15, 15}, true},
		{"top-left corner", Point{10, 10}, true},
		{"bottom-right edge (exclusive)", Point{30, 25}, false},
		{"outside left", Point{5, 15}, false},
		{"outside top", Point{15, 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 1, Y: 2}.Add(3, -4)
	if p != (Point{X: 4, Y: -2}) {
		t.Errorf("Add = %v", p)
	}
}

func TestColorValid(t *testing.T) {
	if !ColorGray.Valid() || !ColorDefault.Valid() {
		t.Error("declared colors should be valid")
	}
	if Color(200).Valid() {
		t.Error("Color(200) should be invalid")
	}
}
