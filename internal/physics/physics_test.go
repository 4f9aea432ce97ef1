package physics

import "testing"

func TestRectIntersects(t *testing.T) {
	bullet := Rect{X: 100, Y: 50, W: 4, H: 10}

	tests := []struct {
		name   string
		target Rect
		want   bool
	}{
		{"overlapping target", Rect{X: 98, Y: 55, W: 30, H: 30}, true},
		{"target far right", Rect{X: 200, Y: 55, W: 30, H: 30}, false},
		{"touching right edge", Rect{X: 104, Y: 50, W: 30, H: 30}, false},
		{"touching bottom edge", Rect{X: 90, Y: 60, W: 30, H: 30}, false},
		{"containing", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
		{"above", Rect{X: 98, Y: 0, W: 30, H: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bullet.Intersects(tt.target); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.target.Intersects(bullet); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 3, 1, 3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampInside(t *testing.T) {
	r := ClampInside(Rect{X: 790, Y: -20, W: 30, H: 30}, 800, 600)
	if r.X != 770 || r.Y != 0 {
		t.Errorf("ClampInside = (%v, %v), want (770, 0)", r.X, r.Y)
	}
}
