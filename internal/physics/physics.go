// Package physics provides collision detection and bounds utilities.
package physics

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether r and o overlap on both axes.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Clamp limits v to the range [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInside moves r so that it lies fully inside a width x height area
// anchored at the origin.
func ClampInside(r Rect, width, height float64) Rect {
	r.X = Clamp(r.X, 0, width-r.W)
	r.Y = Clamp(r.Y, 0, height-r.H)
	return r
}
