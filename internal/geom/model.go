// Package geom holds the rectangle model shared by the clip engine and its callers.
package geom

// Point is a position in container coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an edge-addressed rectangle: left/top/right/bottom relative to the
// container's top-left corner. It is used both for the clip rectangle and for
// the bound it must stay inside.
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Normalize returns a rectangle with X1 <= X2 and Y1 <= Y2.
func Normalize(r Rect) Rect {
	if r.X2 < r.X1 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y2 < r.Y1 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
func Contains(r Rect, p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Within reports whether inner lies entirely inside outer (edges inclusive).
func Within(inner, outer Rect) bool {
	return inner.X1 >= outer.X1 && inner.Y1 >= outer.Y1 && inner.X2 <= outer.X2 && inner.Y2 <= outer.Y2
}

// ClampInto clamps every edge of r into bound independently.
func ClampInto(r, bound Rect) Rect {
	r.X1 = clamp(r.X1, bound.X1, bound.X2)
	r.X2 = clamp(r.X2, bound.X1, bound.X2)
	r.Y1 = clamp(r.Y1, bound.Y1, bound.Y2)
	r.Y2 = clamp(r.Y2, bound.Y1, bound.Y2)
	return r
}

// ShiftInto translates r so it lies inside bound without changing its size.
// A rectangle larger than bound on an axis is aligned to the bound's low edge.
func ShiftInto(r, bound Rect) Rect {
	if r.X2 > bound.X2 {
		d := r.X2 - bound.X2
		r.X1 -= d
		r.X2 -= d
	}
	if r.X1 < bound.X1 {
		d := bound.X1 - r.X1
		r.X1 += d
		r.X2 += d
	}
	if r.Y2 > bound.Y2 {
		d := r.Y2 - bound.Y2
		r.Y1 -= d
		r.Y2 -= d
	}
	if r.Y1 < bound.Y1 {
		d := bound.Y1 - r.Y1
		r.Y1 += d
		r.Y2 += d
	}
	return r
}

// clamp bounds v to [lo..hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
