package geom

import "fmt"

// Rotation is a counter-clockwise quarter turn of the displayed image,
// expressed in negative degrees.
type Rotation int

const (
	// Rotate0 leaves edges as stored.
	Rotate0 Rotation = 0
	// Rotate90 is a quarter turn counter-clockwise.
	Rotate90 Rotation = -90
	// Rotate180 is a half turn.
	Rotate180 Rotation = -180
	// Rotate270 is three quarter turns counter-clockwise.
	Rotate270 Rotation = -270
)

// ParseRotation maps any multiple of 90 degrees onto one of the four
// supported rotations (90 becomes -270, 360 becomes 0).
func ParseRotation(deg int) (Rotation, error) {
	if deg%90 != 0 {
		return 0, fmt.Errorf("rotation %d is not a multiple of 90", deg)
	}
	n := deg % 360
	if n > 0 {
		n -= 360
	}
	return Rotation(n), nil
}

// Valid reports whether r is one of the four supported rotations.
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	default:
		return false
	}
}

// Remap relabels the edges of r so that the edge the user sees as top after
// the rotation addresses the matching stored edge. Unsupported rotations
// return r unchanged.
func Remap(r Rect, rot Rotation) Rect {
	top, left, bottom, right := r.Y1, r.X1, r.Y2, r.X2
	switch rot {
	case Rotate90:
		top, left, bottom, right = left, bottom, right, top
	case Rotate180:
		top, left, bottom, right = bottom, right, top, left
	case Rotate270:
		top, left, bottom, right = right, top, left, bottom
	}
	return Rect{X1: left, Y1: top, X2: right, Y2: bottom}
}
