package clipper

import (
	"math"

	"github.com/frudas24/boxclip/internal/geom"
)

// pinchGain scales finger spread change into rectangle growth.
const pinchGain = 3

// pinch holds the two point pairs of a pinch: at gesture start and now.
type pinch struct {
	origin, origin2 geom.Point
	p, p2           geom.Point
}

// spread returns the per-axis distance between two contacts.
func spread(a, b geom.Point) geom.Point {
	return geom.Point{X: math.Abs(b.X - a.X), Y: math.Abs(b.Y - a.Y)}
}

// resizePinch scales start about its center by the change in finger spread.
//
// The result is computed from the rectangle at gesture start, because the
// spread is measured against the start as well. With no configured ratio the
// start rectangle's own shape is kept. The result is fitted inside bound.
func resizePinch(start, bound geom.Rect, cfg Config, pc pinch) (geom.Rect, bool) {
	ratio := cfg.AspectRatio
	if ratio == 0 {
		if start.Width() <= 0 || start.Height() <= 0 {
			return start, false
		}
		ratio = start.Height() / start.Width()
	}

	before := spread(pc.origin, pc.origin2)
	after := spread(pc.p, pc.p2)
	growX := math.Abs(after.X-before.X) * pinchGain
	growY := math.Abs(after.Y-before.Y) * pinchGain
	minW, minH := cfg.floors(ratio)

	var w, h float64
	if growX >= growY {
		w = start.Width()
		if after.X >= before.X {
			w += growX
		} else {
			w = max(w-growX, min(w, minW))
		}
		h = w * ratio
	} else {
		h = start.Height()
		if after.Y >= before.Y {
			h += growY
		} else {
			h = max(h-growY, min(h, minH))
		}
		w = h / ratio
	}

	c := start.Center()
	out := geom.Rect{X1: c.X - w/2, Y1: c.Y - h/2, X2: c.X + w/2, Y2: c.Y + h/2}
	return fitInto(out, bound), true
}

// fitInto scales r down about its center until it fits bound, keeping its
// shape, then shifts it inside.
func fitInto(r, bound geom.Rect) geom.Rect {
	w, h := r.Width(), r.Height()
	s := 1.0
	if w > bound.Width() && w > 0 {
		s = bound.Width() / w
	}
	if h > bound.Height() && h > 0 {
		s = min(s, bound.Height()/h)
	}
	if s < 1 {
		c := r.Center()
		w, h = w*s, h*s
		r = geom.Rect{X1: c.X - w/2, Y1: c.Y - h/2, X2: c.X + w/2, Y2: c.Y + h/2}
	}
	return geom.ShiftInto(r, bound)
}
