package clipper

import (
	"math"

	"github.com/frudas24/boxclip/internal/geom"
)

// Handle identifies the part of the clip rectangle a gesture manipulates.
type Handle uint8

const (
	// HandleNone means no rectangle is available to manipulate.
	HandleNone Handle = iota
	// HandleInterior moves the whole rectangle.
	HandleInterior
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	HandleTopLeft
)

var handleNames = [...]string{
	HandleNone:        "none",
	HandleInterior:    "interior",
	HandleTop:         "top",
	HandleTopRight:    "top-right",
	HandleRight:       "right",
	HandleBottomRight: "bottom-right",
	HandleBottom:      "bottom",
	HandleBottomLeft:  "bottom-left",
	HandleLeft:        "left",
	HandleTopLeft:     "top-left",
}

// String returns the wire name of the handle.
func (h Handle) String() string {
	if int(h) < len(handleNames) {
		return handleNames[h]
	}
	return "unknown"
}

// Corner reports whether h is one of the four corners.
func (h Handle) Corner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	default:
		return false
	}
}

// hasLeft reports whether h moves the left edge.
func (h Handle) hasLeft() bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

// hasRight reports whether h moves the right edge.
func (h Handle) hasRight() bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

// hasTop reports whether h moves the top edge.
func (h Handle) hasTop() bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

// hasBottom reports whether h moves the bottom edge.
func (h Handle) hasBottom() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// grab holds which edges lie within reach of a pointer.
type grab struct {
	left, top, right, bottom bool
}

// reach reports, per edge, whether p is no further than radius inside it.
// A point beyond an edge keeps holding it, so a drag that overshoots a clamp
// does not fall back to moving the whole rectangle.
func reach(r geom.Rect, p geom.Point, radius float64) grab {
	return grab{
		left:   p.X-r.X1 <= radius,
		top:    p.Y-r.Y1 <= radius,
		right:  r.X2-p.X <= radius,
		bottom: r.Y2-p.Y <= radius,
	}
}

// near reports, per edge, whether p lies within radius of it on either side.
func near(r geom.Rect, p geom.Point, radius float64) grab {
	return grab{
		left:   math.Abs(p.X-r.X1) <= radius,
		top:    math.Abs(p.Y-r.Y1) <= radius,
		right:  math.Abs(r.X2-p.X) <= radius,
		bottom: math.Abs(r.Y2-p.Y) <= radius,
	}
}

// handle folds the grabbed edges into a zone. Left wins over right and top
// over bottom when a narrow rectangle puts both within reach.
func (g grab) handle() Handle {
	switch {
	case g.left && g.top:
		return HandleTopLeft
	case g.left && g.bottom:
		return HandleBottomLeft
	case g.right && g.top:
		return HandleTopRight
	case g.right && g.bottom:
		return HandleBottomRight
	case g.left:
		return HandleLeft
	case g.right:
		return HandleRight
	case g.top:
		return HandleTop
	case g.bottom:
		return HandleBottom
	default:
		return HandleInterior
	}
}

// classify returns the zone of r held by a pointer at p while dragging.
func classify(r geom.Rect, p geom.Point, radius float64) Handle {
	return reach(r, p, radius).handle()
}

// zoneAt returns the zone of r a gesture starting at p grabs. Edges are
// grabbed only within radius on either side; farther out nothing is.
func zoneAt(r geom.Rect, p geom.Point, radius float64) Handle {
	reachable := geom.Rect{X1: r.X1 - radius, Y1: r.Y1 - radius, X2: r.X2 + radius, Y2: r.Y2 + radius}
	if !geom.Contains(reachable, p) {
		return HandleNone
	}
	return near(r, p, radius).handle()
}

// axisDir is the sign of movement along one axis.
type axisDir int8

const (
	dirNone axisDir = iota
	dirPositive
	dirNegative
)

// direction combines the horizontal and vertical movement of one update.
type direction struct {
	h axisDir
	v axisDir
}

// directionOf classifies a delta per axis.
func directionOf(d geom.Point) direction {
	return direction{h: axisOf(d.X), v: axisOf(d.Y)}
}

// axisOf returns the sign of v.
func axisOf(v float64) axisDir {
	switch {
	case v > 0:
		return dirPositive
	case v < 0:
		return dirNegative
	default:
		return dirNone
	}
}
