package clipper

import (
	"math"

	"github.com/frudas24/boxclip/internal/geom"
)

// resizeFree moves the grabbed edges of clip by delta without a fixed shape.
//
// Edges are taken from the anchor before the update. Growing edges stop at
// bound, shrinking edges stop at the minimum size with the opposite edge held,
// and an interior drag translates the rectangle with its leading edge
// stopping at bound. Both axes are always committed together.
func resizeFree(clip, bound geom.Rect, cfg Config, anchor, delta geom.Point) geom.Rect {
	h := classify(clip, anchor, cfg.HandleRadius)
	dir := directionOf(delta)
	dx := math.Abs(delta.X)
	dy := math.Abs(delta.Y)
	out := clip

	switch dir.h {
	case dirPositive:
		switch {
		case h.hasLeft():
			out.X1 = clip.X1 + dx
			if out.X2-out.X1 < cfg.MinWidth {
				out.X1 = out.X2 - cfg.MinWidth
			}
		case h.hasRight():
			out.X2 = min(clip.X2+dx, bound.X2)
		case h == HandleInterior:
			out.X2 = min(clip.X2+dx, bound.X2)
			out.X1 = out.X2 - clip.Width()
		}
	case dirNegative:
		switch {
		case h.hasLeft():
			out.X1 = max(clip.X1-dx, bound.X1)
		case h.hasRight():
			out.X2 = clip.X2 - dx
			if out.X2-out.X1 < cfg.MinWidth {
				out.X2 = out.X1 + cfg.MinWidth
			}
		case h == HandleInterior:
			out.X1 = max(clip.X1-dx, bound.X1)
			out.X2 = out.X1 + clip.Width()
		}
	}

	switch dir.v {
	case dirNegative:
		switch {
		case h.hasTop():
			out.Y1 = max(clip.Y1-dy, bound.Y1)
		case h.hasBottom():
			out.Y2 = clip.Y2 - dy
			if out.Y2-out.Y1 < cfg.MinHeight {
				out.Y2 = out.Y1 + cfg.MinHeight
			}
		case h == HandleInterior:
			out.Y1 = max(clip.Y1-dy, bound.Y1)
			out.Y2 = out.Y1 + clip.Height()
		}
	case dirPositive:
		switch {
		case h.hasTop():
			out.Y1 = clip.Y1 + dy
			if out.Y2-out.Y1 < cfg.MinHeight {
				out.Y1 = out.Y2 - cfg.MinHeight
			}
		case h.hasBottom():
			out.Y2 = min(clip.Y2+dy, bound.Y2)
		case h == HandleInterior:
			out.Y2 = min(clip.Y2+dy, bound.Y2)
			out.Y1 = out.Y2 - clip.Height()
		}
	}

	// Saturates at the bound when the minimum does not fit inside it.
	return geom.ClampInto(out, bound)
}
