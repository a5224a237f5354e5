package clipper

import (
	"math"

	"github.com/frudas24/boxclip/internal/geom"
)

// resizeRatio drags one corner of clip while keeping height = width * ratio.
//
// The axis with the larger movement drives the resize; the other dimension
// is derived from it and realised by moving the grabbed corner's edge on the
// secondary axis. The opposite corner stays fixed. Only corners respond.
func resizeRatio(clip geom.Rect, cfg Config, h Handle, delta geom.Point) (geom.Rect, bool) {
	if !h.Corner() || cfg.AspectRatio <= 0 {
		return clip, false
	}
	if delta.X == 0 && delta.Y == 0 {
		return clip, false
	}

	ratio := cfg.AspectRatio
	minW, minH := cfg.floors(ratio)
	out := clip

	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		var w float64
		if h.hasLeft() {
			out.X1 += delta.X
			if w = out.X2 - out.X1; w < minW {
				w = minW
				out.X1 = out.X2 - w
			}
		} else {
			out.X2 += delta.X
			if w = out.X2 - out.X1; w < minW {
				w = minW
				out.X2 = out.X1 + w
			}
		}
		height := w * ratio
		if h.hasTop() {
			out.Y1 = out.Y2 - height
		} else {
			out.Y2 = out.Y1 + height
		}
		return out, true
	}

	var height float64
	if h.hasTop() {
		out.Y1 += delta.Y
		if height = out.Y2 - out.Y1; height < minH {
			height = minH
			out.Y1 = out.Y2 - height
		}
	} else {
		out.Y2 += delta.Y
		if height = out.Y2 - out.Y1; height < minH {
			height = minH
			out.Y2 = out.Y1 + height
		}
	}
	w := height / ratio
	if h.hasLeft() {
		out.X1 = out.X2 - w
	} else {
		out.X2 = out.X1 + w
	}
	return out, true
}
