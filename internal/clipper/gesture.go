package clipper

import "github.com/frudas24/boxclip/internal/geom"

// gesture tracks the contact points of the gesture in flight.
//
// The anchor rolls on every update so single-finger moves yield the delta
// from the previous event. The origin stays fixed so pinch spread is measured
// from the start of the gesture.
type gesture struct {
	anchor  geom.Point
	origin  geom.Point
	anchor2 geom.Point
	origin2 geom.Point
	second  bool
	// start is the pinch baseline; before is the clip prior to the gesture.
	start  geom.Rect
	before geom.Rect
	handle Handle
}

// newGesture starts tracking a gesture over clip. The handle is fixed here;
// ratio resizes keep it for the whole gesture.
func newGesture(p geom.Point, p2 *geom.Point, clip geom.Rect, radius float64) *gesture {
	s := &gesture{
		anchor: p,
		origin: p,
		start:  clip,
		before: clip,
		handle: zoneAt(clip, p, radius),
	}
	if p2 != nil {
		s.setSecond(*p2)
	}
	return s
}

// setSecond records a second contact as both anchor and origin.
func (s *gesture) setSecond(p2 geom.Point) {
	s.anchor2 = p2
	s.origin2 = p2
	s.second = true
}

// update rolls the anchors forward and returns the primary delta.
// A second contact that appears mid-gesture rebases the pinch on the
// current point pair and clip rectangle; one that lifts ends the pinch.
func (s *gesture) update(p geom.Point, p2 *geom.Point, clip geom.Rect) geom.Point {
	delta := geom.Point{X: p.X - s.anchor.X, Y: p.Y - s.anchor.Y}
	switch {
	case p2 == nil:
		s.second = false
	case !s.second:
		s.origin = p
		s.start = clip
		s.setSecond(*p2)
	default:
		s.anchor2 = *p2
	}
	s.anchor = p
	return delta
}
