package clipper

import (
	"context"
	"log/slog"

	"github.com/frudas24/boxclip/internal/geom"
)

// Engine resolves gestures against one clip rectangle.
//
// An Engine is not safe for concurrent use; it serves one gesture at a time.
// Use one Engine per rectangle.
type Engine struct {
	cfg      Config
	clip     geom.Rect
	bound    geom.Rect
	hasRects bool
	sess     *gesture
}

// New returns an engine with a validated configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Configure replaces the configuration between gestures.
func (e *Engine) Configure(cfg Config) error {
	if e.sess != nil {
		return ErrGestureActive
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

// SetRects sets the clip rectangle and the bound it must stay in. Any
// gesture in flight is dropped, since its anchors refer to the old clip.
func (e *Engine) SetRects(clip, bound geom.Rect) {
	e.clip = geom.Normalize(clip)
	e.bound = geom.Normalize(bound)
	e.hasRects = true
	e.sess = nil
}

// Rect returns the current clip rectangle, if one was set.
func (e *Engine) Rect() (geom.Rect, bool) {
	return e.clip, e.hasRects
}

// Bound returns the current bound, if one was set.
func (e *Engine) Bound() (geom.Rect, bool) {
	return e.bound, e.hasRects
}

// Active reports whether a gesture is in flight.
func (e *Engine) Active() bool {
	return e.sess != nil
}

// StartGesture begins a gesture at p, with p2 as an optional second contact.
// Without rectangles there is nothing to manipulate and no gesture starts.
// It returns the handle grabbed at p.
func (e *Engine) StartGesture(p geom.Point, p2 *geom.Point) Handle {
	if !e.hasRects {
		e.sess = nil
		logger().Debug("clipper: start ignored", "reason", "no rects")
		return HandleNone
	}
	e.sess = newGesture(p, p2, e.clip, e.cfg.HandleRadius)
	return e.sess.handle
}

// MoveGesture applies one gesture update and returns the clip rectangle.
// The boolean is false when nothing was applied: no gesture, no rectangles,
// or a movement the active strategy ignores.
func (e *Engine) MoveGesture(p geom.Point, p2 *geom.Point) (geom.Rect, bool) {
	if e.sess == nil || !e.hasRects {
		return e.clip, false
	}
	s := e.sess
	anchor := s.anchor
	delta := s.update(p, p2, e.clip)

	var (
		out      geom.Rect
		applied  bool
		strategy string
	)
	switch {
	case p2 != nil:
		strategy = "pinch"
		out, applied = resizePinch(s.start, e.bound, e.cfg, pinch{
			origin:  s.origin,
			origin2: s.origin2,
			p:       p,
			p2:      *p2,
		})
	case e.cfg.AspectRatio > 0:
		strategy = "ratio"
		out, applied = resizeRatio(e.clip, e.cfg, s.handle, delta)
	default:
		strategy = "free"
		out = resizeFree(e.clip, e.bound, e.cfg, anchor, delta)
		applied = true
	}

	if l := logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("clipper: move", "strategy", strategy, "applied", applied, "dx", delta.X, "dy", delta.Y, "handle", s.handle.String())
	}
	e.clip = out
	return out, applied
}

// EndGesture releases the gesture. It is safe to call at any time.
func (e *Engine) EndGesture() {
	e.sess = nil
}

// CancelGesture ends the gesture and restores the clip rectangle it started
// from. Without a gesture it returns the current rectangle.
func (e *Engine) CancelGesture() geom.Rect {
	if e.sess != nil {
		e.clip = e.sess.before
		e.sess = nil
	}
	return e.clip
}

// RemapForRotation relabels the edges of r for the configured rotation.
func (e *Engine) RemapForRotation(r geom.Rect) geom.Rect {
	return geom.Remap(r, e.cfg.Rotation)
}

// HitTest reports which handle a gesture starting at p would grab, the same
// one StartGesture returns. Points farther than the handle radius outside the
// rectangle grab nothing.
func (e *Engine) HitTest(p geom.Point) Handle {
	if !e.hasRects {
		return HandleNone
	}
	return zoneAt(e.clip, p, e.cfg.HandleRadius)
}
