package clipper

import (
	"math"
	"testing"

	"github.com/frudas24/boxclip/internal/geom"
)

const eps = 1e-6

// newTestEngine returns an engine over clip inside bound with a 60x60 floor and radius 10.
func newTestEngine(t *testing.T, ratio float64, clip, bound geom.Rect) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AspectRatio = ratio
	cfg.HandleRadius = 10
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.SetRects(clip, bound)
	return e
}

// pt is shorthand for a point.
func pt(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

// ptr returns a pointer to a point for second contacts.
func ptr(x, y float64) *geom.Point {
	return &geom.Point{X: x, Y: y}
}

// assertRect fails unless got matches want within eps on every edge.
func assertRect(t *testing.T, want, got geom.Rect) {
	t.Helper()
	if math.Abs(want.X1-got.X1) > eps || math.Abs(want.Y1-got.Y1) > eps ||
		math.Abs(want.X2-got.X2) > eps || math.Abs(want.Y2-got.Y2) > eps {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
