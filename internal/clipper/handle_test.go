package clipper

import (
	"testing"

	"github.com/frudas24/boxclip/internal/geom"
)

// TestClassify_OvershootKeepsEdge verifies a point beyond an edge still holds it.
func TestClassify_OvershootKeepsEdge(t *testing.T) {
	r := geom.Rect{X1: 100, Y1: 100, X2: 300, Y2: 300}
	if h := classify(r, pt(600, 200), 10); h != HandleRight {
		t.Fatalf("expected right, got %s", h)
	}
	if h := classify(r, pt(-50, -50), 10); h != HandleTopLeft {
		t.Fatalf("expected top-left, got %s", h)
	}
}

// TestClassify_NarrowRectPrefersLeftAndTop verifies tie-breaking when opposite edges are both in reach.
func TestClassify_NarrowRectPrefersLeftAndTop(t *testing.T) {
	r := geom.Rect{X1: 100, Y1: 100, X2: 110, Y2: 300}
	if h := classify(r, pt(105, 200), 10); h != HandleLeft {
		t.Fatalf("expected left, got %s", h)
	}
	r = geom.Rect{X1: 100, Y1: 100, X2: 300, Y2: 110}
	if h := classify(r, pt(200, 105), 10); h != HandleTop {
		t.Fatalf("expected top, got %s", h)
	}
}

// TestDirectionOf_Composes verifies both axes are classified independently.
func TestDirectionOf_Composes(t *testing.T) {
	d := directionOf(pt(3, -1))
	if d.h != dirPositive || d.v != dirNegative {
		t.Fatalf("unexpected direction %+v", d)
	}
	if d := directionOf(pt(0, 0)); d.h != dirNone || d.v != dirNone {
		t.Fatalf("expected no direction, got %+v", d)
	}
}

// TestHandle_String verifies wire names.
func TestHandle_String(t *testing.T) {
	if HandleBottomLeft.String() != "bottom-left" || HandleInterior.String() != "interior" {
		t.Fatalf("unexpected names %q %q", HandleBottomLeft, HandleInterior)
	}
	if Handle(200).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range handle")
	}
}

// TestZoneAt_TwoSided verifies start zones need the pointer within radius of an edge on either side.
func TestZoneAt_TwoSided(t *testing.T) {
	r := geom.Rect{X1: 100, Y1: 100, X2: 300, Y2: 300}
	cases := []struct {
		p    geom.Point
		want Handle
	}{
		{pt(0, 0), HandleNone},
		{pt(92, 95), HandleTopLeft},
		{pt(108, 108), HandleTopLeft},
		{pt(308, 200), HandleRight},
		{pt(150, 250), HandleInterior},
		{pt(400, 200), HandleNone},
	}
	for _, tc := range cases {
		if got := zoneAt(r, tc.p, 10); got != tc.want {
			t.Fatalf("zoneAt(%+v): expected %s, got %s", tc.p, tc.want, got)
		}
	}
}
