package geom

import "testing"

// TestNormalize_Ordered verifies Normalize keeps ordered edges intact.
func TestNormalize_Ordered(t *testing.T) {
	in := Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}
	if out := Normalize(in); out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestNormalize_Swapped verifies Normalize swaps inverted edges.
func TestNormalize_Swapped(t *testing.T) {
	out := Normalize(Rect{X1: 10, Y1: 20, X2: 5, Y2: 14})
	want := Rect{X1: 5, Y1: 14, X2: 10, Y2: 20}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}

// TestContains_Edges verifies edges are treated as inside the rect.
func TestContains_Edges(t *testing.T) {
	r := Rect{X1: 10, Y1: 20, X2: 15, Y2: 24}
	if !Contains(r, Point{X: 10, Y: 20}) || !Contains(r, Point{X: 15, Y: 24}) {
		t.Fatalf("expected corners to be inside rect")
	}
	if Contains(r, Point{X: 9, Y: 20}) || Contains(r, Point{X: 16, Y: 25}) {
		t.Fatalf("expected point to be outside rect")
	}
}

// TestClampInto_ClampsEachEdge verifies edges are clamped independently.
func TestClampInto_ClampsEachEdge(t *testing.T) {
	bound := Rect{X1: 0, Y1: 0, X2: 100, Y2: 100}
	out := ClampInto(Rect{X1: -10, Y1: 20, X2: 130, Y2: 50}, bound)
	want := Rect{X1: 0, Y1: 20, X2: 100, Y2: 50}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}

// TestShiftInto_PreservesSize verifies shifting keeps width and height.
func TestShiftInto_PreservesSize(t *testing.T) {
	bound := Rect{X1: 0, Y1: 0, X2: 100, Y2: 100}
	out := ShiftInto(Rect{X1: 80, Y1: -10, X2: 120, Y2: 30}, bound)
	want := Rect{X1: 60, Y1: 0, X2: 100, Y2: 40}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
	if !Within(out, bound) {
		t.Fatalf("expected %+v within %+v", out, bound)
	}
}

// TestRect_Dimensions verifies width, height and center helpers.
func TestRect_Dimensions(t *testing.T) {
	r := Rect{X1: 100, Y1: 100, X2: 300, Y2: 220}
	if r.Width() != 200 || r.Height() != 120 {
		t.Fatalf("expected 200x120, got %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != (Point{X: 200, Y: 160}) {
		t.Fatalf("expected center (200,160), got %+v", c)
	}
	if r.Empty() || !(Rect{X1: 5, X2: 5, Y2: 10}).Empty() {
		t.Fatalf("unexpected Empty result")
	}
}
