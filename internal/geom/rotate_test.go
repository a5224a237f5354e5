package geom

import "testing"

// TestRemap_Rotate0IsIdentity verifies no relabeling happens without rotation.
func TestRemap_Rotate0IsIdentity(t *testing.T) {
	r := Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}
	if out := Remap(r, Rotate0); out != r {
		t.Fatalf("expected %+v, got %+v", r, out)
	}
}

// TestRemap_Quarter verifies the -90 relabeling of each edge.
func TestRemap_Quarter(t *testing.T) {
	r := Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}
	out := Remap(r, Rotate90)
	// top<-left, left<-bottom, bottom<-right, right<-top
	want := Rect{X1: 4, Y1: 1, X2: 2, Y2: 3}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}

// TestRemap_FourQuartersIsIdentity verifies four -90 remaps return the input.
func TestRemap_FourQuartersIsIdentity(t *testing.T) {
	r := Rect{X1: 10.5, Y1: 20, X2: 310, Y2: 444.25}
	out := r
	for i := 0; i < 4; i++ {
		out = Remap(out, Rotate90)
	}
	if out != r {
		t.Fatalf("expected %+v, got %+v", r, out)
	}
}

// TestRemap_ComposesToHalfAndThreeQuarter verifies -90 twice equals -180 and three times equals -270.
func TestRemap_ComposesToHalfAndThreeQuarter(t *testing.T) {
	r := Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}
	twice := Remap(Remap(r, Rotate90), Rotate90)
	if half := Remap(r, Rotate180); twice != half {
		t.Fatalf("expected %+v, got %+v", half, twice)
	}
	thrice := Remap(twice, Rotate90)
	if tq := Remap(r, Rotate270); thrice != tq {
		t.Fatalf("expected %+v, got %+v", tq, thrice)
	}
}

// TestRemap_InvalidRotationIsIdentity verifies unsupported values leave edges untouched.
func TestRemap_InvalidRotationIsIdentity(t *testing.T) {
	r := Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}
	if out := Remap(r, Rotation(-45)); out != r {
		t.Fatalf("expected %+v, got %+v", r, out)
	}
}

// TestParseRotation_Normalizes verifies positive and wrapped degrees map to the supported set.
func TestParseRotation_Normalizes(t *testing.T) {
	cases := map[int]Rotation{
		0:    Rotate0,
		-90:  Rotate90,
		90:   Rotate270,
		180:  Rotate180,
		-180: Rotate180,
		270:  Rotate90,
		360:  Rotate0,
		-450: Rotate90,
	}
	for in, want := range cases {
		got, err := ParseRotation(in)
		if err != nil {
			t.Fatalf("ParseRotation(%d) failed: %v", in, err)
		}
		if got != want || !got.Valid() {
			t.Fatalf("ParseRotation(%d): expected %d, got %d", in, want, got)
		}
	}
	if _, err := ParseRotation(45); err == nil {
		t.Fatalf("expected error for 45 degrees")
	}
}
