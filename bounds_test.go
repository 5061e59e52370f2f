package arctext

import (
	"math"
	"testing"
)

func TestBoundsEmptyTextPaddingOnly(t *testing.T) {
	s := New(newStub(), WithText(""), WithFontSize(12), WithCurveRadius(100))
	if s.Width() != 12 {
		t.Errorf("width = %v, want exactly one fontSize", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("height = %v, want exactly one fontSize", s.Height())
	}
}

func TestBoundsFontSizeMonotonicity(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		direction float64
	}{
		{"curved up", 100, 1},
		{"curved down", 100, -1},
		{"flattened", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevW, prevH := 0.0, 0.0
			for _, size := range []float64{8, 12, 16, 24, 48} {
				s := New(newStub(),
					WithText("ABiV"),
					WithFontSize(size),
					WithCurveRadius(tt.radius),
					WithCurveDirection(tt.direction))
				if s.Width() < prevW {
					t.Errorf("size %v: width %v decreased from %v", size, s.Width(), prevW)
				}
				if s.Height() < prevH {
					t.Errorf("size %v: height %v decreased from %v", size, s.Height(), prevH)
				}
				prevW, prevH = s.Width(), s.Height()
			}
		})
	}
}

func TestBoundsHorizontalCenteringOnTextChange(t *testing.T) {
	s := New(newStub(), WithText("AB"), WithFontSize(12), WithCurveRadius(100))
	x0, y0 := s.Position()
	w0 := s.Width()

	s.SetText("ABAB")
	x1, y1 := s.Position()
	w1 := s.Width()

	// The box grew; the anchor must shift left by half the growth so the
	// shape stays visually centered.
	wantDX := (w0 - w1) / 2
	if math.Abs((x1-x0)-wantDX) > 1e-9 {
		t.Errorf("x delta = %v, want %v", x1-x0, wantDX)
	}
	// Positive direction: no vertical re-anchoring.
	if y1 != y0 {
		t.Errorf("y moved by %v for positive direction, want 0", y1-y0)
	}
}

func TestBoundsVerticalAnchoringNegativeDirection(t *testing.T) {
	s := New(newStub(),
		WithText("AB"), WithFontSize(12),
		WithCurveRadius(100), WithCurveDirection(-1))
	_, y0 := s.Position()
	h0 := s.Height()

	s.SetText("ABABABAB")
	_, y1 := s.Position()
	h1 := s.Height()

	if h1 <= h0 {
		t.Fatalf("expected the longer arc to grow the box, %v <= %v", h1, h0)
	}
	wantDY := (h0 - h1) / 2
	if math.Abs((y1-y0)-wantDY) > 1e-9 {
		t.Errorf("y delta = %v, want %v", y1-y0, wantDY)
	}
}

func TestBoundsDeltaRotatedIntoShapeFrame(t *testing.T) {
	// With the shape rotated 90 degrees, a horizontal centering delta
	// must be applied along the world y axis.
	s := New(newStub(),
		WithText("AB"), WithFontSize(12),
		WithCurveRadius(100), WithRotation(90))
	x0, y0 := s.Position()
	w0 := s.Width()

	s.SetText("ABAB")
	x1, y1 := s.Position()
	w1 := s.Width()

	dx := (w0 - w1) / 2
	if math.Abs(x1-x0) > 1e-9 {
		t.Errorf("x moved by %v, want 0 under 90 degree rotation", x1-x0)
	}
	if math.Abs((y1-y0)-dx) > 1e-9 {
		t.Errorf("y delta = %v, want rotated delta %v", y1-y0, dx)
	}
}

func TestBoundsScaleAppliedToDelta(t *testing.T) {
	s := New(newStub(),
		WithText("AB"), WithFontSize(12),
		WithCurveRadius(100), WithScale(2, 1))
	x0, _ := s.Position()
	w0 := s.Width()

	s.SetText("ABAB")
	x1, _ := s.Position()
	w1 := s.Width()

	wantDX := (w0*2 - w1*2) / 2
	if math.Abs((x1-x0)-wantDX) > 1e-9 {
		t.Errorf("x delta = %v, want scaled delta %v", x1-x0, wantDX)
	}
}
