package canvas

import (
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/metrics"
)

func countOpaque(c *Context) int {
	img := c.Image()
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	dc := New(100, 100)
	dc.SetFillStyle(color.NRGBA{R: 0xFF, A: 0xFF})
	dc.BeginPath()
	dc.Rect(10, 10, 30, 20)
	dc.Fill()

	if got := dc.Image().RGBAAt(20, 15); got.R == 0 {
		t.Errorf("pixel inside rect = %v, want red", got)
	}
	if got := dc.Image().RGBAAt(80, 80); got != (color.RGBA{}) {
		t.Errorf("pixel outside rect = %v, want empty", got)
	}
}

func TestFillRespectsTransform(t *testing.T) {
	dc := New(100, 100)
	dc.Translate(50, 50)
	dc.Rotate(math.Pi / 4)
	dc.SetFillStyle(color.White)
	dc.BeginPath()
	dc.Rect(-10, -10, 20, 20)
	dc.Fill()

	if got := dc.Image().RGBAAt(50, 50); got.A == 0 {
		t.Error("center pixel empty after transformed fill")
	}
	// The rotated square's original corner (60, 60) is now outside.
	if got := dc.Image().RGBAAt(60, 60); got.A != 0 {
		t.Errorf("corner pixel = %v, want empty after 45 degree rotation", got)
	}
}

func TestStrokeCircle(t *testing.T) {
	dc := New(100, 100)
	dc.SetStrokeStyle(color.White)
	dc.SetLineWidth(2)
	dc.BeginPath()
	dc.Arc(50, 50, 30, 0, 2*math.Pi, false)
	dc.Stroke()

	if got := dc.Image().RGBAAt(80, 50); got.A == 0 {
		t.Error("pixel on circle empty")
	}
	if got := dc.Image().RGBAAt(50, 50); got.A != 0 {
		t.Errorf("circle center = %v, want empty for a stroked circle", got)
	}
}

func TestSaveRestoreState(t *testing.T) {
	dc := New(50, 50)
	dc.Save()
	dc.Translate(10, 20)
	dc.SetFillStyle(color.White)
	dc.Restore()

	if !dc.Matrix().IsIdentity() {
		t.Errorf("matrix after restore = %+v, want identity", dc.Matrix())
	}
	// Restore with an empty stack is a no-op.
	dc.Restore()
	dc.Restore()
}

func TestFillTextDrawsPixels(t *testing.T) {
	dc := New(200, 100)
	if err := dc.LoadFont(goregular.TTF); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	dc.SetFont(metrics.Descriptor{Family: "Go", Size: 32})
	dc.SetFillStyle(color.White)
	dc.FillText("Hi", 50, 60)

	if countOpaque(dc) == 0 {
		t.Fatal("FillText drew no pixels")
	}
}

func TestFillTextWithoutFontIsNoop(t *testing.T) {
	dc := New(50, 50)
	dc.SetFillStyle(color.White)
	dc.FillText("Hi", 10, 25)
	if countOpaque(dc) != 0 {
		t.Error("FillText without a loaded font drew pixels")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	dc := New(10, 10)
	if err := dc.LoadFont([]byte("garbage")); err == nil {
		t.Error("LoadFont(garbage) expected error")
	}
}

func TestCurvedTextEndToEnd(t *testing.T) {
	provider, err := metrics.NewOpenTypeProvider(goregular.TTF)
	if err != nil {
		t.Fatalf("NewOpenTypeProvider: %v", err)
	}
	shape := arctext.New(provider,
		arctext.WithText("CURVED"),
		arctext.WithFontFamily("Go"),
		arctext.WithFontSize(24),
		arctext.WithCurveRadius(80),
		arctext.WithCurveDirection(1),
		arctext.WithFill(color.White),
		arctext.WithShowCurvePath(true))

	dc := New(400, 300)
	if err := dc.LoadFont(goregular.TTF); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	// Center the shape on the surface.
	dc.Translate(200-shape.Width()/2, 150-shape.Height()/2)
	shape.Draw(dc)

	if countOpaque(dc) == 0 {
		t.Fatal("curved text render produced an empty image")
	}

	// Hit region painting fills the shape's box.
	hit := New(400, 300)
	hit.Translate(200-shape.Width()/2, 150-shape.Height()/2)
	shape.DrawHit(hit)
	if countOpaque(hit) == 0 {
		t.Fatal("hit render produced an empty image")
	}
}
