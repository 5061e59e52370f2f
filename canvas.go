package arctext

import (
	"image/color"

	"github.com/gogpu/arctext/metrics"
)

// TextAlign specifies horizontal text alignment for Canvas text calls.
type TextAlign int

const (
	// AlignLeft anchors text at its left edge.
	AlignLeft TextAlign = iota
	// AlignCenter anchors text at its horizontal center.
	AlignCenter
	// AlignRight anchors text at its right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// TextBaseline specifies vertical text anchoring for Canvas text calls.
type TextBaseline int

const (
	// BaselineAlphabetic anchors text at the alphabetic baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineMiddle anchors text at its vertical center.
	BaselineMiddle
	// BaselineTop anchors text at the top of the em box.
	BaselineTop
	// BaselineBottom anchors text at the bottom of the em box.
	BaselineBottom
)

// String returns the string representation of the baseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineMiddle:
		return "Middle"
	case BaselineTop:
		return "Top"
	case BaselineBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Canvas is the drawing surface the renderer paints onto. It mirrors the
// 2D canvas context primitives the layout engine needs: state stack,
// transforms, path building, painting and text. The engine only ever
// side-effects the Canvas; it never mutates shape state while drawing.
//
// The canvas sub-package provides a reference software implementation
// over an image.RGBA.
type Canvas interface {
	// Save pushes the current drawing state (transform and styles).
	Save()
	// Restore pops the most recently saved drawing state.
	Restore()

	// Translate moves the coordinate origin.
	Translate(x, y float64)
	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// BeginPath starts a new path, discarding any current one.
	BeginPath()
	// ClosePath closes the current subpath.
	ClosePath()
	// Rect appends a rectangle subpath.
	Rect(x, y, w, h float64)
	// Arc appends a circular arc subpath around (x, y).
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)

	// Fill fills the current path with the fill style.
	Fill()
	// Stroke strokes the current path with the stroke style.
	Stroke()

	// FillText fills the string anchored at (x, y) per the current
	// alignment and baseline.
	FillText(s string, x, y float64)
	// StrokeText strokes the string anchored at (x, y).
	StrokeText(s string, x, y float64)

	// SetFillStyle sets the fill color.
	SetFillStyle(c color.Color)
	// SetStrokeStyle sets the stroke color.
	SetStrokeStyle(c color.Color)
	// SetFont configures the font used by FillText and StrokeText.
	SetFont(d metrics.Descriptor)
	// SetTextAlign sets horizontal text alignment.
	SetTextAlign(a TextAlign)
	// SetTextBaseline sets vertical text anchoring.
	SetTextBaseline(b TextBaseline)

	// FillStrokeShape paints the current path with the shape's own fill
	// and stroke. Used for hit-region painting.
	FillStrokeShape(s *CurvedText)
}
