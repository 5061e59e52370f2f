package arctext

import (
	"image/color"
	"math"
)

// editingFill is the fixed translucent gray used while the shape is in
// editing mode, replacing the configured fill.
var editingFill = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}

// guideAccent is the fixed accent color of the diagnostic guide circle.
var guideAccent = color.NRGBA{R: 0xFF, A: 0xFF}

// guideDotRadius is the radius of the dot marking the guide center.
const guideDotRadius = 3.0

// Draw renders every placed glyph of the cached layout onto c, then the
// guide circle when enabled. Draw only side-effects the canvas; the
// shape is never mutated during a paint.
//
// Each glyph is drawn in its own saved canvas state: translate to the
// glyph's arc position (x shifted by half the shape width, y anchored to
// the top or bottom of the box depending on curve direction), rotate by
// the glyph's tangent angle, paint centered at the local origin.
func (s *CurvedText) Draw(c Canvas) {
	layout := s.layout
	if layout == nil {
		return
	}

	c.SetFont(s.Descriptor())
	c.SetTextAlign(AlignCenter)
	c.SetTextBaseline(BaselineMiddle)

	fill := s.fill
	if s.editing {
		fill = editingFill
	}
	c.SetFillStyle(fill)
	if s.stroke != nil {
		c.SetStrokeStyle(s.stroke)
	}

	paint := s.glyphPainter()
	for _, g := range layout.Glyphs {
		c.Save()
		c.Translate(s.width/2+g.X, s.baselineY(g.Y))
		c.Rotate(g.Rotation)
		paint(c, string(g.Glyph))
		c.Restore()
	}

	// Diagnostic overlay, after all glyphs.
	if s.curveRadius != 0 && s.showCurvePath {
		s.drawGuide(c, layout.Guide)
	}
}

// DrawHit paints the shape's hit region: its bounding rectangle via the
// canvas fill-stroke convenience.
func (s *CurvedText) DrawHit(c Canvas) {
	c.BeginPath()
	c.Rect(0, 0, s.width, s.height)
	c.ClosePath()
	c.FillStrokeShape(s)
}

// baselineY anchors a glyph's baseline to the top or bottom of the
// shape's box depending on curve direction.
func (s *CurvedText) baselineY(glyphY float64) float64 {
	if s.curveDirection > 0 {
		return glyphY + s.fontSize/2
	}
	return glyphY + s.height - s.fontSize/2
}

// fillGlyphs paints one glyph with the canvas fill style.
func fillGlyphs(c Canvas, glyph string) {
	c.FillText(glyph, 0, 0)
}

// strokeGlyphs paints one glyph outline with the canvas stroke style.
func strokeGlyphs(c Canvas, glyph string) {
	c.StrokeText(glyph, 0, 0)
}

// glyphPainter selects the glyph painting strategy for the configured
// paint mode.
func (s *CurvedText) glyphPainter() func(Canvas, string) {
	switch s.paintMode {
	case PaintStroke:
		return strokeGlyphs
	case PaintFillStroke:
		return func(c Canvas, glyph string) {
			fillGlyphs(c, glyph)
			strokeGlyphs(c, glyph)
		}
	default:
		return fillGlyphs
	}
}

// drawGuide strokes the full layout circle and fills a small dot at its
// center, using the same coordinate mapping as the glyphs.
func (s *CurvedText) drawGuide(c Canvas, guide CurveGeometry) {
	cx := s.width/2 + guide.CenterX
	cy := s.baselineY(guide.CenterY)

	c.Save()
	c.SetStrokeStyle(guideAccent)
	c.BeginPath()
	c.Arc(cx, cy, guide.Radius, 0, 2*math.Pi, false)
	c.Stroke()

	c.SetFillStyle(guideAccent)
	c.BeginPath()
	c.Arc(cx, cy, guideDotRadius, 0, 2*math.Pi, false)
	c.Fill()
	c.Restore()
}
