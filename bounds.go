package arctext

import "math"

// reconcileBounds recomputes the shape's bounding box from the placed
// glyph points and repositions the shape so the box stays visually
// anchored after a re-layout.
//
// The box is the axis-aligned hull of all glyph anchor points padded by
// one fontSize per axis, since glyphs have nonzero extent around their
// anchors. Width and height are stored first; the position is then
// shifted by half the delta between the old and new scaled width
// (horizontal centering always applies) and, for negative curve
// directions only, half the delta in scaled height. The delta vector is
// rotated into the shape's own coordinate frame before being applied.
func (s *CurvedText) reconcileBounds(glyphs []PlacedGlyph) {
	var minX, minY, maxX, maxY float64
	for i, g := range glyphs {
		if i == 0 {
			minX, maxX = g.X, g.X
			minY, maxY = g.Y, g.Y
			continue
		}
		minX = math.Min(minX, g.X)
		maxX = math.Max(maxX, g.X)
		minY = math.Min(minY, g.Y)
		maxY = math.Max(maxY, g.Y)
	}

	oldWidth := s.width * s.scaleX
	oldHeight := s.height * s.scaleY

	s.width = maxX - minX + s.fontSize
	s.height = maxY - minY + s.fontSize

	dx := (oldWidth - s.width*s.scaleX) / 2
	dy := 0.0
	if s.curveDirection < 0 {
		dy = (oldHeight - s.height*s.scaleY) / 2
	}

	delta := Rotate(s.rotationDegrees * math.Pi / 180).TransformVector(Pt(dx, dy))
	s.x += delta.X
	s.y += delta.Y
}
