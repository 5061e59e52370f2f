package arctext

import (
	"math"

	"github.com/gogpu/arctext/metrics"
)

// flattenRadius substitutes for a zero curve radius. The huge circle
// approximates a straight baseline; a true straight-line formula would
// produce slightly different output, so the constant is kept as-is.
const flattenRadius = 1e6

// PlacedGlyph is one glyph positioned on the arc, relative to the
// circle's local origin. Rotation is applied before drawing the glyph
// centered at (X, Y).
type PlacedGlyph struct {
	X, Y     float64
	Rotation float64
	Glyph    rune
}

// CurveGeometry describes the circle used for layout. Radius is the
// effective layout radius: when the configured curve radius is zero the
// flatten substitute is used here, while the zero value still means
// "no guide circle drawn" at render time.
type CurveGeometry struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// ComputedLayout is the cached result of a layout pass. It is owned by
// the shape that computed it and replaced wholesale on every recompute,
// never patched in place.
type ComputedLayout struct {
	Metrics metrics.GlyphMetrics
	Glyphs  []PlacedGlyph
	Guide   CurveGeometry
}

// mapToArc converts each glyph's linear center offset into a point on a
// circle of the given radius and direction, plus a tangent rotation.
//
// A zero radius selects the flatten substitute and forces all rotations
// to zero (straight-line fallback, no glyph tilt). The circle center
// sits at (0, -r) for direction <= 0 and (0, +r) for direction > 0, so
// text curves upward for positive directions.
func mapToArc(m metrics.GlyphMetrics, radius, direction float64) (CurveGeometry, []PlacedGlyph) {
	flat := radius == 0
	r := radius
	if flat {
		r = flattenRadius
	}
	cy := r
	if direction <= 0 {
		cy = -r
	}
	guide := CurveGeometry{CenterX: 0, CenterY: cy, Radius: r}

	glyphs := m.Glyphs()
	placed := make([]PlacedGlyph, len(glyphs))
	for i, g := range glyphs {
		// Signed linear distance from the text's horizontal center,
		// converted to the arc angle: d*360/(2*pi*r) degrees = d/r radians.
		d := m.XOffsets[i] - m.Width/2
		a := d / r

		var rotation float64
		switch {
		case flat:
			rotation = 0
		case direction > 0:
			rotation = a
		default:
			rotation = -a
		}

		placed[i] = PlacedGlyph{
			X:        r * math.Sin(a),
			Y:        cy - cy*math.Cos(a),
			Rotation: rotation,
			Glyph:    g,
		}
	}
	return guide, placed
}
