// Package arctext lays a string of glyphs along a circular arc for
// rendering on a 2D canvas.
//
// # Overview
//
// arctext measures true per-glyph advance widths (including kerning
// pairs), maps the linear glyph offsets onto arc positions and per-glyph
// rotation angles, and recomputes a rotation-aware bounding box so the
// shape stays visually anchored after every re-layout.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/arctext"
//		"github.com/gogpu/arctext/metrics"
//	)
//
//	provider, _ := metrics.NewOpenTypeProviderFromFile("font.ttf")
//	shape := arctext.New(provider,
//		arctext.WithText("CURVED TEXT"),
//		arctext.WithFontSize(24),
//		arctext.WithCurveRadius(120),
//		arctext.WithCurveDirection(1),
//	)
//	shape.Draw(dc) // any arctext.Canvas implementation
//
// # Architecture
//
// The library is organized into:
//   - Public API: CurvedText, ComputedLayout, Canvas, Matrix, Point
//   - metrics: glyph measurement over pluggable font backends
//   - canvas: a reference software Canvas over an image.RGBA
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package arctext

// Version is the current version of the library.
const Version = "0.1.0"
