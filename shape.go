package arctext

import (
	"image/color"

	"github.com/gogpu/arctext/metrics"
)

// PaintMode selects how glyphs are painted.
type PaintMode int

const (
	// PaintFill paints glyphs with the fill color.
	PaintFill PaintMode = iota
	// PaintStroke paints glyph outlines with the stroke color.
	PaintStroke
	// PaintFillStroke fills glyphs, then strokes their outlines.
	PaintFillStroke
)

// String returns the string representation of the paint mode.
func (m PaintMode) String() string {
	switch m {
	case PaintFill:
		return "Fill"
	case PaintStroke:
		return "Stroke"
	case PaintFillStroke:
		return "FillStroke"
	default:
		return "Unknown"
	}
}

// CurvedText is a shape that lays its text along a circular arc.
//
// Layout is a pure function of the text, font and curve attributes; the
// result is cached as a ComputedLayout and replaced synchronously
// whenever one of those attributes changes. The bounding box and
// position are reconciled as a side effect of every recompute.
//
// CurvedText is not safe for concurrent use: recompute is a direct
// synchronous call and rendering reads the last-computed layout without
// locking, consistent by construction in a single-threaded scene.
type CurvedText struct {
	provider metrics.Provider

	// Geometry, mutated by the bounds reconciler.
	x, y            float64
	width, height   float64
	rotationDegrees float64
	scaleX, scaleY  float64

	// Layout dependencies. Mutating any of these replaces the cached
	// layout synchronously.
	text           string
	fontFamily     string
	fontSize       float64
	fontStyle      string
	fontVariant    string
	curveRadius    float64
	curveDirection float64

	// Presentation only; no relayout.
	showCurvePath bool
	fill          color.Color
	stroke        color.Color
	paintMode     PaintMode
	editing       bool

	layout *ComputedLayout
}

// Option configures a CurvedText during creation.
type Option func(*CurvedText)

// WithText sets the initial text.
func WithText(text string) Option {
	return func(s *CurvedText) { s.text = text }
}

// WithFontFamily sets the font family name.
func WithFontFamily(family string) Option {
	return func(s *CurvedText) { s.fontFamily = family }
}

// WithFontSize sets the font size in pixels. Non-positive sizes are
// rejected at construction and fall back to the default.
func WithFontSize(size float64) Option {
	return func(s *CurvedText) {
		if size > 0 {
			s.fontSize = size
		}
	}
}

// WithFontStyle sets the font style ("normal", "italic", ...).
func WithFontStyle(style string) Option {
	return func(s *CurvedText) { s.fontStyle = style }
}

// WithFontVariant sets the font variant ("normal", "small-caps", ...).
func WithFontVariant(variant string) Option {
	return func(s *CurvedText) { s.fontVariant = variant }
}

// WithCurveRadius sets the arc radius. Zero flattens the arc into a
// near-straight baseline.
func WithCurveRadius(radius float64) Option {
	return func(s *CurvedText) { s.curveRadius = radius }
}

// WithCurveDirection sets the curve direction: positive curves the text
// upward, zero or negative curves it downward.
func WithCurveDirection(direction float64) Option {
	return func(s *CurvedText) { s.curveDirection = direction }
}

// WithShowCurvePath enables the diagnostic guide circle overlay.
func WithShowCurvePath(show bool) Option {
	return func(s *CurvedText) { s.showCurvePath = show }
}

// WithPosition sets the shape position.
func WithPosition(x, y float64) Option {
	return func(s *CurvedText) { s.x, s.y = x, y }
}

// WithRotation sets the shape rotation in degrees.
func WithRotation(degrees float64) Option {
	return func(s *CurvedText) { s.rotationDegrees = degrees }
}

// WithScale sets the shape scale factors.
func WithScale(sx, sy float64) Option {
	return func(s *CurvedText) { s.scaleX, s.scaleY = sx, sy }
}

// WithFill sets the fill color.
func WithFill(c color.Color) Option {
	return func(s *CurvedText) { s.fill = c }
}

// WithStroke sets the stroke color.
func WithStroke(c color.Color) Option {
	return func(s *CurvedText) { s.stroke = c }
}

// WithPaintMode selects the glyph painting strategy.
func WithPaintMode(m PaintMode) Option {
	return func(s *CurvedText) { s.paintMode = m }
}

// New creates a CurvedText shape measuring through the given provider.
// The initial layout is computed immediately.
//
// Panics if provider is nil; a shape cannot lay out text it cannot
// measure.
func New(provider metrics.Provider, opts ...Option) *CurvedText {
	if provider == nil {
		panic("arctext: provider is nil")
	}
	s := &CurvedText{
		provider:       provider,
		scaleX:         1,
		scaleY:         1,
		fontFamily:     metrics.DefaultFamily,
		fontSize:       metrics.DefaultSize,
		fontStyle:      metrics.DefaultStyle,
		fontVariant:    metrics.DefaultVariant,
		curveDirection: 1,
		fill:           color.Black,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// recompute replaces the cached layout and reconciles the bounding box.
// Called from the constructor and every dependency setter; it always
// completes before control returns to the caller, so a paint can never
// observe a stale layout.
func (s *CurvedText) recompute() {
	gm := metrics.Measure(s.text, s.Descriptor(), s.provider)
	guide, glyphs := mapToArc(gm, s.curveRadius, s.curveDirection)
	s.layout = &ComputedLayout{Metrics: gm, Glyphs: glyphs, Guide: guide}
	s.reconcileBounds(glyphs)

	logger().Debug("arctext: layout recomputed",
		"text", s.text,
		"glyphs", len(glyphs),
		"width", s.width,
		"height", s.height)
}

// Recompute forces a fresh layout pass. Normally unnecessary, since
// every dependency setter recomputes synchronously; useful when the
// provider's underlying font data has been swapped.
func (s *CurvedText) Recompute() {
	s.recompute()
}

// Layout returns the cached layout. Never nil after construction.
func (s *CurvedText) Layout() *ComputedLayout {
	return s.layout
}

// Descriptor returns the font descriptor for the current attributes.
func (s *CurvedText) Descriptor() metrics.Descriptor {
	return metrics.Descriptor{
		Family:  s.fontFamily,
		Size:    s.fontSize,
		Style:   s.fontStyle,
		Variant: s.fontVariant,
	}
}

// SetText replaces the text and recomputes the layout.
func (s *CurvedText) SetText(text string) {
	s.text = text
	s.recompute()
}

// Text returns the current text.
func (s *CurvedText) Text() string { return s.text }

// SetFontFamily sets the font family and recomputes the layout.
func (s *CurvedText) SetFontFamily(family string) {
	s.fontFamily = family
	s.recompute()
}

// FontFamily returns the font family.
func (s *CurvedText) FontFamily() string { return s.fontFamily }

// SetFontSize sets the font size in pixels and recomputes the layout.
// Non-positive sizes are rejected: the old value is kept and a warning
// is logged.
func (s *CurvedText) SetFontSize(size float64) {
	if size <= 0 {
		logger().Warn("arctext: rejected non-positive font size", "size", size)
		return
	}
	s.fontSize = size
	s.recompute()
}

// FontSize returns the font size in pixels.
func (s *CurvedText) FontSize() float64 { return s.fontSize }

// SetFontStyle sets the font style and recomputes the layout.
func (s *CurvedText) SetFontStyle(style string) {
	s.fontStyle = style
	s.recompute()
}

// FontStyle returns the font style.
func (s *CurvedText) FontStyle() string { return s.fontStyle }

// SetFontVariant sets the font variant and recomputes the layout.
func (s *CurvedText) SetFontVariant(variant string) {
	s.fontVariant = variant
	s.recompute()
}

// FontVariant returns the font variant.
func (s *CurvedText) FontVariant() string { return s.fontVariant }

// SetCurveRadius sets the arc radius and recomputes the layout.
// Zero flattens the arc into a near-straight baseline.
func (s *CurvedText) SetCurveRadius(radius float64) {
	s.curveRadius = radius
	s.recompute()
}

// CurveRadius returns the configured arc radius.
func (s *CurvedText) CurveRadius() float64 { return s.curveRadius }

// SetCurveDirection sets the curve direction and recomputes the layout.
func (s *CurvedText) SetCurveDirection(direction float64) {
	s.curveDirection = direction
	s.recompute()
}

// CurveDirection returns the curve direction.
func (s *CurvedText) CurveDirection() float64 { return s.curveDirection }

// SetShowCurvePath toggles the diagnostic guide circle. Presentation
// only; the layout is unaffected.
func (s *CurvedText) SetShowCurvePath(show bool) { s.showCurvePath = show }

// ShowCurvePath reports whether the guide circle is drawn.
func (s *CurvedText) ShowCurvePath() bool { return s.showCurvePath }

// SetPosition moves the shape.
func (s *CurvedText) SetPosition(x, y float64) { s.x, s.y = x, y }

// Position returns the shape position.
func (s *CurvedText) Position() (x, y float64) { return s.x, s.y }

// Width returns the shape's bounding box width.
func (s *CurvedText) Width() float64 { return s.width }

// Height returns the shape's bounding box height.
func (s *CurvedText) Height() float64 { return s.height }

// SetRotationDegrees sets the shape rotation in degrees.
func (s *CurvedText) SetRotationDegrees(degrees float64) { s.rotationDegrees = degrees }

// RotationDegrees returns the shape rotation in degrees.
func (s *CurvedText) RotationDegrees() float64 { return s.rotationDegrees }

// SetScale sets the shape scale factors.
func (s *CurvedText) SetScale(sx, sy float64) { s.scaleX, s.scaleY = sx, sy }

// Scale returns the shape scale factors.
func (s *CurvedText) Scale() (sx, sy float64) { return s.scaleX, s.scaleY }

// SetFill sets the fill color.
func (s *CurvedText) SetFill(c color.Color) { s.fill = c }

// Fill returns the fill color.
func (s *CurvedText) Fill() color.Color { return s.fill }

// SetStroke sets the stroke color.
func (s *CurvedText) SetStroke(c color.Color) { s.stroke = c }

// Stroke returns the stroke color.
func (s *CurvedText) Stroke() color.Color { return s.stroke }

// SetPaintMode selects the glyph painting strategy.
func (s *CurvedText) SetPaintMode(m PaintMode) { s.paintMode = m }

// PaintMode returns the glyph painting strategy.
func (s *CurvedText) PaintMode() PaintMode { return s.paintMode }

// SetEditing toggles the editing render tint.
func (s *CurvedText) SetEditing(editing bool) { s.editing = editing }

// Editing reports whether the shape renders with the editing tint.
func (s *CurvedText) Editing() bool { return s.editing }
