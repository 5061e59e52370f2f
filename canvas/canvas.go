package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/metrics"
)

// arcSegments is the number of line segments approximating a full circle.
const arcSegments = 64

// state is the saveable part of the drawing state.
type state struct {
	matrix    arctext.Matrix
	fill      color.Color
	stroke    color.Color
	font      metrics.Descriptor
	align     arctext.TextAlign
	baseline  arctext.TextBaseline
	lineWidth float64
}

// Context is a software drawing surface backed by an image.RGBA.
// It implements arctext.Canvas.
//
// Context is not safe for concurrent use.
type Context struct {
	img    *image.RGBA
	width  int
	height int

	state state
	stack []state

	// path holds subpaths in device coordinates; points are transformed
	// by the current matrix as they are appended.
	path [][]arctext.Point

	otFont   *opentype.Font
	face     font.Face
	faceSize float64
}

var _ arctext.Canvas = (*Context)(nil)

// New creates a drawing context with the given dimensions.
// Load a font with LoadFont before drawing text.
func New(width, height int) *Context {
	return &Context{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		state: state{
			matrix:    arctext.Identity(),
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
		},
		stack: make([]state, 0, 8),
	}
}

// LoadFont parses TTF or OTF font data for text drawing. All family
// names in subsequent SetFont descriptors resolve to this font.
func (c *Context) LoadFont(data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("canvas: failed to parse font: %w", err)
	}
	c.otFont = f
	c.face = nil
	c.faceSize = 0
	return nil
}

// Image returns the underlying image.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the image as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Save implements arctext.Canvas.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements arctext.Canvas. Restoring with an empty stack is a
// no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate implements arctext.Canvas.
func (c *Context) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(arctext.Translate(x, y))
}

// Rotate implements arctext.Canvas.
func (c *Context) Rotate(radians float64) {
	c.state.matrix = c.state.matrix.Multiply(arctext.Rotate(radians))
}

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() arctext.Matrix {
	return c.state.matrix
}

// SetLineWidth sets the stroke width in user units.
func (c *Context) SetLineWidth(w float64) {
	if w > 0 {
		c.state.lineWidth = w
	}
}

// BeginPath implements arctext.Canvas.
func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

// ClosePath implements arctext.Canvas.
func (c *Context) ClosePath() {
	if n := len(c.path); n > 0 {
		sp := c.path[n-1]
		if len(sp) > 1 {
			c.path[n-1] = append(sp, sp[0])
		}
	}
}

// Rect implements arctext.Canvas.
func (c *Context) Rect(x, y, w, h float64) {
	c.appendSubpath([]arctext.Point{
		arctext.Pt(x, y),
		arctext.Pt(x+w, y),
		arctext.Pt(x+w, y+h),
		arctext.Pt(x, y+h),
		arctext.Pt(x, y),
	})
}

// Arc implements arctext.Canvas. The arc is approximated by line
// segments, enough for full circles at guide scale.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	sweep := endAngle - startAngle
	if counterclockwise {
		sweep = -(2*math.Pi - sweep)
	}
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegments))
	if n < 2 {
		n = 2
	}
	pts := make([]arctext.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		pts = append(pts, arctext.Pt(x+radius*math.Cos(a), y+radius*math.Sin(a)))
	}
	c.appendSubpath(pts)
}

// appendSubpath transforms the points by the current matrix and stores
// them as a new subpath in device coordinates.
func (c *Context) appendSubpath(pts []arctext.Point) {
	device := make([]arctext.Point, len(pts))
	for i, p := range pts {
		device[i] = c.state.matrix.TransformPoint(p)
	}
	c.path = append(c.path, device)
}

// Fill implements arctext.Canvas.
func (c *Context) Fill() {
	c.fillSubpaths(c.path, c.state.fill)
}

// Stroke implements arctext.Canvas. Each segment is rendered as a filled
// quad of the current line width; joins and caps are butt-style.
func (c *Context) Stroke() {
	c.strokeSubpaths(c.path, c.state.stroke)
}

// FillStrokeShape implements arctext.Canvas: the current path is painted
// with the shape's own fill and stroke colors. Used for hit-region
// painting, where the shape's colors encode its identity.
func (c *Context) FillStrokeShape(s *arctext.CurvedText) {
	if f := s.Fill(); f != nil {
		c.fillSubpaths(c.path, f)
	}
	if st := s.Stroke(); st != nil {
		c.strokeSubpaths(c.path, st)
	}
}

// SetFillStyle implements arctext.Canvas.
func (c *Context) SetFillStyle(col color.Color) {
	if col != nil {
		c.state.fill = col
	}
}

// SetStrokeStyle implements arctext.Canvas.
func (c *Context) SetStrokeStyle(col color.Color) {
	if col != nil {
		c.state.stroke = col
	}
}

// SetFont implements arctext.Canvas.
func (c *Context) SetFont(d metrics.Descriptor) {
	c.state.font = d
}

// SetTextAlign implements arctext.Canvas.
func (c *Context) SetTextAlign(a arctext.TextAlign) {
	c.state.align = a
}

// SetTextBaseline implements arctext.Canvas.
func (c *Context) SetTextBaseline(b arctext.TextBaseline) {
	c.state.baseline = b
}

// fillSubpaths rasterizes the subpaths with nonzero winding and blends
// the color over the image.
func (c *Context) fillSubpaths(subpaths [][]arctext.Point, col color.Color) {
	if len(subpaths) == 0 || col == nil {
		return
	}
	r := vector.NewRasterizer(c.width, c.height)
	drawn := false
	for _, sp := range subpaths {
		if len(sp) < 3 {
			continue
		}
		r.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, p := range sp[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// strokeSubpaths converts each polyline segment into a filled quad of
// the scaled line width.
func (c *Context) strokeSubpaths(subpaths [][]arctext.Point, col color.Color) {
	if len(subpaths) == 0 || col == nil {
		return
	}
	// Line width scales with the current transform; use the average of
	// the transformed axis lengths.
	m := c.state.matrix
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	half := c.state.lineWidth * (sx + sy) / 4

	quads := make([][]arctext.Point, 0, 64)
	for _, sp := range subpaths {
		for i := 1; i < len(sp); i++ {
			p, q := sp[i-1], sp[i]
			d := q.Sub(p)
			length := d.Length()
			if length == 0 {
				continue
			}
			// Perpendicular offset of half the line width.
			n := arctext.Pt(-d.Y/length*half, d.X/length*half)
			quads = append(quads, []arctext.Point{
				p.Add(n), q.Add(n), q.Sub(n), p.Sub(n), p.Add(n),
			})
		}
	}
	c.fillSubpaths(quads, col)
}
