package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/arctext"
)

// FillText implements arctext.Canvas. The string is rasterized to an
// alpha mask and blended through the current transform. Without a loaded
// font this is a no-op.
func (c *Context) FillText(s string, x, y float64) {
	c.drawText(s, x, y, c.state.fill)
}

// StrokeText implements arctext.Canvas. The reference canvas does not
// stroke glyph outlines; the string is painted solid in the stroke
// color, which keeps stroke-mode rendering visible and testable.
func (c *Context) StrokeText(s string, x, y float64) {
	c.drawText(s, x, y, c.state.stroke)
}

func (c *Context) drawText(s string, x, y float64, col color.Color) {
	if s == "" || col == nil {
		return
	}
	face := c.ensureFace()
	if face == nil {
		return
	}

	advance := fixedToFloat(font.MeasureString(face, s))
	met := face.Metrics()
	ascent := fixedToFloat(met.Ascent)
	descent := fixedToFloat(met.Descent)

	// Anchor adjustment: x/y is the requested anchor; the drawer needs
	// the baseline origin.
	switch c.state.align {
	case arctext.AlignCenter:
		x -= advance / 2
	case arctext.AlignRight:
		x -= advance
	}
	switch c.state.baseline {
	case arctext.BaselineMiddle:
		y += (ascent - descent) / 2
	case arctext.BaselineTop:
		y += ascent
	case arctext.BaselineBottom:
		y -= descent
	}

	mask, maskRect := rasterizeString(face, s)
	if mask == nil {
		return
	}

	// maskRect is relative to the baseline origin in user space.
	// Composite through the current matrix by inverse-mapping each
	// destination pixel into mask space.
	m := c.state.matrix.Multiply(arctext.Translate(x, y))
	inv := m.Invert()

	corners := []arctext.Point{
		arctext.Pt(float64(maskRect.Min.X), float64(maskRect.Min.Y)),
		arctext.Pt(float64(maskRect.Max.X), float64(maskRect.Min.Y)),
		arctext.Pt(float64(maskRect.Max.X), float64(maskRect.Max.Y)),
		arctext.Pt(float64(maskRect.Min.X), float64(maskRect.Max.Y)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range corners {
		p := m.TransformPoint(corner)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	x0 := clampInt(int(math.Floor(minX)), 0, c.width)
	y0 := clampInt(int(math.Floor(minY)), 0, c.height)
	x1 := clampInt(int(math.Ceil(maxX))+1, 0, c.width)
	y1 := clampInt(int(math.Ceil(maxY))+1, 0, c.height)

	cr, cg, cb, ca := col.RGBA()

	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			// Sample the mask at the pixel center.
			src := inv.TransformPoint(arctext.Pt(float64(dx)+0.5, float64(dy)+0.5))
			mx := int(math.Floor(src.X))
			my := int(math.Floor(src.Y))
			if mx < maskRect.Min.X || mx >= maskRect.Max.X ||
				my < maskRect.Min.Y || my >= maskRect.Max.Y {
				continue
			}
			alpha := mask.AlphaAt(mx, my).A
			if alpha == 0 {
				continue
			}
			c.blend(dx, dy, cr, cg, cb, ca, alpha)
		}
	}
}

// blend composites a color with the given coverage over one pixel.
func (c *Context) blend(x, y int, cr, cg, cb, ca uint32, coverage uint8) {
	// Scale the premultiplied source by coverage.
	cov := uint32(coverage)
	sr := cr * cov / 0xFF
	sg := cg * cov / 0xFF
	sb := cb * cov / 0xFF
	sa := ca * cov / 0xFF

	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]

	// Source-over in 16-bit space, stored as 8-bit.
	a := 0xFFFF - sa
	pix[0] = uint8((sr + uint32(pix[0])*0x101*a/0xFFFF) >> 8)
	pix[1] = uint8((sg + uint32(pix[1])*0x101*a/0xFFFF) >> 8)
	pix[2] = uint8((sb + uint32(pix[2])*0x101*a/0xFFFF) >> 8)
	pix[3] = uint8((sa + uint32(pix[3])*0x101*a/0xFFFF) >> 8)
}

// ensureFace returns an opentype face at the current font size, building
// it lazily and caching until the size or font changes.
func (c *Context) ensureFace() font.Face {
	if c.otFont == nil {
		return nil
	}
	size := c.state.font.Size
	if size <= 0 {
		size = 12
	}
	if c.face != nil && c.faceSize == size {
		return c.face
	}
	face, err := opentype.NewFace(c.otFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	c.face = face
	c.faceSize = size
	return face
}

// rasterizeString renders s to an alpha mask. The returned rectangle is
// the mask bounds relative to the baseline origin.
func rasterizeString(face font.Face, s string) (*image.Alpha, image.Rectangle) {
	bounds, _ := font.BoundString(face, s)
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	rect := image.Rect(minX, minY, maxX, maxY)
	if rect.Empty() {
		return nil, rect
	}

	mask := image.NewAlpha(rect)
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{},
	}
	drawer.DrawString(s)
	return mask, rect
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// clampInt limits v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
