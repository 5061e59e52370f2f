// Package canvas provides a reference software implementation of the
// arctext.Canvas interface over an image.RGBA.
//
// It supports the subset of 2D canvas semantics the curved text renderer
// needs: a save/restore state stack, affine transforms, polygonal path
// fill and stroke (antialiased via golang.org/x/image/vector), and text
// painting through golang.org/x/image/font/opentype glyph rasterization.
//
// One font file backs all family names: the context is a measurement and
// verification surface, not a font resolution system.
//
//	dc := canvas.New(400, 300)
//	if err := dc.LoadFont(fontData); err != nil {
//	    log.Fatal(err)
//	}
//	shape.Draw(dc)
//	png.Encode(out, dc.Image())
package canvas
