package metrics

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeProvider measures text using golang.org/x/image/font/opentype.
// Widths are the sum of per-glyph advances plus 'kern' table pair
// adjustments, so measured pair widths differ from the sum of the
// individual glyph widths exactly when the font kerns the pair.
//
// Advances are unhinted; hinting quantizes widths to pixel boundaries,
// which is not what a canvas measureText reports.
//
// OpenTypeProvider is safe for concurrent use.
type OpenTypeProvider struct {
	font *opentype.Font

	// mu guards buf; sfnt.Buffer is not safe for concurrent use.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewOpenTypeProvider creates a provider from font data (TTF or OTF).
func NewOpenTypeProvider(data []byte) (*OpenTypeProvider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	return &OpenTypeProvider{font: f}, nil
}

// NewOpenTypeProviderFromFile loads a provider from a font file path.
func NewOpenTypeProviderFromFile(path string) (*OpenTypeProvider, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to read font file: %w", err)
	}
	return NewOpenTypeProvider(data)
}

// MeasureText implements Provider.MeasureText.
// Glyphs missing from the font contribute zero width.
func (p *OpenTypeProvider) MeasureText(d Descriptor, s string) float64 {
	if s == "" {
		return 0
	}
	d = d.withDefaults()
	ppem := fixed.Int26_6(d.Size * 64)

	p.mu.Lock()
	defer p.mu.Unlock()

	var width fixed.Int26_6
	var prev sfnt.GlyphIndex
	first := true

	for _, r := range s {
		gi, err := p.font.GlyphIndex(&p.buf, r)
		if err != nil || gi == 0 {
			first = true
			continue
		}
		advance, err := p.font.GlyphAdvance(&p.buf, gi, ppem, font.HintingNone)
		if err != nil {
			first = true
			continue
		}
		if !first {
			if kern, err := p.font.Kern(&p.buf, prev, gi, ppem, font.HintingNone); err == nil {
				width += kern
			}
		}
		width += advance
		prev, first = gi, false
	}

	return fixedToFloat64(width)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
