package metrics

import (
	"golang.org/x/text/unicode/bidi"
)

// Provider measures text widths under a font configuration.
// Implementations must return the width the rendering engine would
// produce for the whole string, including pairwise kerning, since the
// measurer reconstructs advances from measured pair widths.
//
// Providers never fail at measurement time; font data is validated when
// the provider is constructed. Implementations must be safe for
// concurrent use.
type Provider interface {
	// MeasureText returns the width of s in pixels under d.
	MeasureText(d Descriptor, s string) float64
}

// GlyphMetrics holds the measured layout of a string.
type GlyphMetrics struct {
	// Text is the measured string.
	Text string

	// XOffsets[i] is the cumulative horizontal center offset of glyph i
	// from the start of the string, corrected for pairwise kerning.
	// len(XOffsets) equals the number of glyphs in Text.
	// Non-decreasing for left-to-right scripts.
	XOffsets []float64

	// Width is the total width of Text, measured directly rather than
	// summed from parts, since kerning can change the aggregate width
	// nonlinearly.
	Width float64
}

// Measure splits text into single-character glyphs (runes; no grapheme
// clustering) and computes each glyph's kerning-corrected center offset.
//
// The first glyph's offset is half its own width. Each subsequent offset
// advances by measured(prev+curr) - width(prev)/2 - width(curr)/2, which
// reconstructs the true advance even when the engine kerns the pair.
//
// An empty text yields empty offsets and zero width.
func Measure(text string, d Descriptor, p Provider) GlyphMetrics {
	d = d.withDefaults()
	if text == "" {
		return GlyphMetrics{Text: text}
	}
	warnOnRTL(text)

	glyphs := []rune(text)
	offsets := make([]float64, len(glyphs))

	prev := string(glyphs[0])
	prevWidth := p.MeasureText(d, prev)
	offsets[0] = prevWidth / 2

	for i := 1; i < len(glyphs); i++ {
		curr := string(glyphs[i])
		currWidth := p.MeasureText(d, curr)
		pairWidth := p.MeasureText(d, prev+curr)
		offsets[i] = offsets[i-1] + pairWidth - prevWidth/2 - currWidth/2
		prev, prevWidth = curr, currWidth
	}

	return GlyphMetrics{
		Text:     text,
		XOffsets: offsets,
		Width:    p.MeasureText(d, text),
	}
}

// Glyphs returns the measured string split into single-character glyphs.
func (m GlyphMetrics) Glyphs() []rune {
	return []rune(m.Text)
}

// warnOnRTL logs a warning when text contains right-to-left characters.
// Offsets are computed left-to-right only; RTL scripts are out of scope
// but must not fail, so layout proceeds regardless.
func warnOnRTL(text string) {
	for i := 0; i < len(text); {
		prop, size := bidi.LookupString(text[i:])
		switch prop.Class() {
		case bidi.R, bidi.AL:
			logger().Warn("metrics: right-to-left text measured left-to-right",
				"text", text)
			return
		}
		if size == 0 {
			return
		}
		i += size
	}
}
