// Package metrics measures glyph positions for curved text layout.
//
// It turns a raw string plus a text measurement backend into an ordered
// sequence of per-glyph horizontal center offsets and a total text width,
// using a kerning-aware cumulative-offset algorithm: the offset step
// between two adjacent glyphs is derived from the measured width of the
// glyph pair, not the sum of the individual widths, so pairwise kerning
// applied by the font is reconstructed exactly.
//
// The measurement backend is abstracted through the Provider interface:
//
//   - OpenTypeProvider: golang.org/x/image/font/opentype + sfnt,
//     including 'kern' table pair adjustments
//   - ShaperProvider: HarfBuzz shaping via github.com/go-text/typesetting,
//     including GPOS kerning
//
// Tests can inject a deterministic Provider without a real font.
//
// # Example usage
//
//	provider, err := metrics.NewOpenTypeProviderFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	desc := metrics.Descriptor{Family: "Roboto", Size: 24}
//	gm := metrics.Measure("Hello", desc, provider)
package metrics
