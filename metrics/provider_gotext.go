package metrics

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShaperProvider measures text using HarfBuzz shaping via
// github.com/go-text/typesetting. Unlike OpenTypeProvider it picks up
// GPOS kerning and contextual positioning, so it matches what a shaping
// rendering engine actually draws.
//
// ShaperProvider is safe for concurrent use. The parsed font.Font is
// read-only and shared; font.Face instances are created per call since
// they are not safe for concurrent use, and HarfbuzzShaper instances are
// pooled for the same reason.
type ShaperProvider struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; the shaper has internal
	// mutable buffers and is not safe for concurrent use.
	shaperPool sync.Pool
}

// NewShaperProvider creates a provider from font data (TTF or OTF).
func NewShaperProvider(data []byte) (*ShaperProvider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	return &ShaperProvider{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// NewShaperProviderFromFile loads a provider from a font file path.
func NewShaperProviderFromFile(path string) (*ShaperProvider, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to read font file: %w", err)
	}
	return NewShaperProvider(data)
}

// MeasureText implements Provider.MeasureText.
// The width is the shaped run advance, which includes GPOS kerning.
func (p *ShaperProvider) MeasureText(d Descriptor, s string) float64 {
	if s == "" {
		return 0
	}
	d = d.withDefaults()
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(p.font),
		Size:      floatToFixed(d.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := p.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	p.shaperPool.Put(shaper)

	return fixedToFloat64(output.Advance)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; mixed-script text should be
// split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
