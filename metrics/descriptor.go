package metrics

import (
	"strconv"
	"strings"
)

// Default values for Descriptor fields left at their zero value.
const (
	DefaultFamily  = "Arial"
	DefaultSize    = 12.0
	DefaultStyle   = "normal"
	DefaultVariant = "normal"
)

// Descriptor describes the font configuration a measurement runs under.
// It is the Go rendition of a CSS-style font shorthand: style, variant,
// size and family.
type Descriptor struct {
	// Family is the font family name. Defaults to "Arial" when empty.
	Family string

	// Size is the font size in pixels. Defaults to 12 when zero.
	Size float64

	// Style is the font style ("normal", "italic", ...).
	// Defaults to "normal" when empty.
	Style string

	// Variant is the font variant ("normal", "small-caps", ...).
	// Defaults to "normal" when empty.
	Variant string
}

// withDefaults returns a copy of d with zero-value fields replaced by
// the package defaults.
func (d Descriptor) withDefaults() Descriptor {
	if d.Family == "" {
		d.Family = DefaultFamily
	}
	if d.Size == 0 {
		d.Size = DefaultSize
	}
	if d.Style == "" {
		d.Style = DefaultStyle
	}
	if d.Variant == "" {
		d.Variant = DefaultVariant
	}
	return d
}

// String composes the descriptor into a canvas font string:
// "<style> <variant> <size>px <family>".
//
// Family names containing spaces but no quotes are wrapped in double
// quotes so multi-word families survive font-shorthand parsing; all other
// family values are passed through literally.
func (d Descriptor) String() string {
	d = d.withDefaults()
	size := strconv.FormatFloat(d.Size, 'f', -1, 64)
	return d.Style + " " + d.Variant + " " + size + "px " + quoteFamily(d.Family)
}

// quoteFamily wraps a family name in double quotes when it contains
// spaces and no quotes of its own.
func quoteFamily(family string) string {
	if strings.ContainsRune(family, ' ') && !strings.ContainsRune(family, '"') {
		return `"` + family + `"`
	}
	return family
}
