package metrics

import "errors"

// Sentinel errors for the metrics package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("metrics: empty font data")
)
