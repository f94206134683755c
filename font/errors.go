package font

import "errors"

var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNoOutline is returned when a glyph has no vector outline
	// (bitmap-only or color glyphs).
	ErrNoOutline = errors.New("font: glyph has no outline")
)
