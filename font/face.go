package font

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index in a font.
type GlyphID uint16

// Face binds a Source to a size and answers measurement queries. Face is a
// lightweight value; create as many as needed.
//
// Face methods are safe for concurrent use: each call uses its own
// sfnt.Buffer.
type Face struct {
	source *Source
	size   float64
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source {
	return f.source
}

// Size returns the face size in logical pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.parsed.Metrics(&buf, fixedPPEM(f.size), xfont.HintingFull)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}

	// Hinting rounds Ascent, Descent, and Height independently, so the
	// rounded Height can undershoot Ascent+Descent by a pixel.
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   gap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// GlyphIndex returns the glyph index for a rune, or 0 if the font has no
// glyph for it.
func (f *Face) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.source.parsed.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance returns the advance width of a glyph in logical pixels.
func (f *Face) GlyphAdvance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	adv, err := f.source.parsed.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), fixedPPEM(f.size), xfont.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// Advance returns the total advance width of the text: the sum of all
// glyph advances, ignoring kerning. Use Measure for shaped widths.
func (f *Face) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += f.GlyphAdvance(f.GlyphIndex(r))
	}
	return total
}

// Measure returns the dimensions of the text in logical pixels: the shaped
// advance width and the line height (ascent + descent).
func (f *Face) Measure(text string) (w, h float64) {
	glyphs := Shape(text, f)
	for _, g := range glyphs {
		w += g.XAdvance
	}
	m := f.Metrics()
	return w, m.Ascent + m.Descent
}

// fixedPPEM converts a pixel size to 26.6 fixed point.
func fixedPPEM(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
