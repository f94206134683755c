// Package font provides font loading, measurement, shaping, and glyph
// outline extraction for UI text.
//
// A Source is a parsed font file (TTF or OTF). It is heavyweight and meant
// to be shared; create one per font file and register it with an asset
// registry. A Face binds a Source to a size and answers measurement
// queries:
//
//	src, err := font.NewSourceFromFile("Roboto.ttf")
//	if err != nil {
//	    return err
//	}
//	face := src.Face(30)
//	w, h := face.Measure("OK")
//
// Shaping is pluggable. The default BuiltinShaper positions glyphs by
// per-rune advances, which is adequate for Latin UI labels. For kerning,
// ligatures, and complex scripts, install the HarfBuzz-backed shaper:
//
//	font.SetShaper(font.NewGoTextShaper())
package font
