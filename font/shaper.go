package font

import "sync"

// ShapedGlyph is a single positioned glyph, the output of text shaping.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text. Used for
	// hit testing and cursor positioning.
	Cluster int

	// X, Y are the pen position of the glyph relative to the text origin,
	// on the baseline.
	X, Y float64

	// XAdvance, YAdvance are how far the pen moves after this glyph.
	XAdvance, YAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: per-rune advances, adequate for Latin UI labels
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face *Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape converts text to positioned glyphs using the global shaper.
func Shape(text string, face *Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}

// BuiltinShaper positions glyphs by per-rune advance widths. It performs no
// ligature substitution, kerning, or reordering; for those, install
// GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	for cluster, r := range runes {
		gid := face.GlyphIndex(r)
		advance := face.GlyphAdvance(gid)

		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}

	return result
}
