package font

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GoTextShaper provides HarfBuzz-level text shaping using
// go-text/typesetting: ligatures, kerning pairs, contextual alternates,
// right-to-left text, and complex scripts. Mixed-direction text is split
// into runs with the Unicode bidi algorithm and each run is shaped with its
// resolved direction.
//
// GoTextShaper is an opt-in replacement for BuiltinShaper:
//
//	font.SetShaper(font.NewGoTextShaper())
//	defer font.SetShaper(nil)
//
// GoTextShaper is safe for concurrent use. Parsed gofont.Font objects are
// cached per Source (they are read-only and thread-safe); HarfbuzzShaper
// instances are pooled because they are not.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Source]*gofont.Font
}

// NewGoTextShaper creates a GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Source]*gofont.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	goFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		// Fall back: a font that fails go-text parsing was validated by
		// sfnt at Source creation, so this is rare. Return nil rather
		// than guessing positions.
		return nil
	}

	// gofont.Face is not safe for concurrent use; create one per call.
	// It wraps the thread-safe *Font and is cheap to construct.
	goFace := gofont.NewFace(goFont)

	var result []ShapedGlyph
	var penX float64

	for _, run := range bidiRuns(text) {
		runes := []rune(run.text)
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: run.dir,
			Face:      goFace,
			Size:      floatToFixed(face.Size()),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("und"),
		}

		hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
		output := hb.Shape(input)
		s.shaperPool.Put(hb)

		for _, g := range output.Glyphs {
			adv := fixedToFloat(g.Advance)
			result = append(result, ShapedGlyph{
				GID:      GlyphID(uint16(g.GlyphID)),
				Cluster:  g.TextIndex(),
				X:        penX + fixedToFloat(g.XOffset),
				Y:        fixedToFloat(g.YOffset),
				XAdvance: adv,
			})
			penX += adv
		}
	}

	return result
}

// getOrCreateFont returns a cached go-text font for the given source, or
// parses the font data and caches the result.
func (s *GoTextShaper) getOrCreateFont(source *Source) (*gofont.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goFace, err := gofont.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	s.fontCache[source] = goFace.Font
	return goFace.Font, nil
}

// RemoveSource drops the cached parsed font for a Source. Call when a
// Source is closed.
func (s *GoTextShaper) RemoveSource(source *Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// bidiRun is a maximal substring with a single resolved direction.
type bidiRun struct {
	text string
	dir  di.Direction
}

// bidiRuns splits text into direction runs using the Unicode bidi
// algorithm. Pure-LTR text produces a single run.
func bidiRuns(text string) []bidiRun {
	var p bidi.Paragraph
	p.SetString(text)
	ordering, err := p.Order()
	if err != nil {
		return []bidiRun{{text: text, dir: di.DirectionLTR}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{text: run.String(), dir: dir})
	}
	return runs
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text the first script wins; labels
// that need finer control should pre-split runs.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
