package graphics

import (
	"github.com/gogpu/ui/font"
)

// DefaultCharacterSize is the character size a Text starts with, in pixels.
const DefaultCharacterSize = 16.0

// Text draws a string of glyphs filled with a solid color. Glyph outlines
// are triangulated once per glyph and cached; changing the character size
// or the font source invalidates the cache.
//
// The position is the top-left corner of the text's bounds. The baseline
// sits one ascent below it.
type Text struct {
	ctx  Context
	text string

	source        *font.Source
	face          *font.Face
	characterSize float64

	position Vec2
	fill     RGBA

	extractor font.OutlineExtractor
	triangles map[font.GlyphID][]float64
}

// NewText creates a text primitive rendering s with the given font source
// at [DefaultCharacterSize]. The fill color defaults to white.
func NewText(ctx Context, s string, source *font.Source) *Text {
	t := &Text{
		ctx:           ctx,
		text:          s,
		source:        source,
		characterSize: DefaultCharacterSize,
		fill:          White,
		triangles:     make(map[font.GlyphID][]float64),
	}
	if source != nil {
		t.face = source.Face(t.characterSize)
	}
	return t
}

// String returns the rendered string.
func (t *Text) String() string { return t.text }

// SetString replaces the rendered string.
func (t *Text) SetString(s string) { t.text = s }

// Font returns the text's font source, which may be nil.
func (t *Text) Font() *font.Source { return t.source }

// SetFont replaces the text's font source and drops cached glyph geometry.
func (t *Text) SetFont(source *font.Source) {
	t.source = source
	t.face = nil
	if source != nil {
		t.face = source.Face(t.characterSize)
	}
	clear(t.triangles)
}

// CharacterSize returns the character size in pixels.
func (t *Text) CharacterSize() float64 { return t.characterSize }

// SetCharacterSize changes the character size and drops cached glyph
// geometry.
func (t *Text) SetCharacterSize(size float64) {
	if size == t.characterSize {
		return
	}
	t.characterSize = size
	if t.source != nil {
		t.face = t.source.Face(size)
	}
	clear(t.triangles)
}

// Position returns the top-left corner of the text.
func (t *Text) Position() Vec2 { return t.position }

// SetPosition moves the text's top-left corner.
func (t *Text) SetPosition(p Vec2) { t.position = p }

// FillColor returns the glyph fill color.
func (t *Text) FillColor() RGBA { return t.fill }

// SetFillColor sets the glyph fill color.
func (t *Text) SetFillColor(c RGBA) { t.fill = c }

// Bounds returns the text's bounding box at its current position. The
// width is the shaped advance width and the height is one line height
// (ascent plus descent). A text without a font has zero size.
func (t *Text) Bounds() Bounds {
	if t.face == nil {
		return Bounds{X: t.position.X, Y: t.position.Y}
	}
	w, h := t.face.Measure(t.text)
	return Bounds{X: t.position.X, Y: t.position.Y, W: w, H: h}
}

// Draw renders the text into the render pass. Without a device or a font
// the call is a no-op.
func (t *Text) Draw(rp *RenderPass) {
	if t.face == nil {
		return
	}
	if !t.ctx.HasDevice() {
		slogger().Debug("graphics: text draw skipped, no device", "text", t.text)
		return
	}

	glyphs := font.Shape(t.text, t.face)
	if len(glyphs) == 0 {
		return
	}

	baseline := t.position.Y + t.face.Metrics().Ascent
	color := t.fill.premultiplied()

	var data []byte
	var count uint32
	for _, g := range glyphs {
		tris, err := t.glyphTriangles(g.GID)
		if err != nil {
			slogger().Debug("graphics: glyph skipped", "gid", g.GID, "error", err)
			continue
		}
		// Glyph positions are relative to the text origin on the baseline.
		originX := t.position.X + g.X
		originY := baseline + g.Y
		for i := 0; i < len(tris); i += 2 {
			data = appendVertex(data,
				float32(originX+tris[i]), float32(originY+tris[i+1]), color)
			count++
		}
	}
	if count == 0 {
		return
	}

	if err := rp.drawSolid(data, count); err != nil {
		slogger().Error("graphics: text draw failed", "error", err)
	}
}

// glyphTriangles returns the triangulated outline of a glyph in
// baseline-relative coordinates, extracting and caching it on first use.
func (t *Text) glyphTriangles(gid font.GlyphID) ([]float64, error) {
	if tris, ok := t.triangles[gid]; ok {
		return tris, nil
	}
	outline, err := t.extractor.Extract(t.face, gid)
	if err != nil {
		return nil, err
	}
	tris := triangulateOutline(outline, flattenTolerance)
	t.triangles[gid] = tris
	return tris, nil
}
