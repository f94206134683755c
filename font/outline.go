package font

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint is a point in a glyph outline, in logical pixels with the
// glyph origin on the baseline at the left edge and y growing downward
// (screen convention, matching sfnt.LoadGlyph output).
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour at the target point.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment:
	//   MoveTo, LineTo: Points[0] is the target
	//   QuadTo:         Points[0] is control, Points[1] is the target
	//   CubicTo:        Points[0], Points[1] are controls, Points[2] is the target
	Points [3]OutlinePoint
}

// GlyphOutline is the vector outline of a glyph: one or more closed
// contours plus metrics.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	// Empty for glyphs with no visible shape (like space).
	Segments []OutlineSegment

	// Advance is the horizontal advance width in logical pixels.
	Advance float64

	// GID is the glyph this outline represents.
	GID GlyphID
}

// IsEmpty reports whether the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// OutlineExtractor extracts glyph outlines from a face. It reuses an
// internal sfnt.Buffer, so it is NOT safe for concurrent use; create one
// per goroutine.
type OutlineExtractor struct {
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// Extract returns the outline for a glyph at the face's size. Glyphs with
// no visible shape return an outline with nil segments and a valid advance.
// Bitmap-only and color glyphs return ErrNoOutline wrapped in the sfnt
// error.
func (e *OutlineExtractor) Extract(face *Face, gid GlyphID) (*GlyphOutline, error) {
	ppem := fixedPPEM(face.Size())
	f := face.Source().parsed

	segments, err := f.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}

	outline := &GlyphOutline{
		GID:     gid,
		Advance: face.GlyphAdvance(gid),
	}
	if len(segments) == 0 {
		return outline, nil
	}

	outline.Segments = make([]OutlineSegment, 0, len(segments))
	for _, seg := range segments {
		out := OutlineSegment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
			out.Points[1] = fixedPointToOutline(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
			out.Points[1] = fixedPointToOutline(seg.Args[1])
			out.Points[2] = fixedPointToOutline(seg.Args[2])
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}

	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
