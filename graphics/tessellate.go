package graphics

import (
	earcut "github.com/flywave/go-earcut"

	"github.com/gogpu/ui/font"
)

// flattenTolerance is the curve flattening tolerance in pixels. Quarter
// pixel keeps glyph edges smooth at UI sizes without exploding the vertex
// count.
const flattenTolerance = 0.25

// glyphContour is one closed contour of a flattened glyph outline, stored
// as x,y pairs.
type glyphContour []float64

// signedArea returns twice the signed area of the contour (shoelace).
// Positive means counter-clockwise in the y-down coordinate system.
func (c glyphContour) signedArea() float64 {
	n := len(c) / 2
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += c[2*i]*c[2*j+1] - c[2*j]*c[2*i+1]
	}
	return area
}

// contains reports whether the point lies inside the contour (even-odd
// ray cast). Used to attach hole contours to their outer contour.
func (c glyphContour) contains(x, y float64) bool {
	n := len(c) / 2
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := c[2*i], c[2*i+1]
		xj, yj := c[2*j], c[2*j+1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// flattenOutline converts an outline's bezier contours to polygonal
// contours. Degenerate contours (fewer than three points) are dropped.
func flattenOutline(o *font.GlyphOutline, tolerance float64) []glyphContour {
	var contours []glyphContour
	var current glyphContour
	var curX, curY float64

	closeCurrent := func() {
		if len(current) >= 6 {
			contours = append(contours, current)
		}
		current = nil
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case font.OutlineOpMoveTo:
			closeCurrent()
			curX, curY = float64(seg.Points[0].X), float64(seg.Points[0].Y)
			current = append(current, curX, curY)

		case font.OutlineOpLineTo:
			curX, curY = float64(seg.Points[0].X), float64(seg.Points[0].Y)
			current = append(current, curX, curY)

		case font.OutlineOpQuadTo:
			cx, cy := float64(seg.Points[0].X), float64(seg.Points[0].Y)
			x1, y1 := float64(seg.Points[1].X), float64(seg.Points[1].Y)
			current = appendQuad(current, curX, curY, cx, cy, x1, y1, tolerance, 0)
			curX, curY = x1, y1

		case font.OutlineOpCubicTo:
			c1x, c1y := float64(seg.Points[0].X), float64(seg.Points[0].Y)
			c2x, c2y := float64(seg.Points[1].X), float64(seg.Points[1].Y)
			x1, y1 := float64(seg.Points[2].X), float64(seg.Points[2].Y)
			current = appendCubic(current, curX, curY, c1x, c1y, c2x, c2y, x1, y1, tolerance, 0)
			curX, curY = x1, y1
		}
	}
	closeCurrent()

	return contours
}

// maxSubdivisionDepth bounds recursion for pathological control points.
const maxSubdivisionDepth = 16

// appendQuad flattens a quadratic bezier onto dst, excluding the start
// point and including the end point. Flat enough when the t=0.5 deviation
// from the chord midpoint is within tolerance.
func appendQuad(dst glyphContour, x0, y0, cx, cy, x1, y1, tol float64, depth int) glyphContour {
	midX := 0.25*x0 + 0.5*cx + 0.25*x1
	midY := 0.25*y0 + 0.5*cy + 0.25*y1
	dx := midX - 0.5*(x0+x1)
	dy := midY - 0.5*(y0+y1)

	if dx*dx+dy*dy <= tol*tol || depth >= maxSubdivisionDepth {
		return append(dst, x1, y1)
	}

	// De Casteljau split at t=0.5.
	ax, ay := 0.5*(x0+cx), 0.5*(y0+cy)
	bx, by := 0.5*(cx+x1), 0.5*(cy+y1)
	mx, my := 0.5*(ax+bx), 0.5*(ay+by)

	dst = appendQuad(dst, x0, y0, ax, ay, mx, my, tol, depth+1)
	return appendQuad(dst, mx, my, bx, by, x1, y1, tol, depth+1)
}

// appendCubic flattens a cubic bezier onto dst. Flat enough when both
// control points deviate from the chord by at most 4*tolerance (standard
// cubic flatness bound).
func appendCubic(dst glyphContour, x0, y0, c1x, c1y, c2x, c2y, x1, y1, tol float64, depth int) glyphContour {
	ux := 3*c1x - 2*x0 - x1
	uy := 3*c1y - 2*y0 - y1
	vx := 3*c2x - x0 - 2*x1
	vy := 3*c2y - y0 - 2*y1

	d1 := ux*ux + uy*uy
	d2 := vx*vx + vy*vy
	if d2 > d1 {
		d1 = d2
	}

	if d1 <= 16*tol*tol || depth >= maxSubdivisionDepth {
		return append(dst, x1, y1)
	}

	// De Casteljau split at t=0.5.
	ax, ay := 0.5*(x0+c1x), 0.5*(y0+c1y)
	bx, by := 0.5*(c1x+c2x), 0.5*(c1y+c2y)
	cx, cy := 0.5*(c2x+x1), 0.5*(c2y+y1)
	abx, aby := 0.5*(ax+bx), 0.5*(ay+by)
	bcx, bcy := 0.5*(bx+cx), 0.5*(by+cy)
	mx, my := 0.5*(abx+bcx), 0.5*(aby+bcy)

	dst = appendCubic(dst, x0, y0, ax, ay, abx, aby, mx, my, tol, depth+1)
	return appendCubic(dst, mx, my, bcx, bcy, cx, cy, x1, y1, tol, depth+1)
}

// polygonGroup is one outer contour with its holes, in earcut's flat
// layout: vertices holds all contours back to back, holes holds the
// vertex index where each hole starts.
type polygonGroup struct {
	vertices []float64
	holes    []int
}

// groupContours classifies contours into outers and holes by winding.
// TrueType fills by the non-zero rule: contours wound like the dominant
// winding are solids, opposite winding are holes. Each hole attaches to
// the innermost outer that contains its first point; orphaned holes are
// dropped.
func groupContours(contours []glyphContour) []polygonGroup {
	if len(contours) == 0 {
		return nil
	}

	// The largest contour by absolute area defines the solid winding.
	dominant := 0.0
	for _, c := range contours {
		a := c.signedArea()
		if absf(a) > absf(dominant) {
			dominant = a
		}
	}
	if dominant == 0 {
		return nil
	}

	var groups []polygonGroup
	outerIdx := make([]int, 0, len(contours)) // contour index of each group's outer

	for i, c := range contours {
		if sameSign(c.signedArea(), dominant) {
			groups = append(groups, polygonGroup{vertices: append([]float64(nil), c...)})
			outerIdx = append(outerIdx, i)
		}
	}

	for _, c := range contours {
		if sameSign(c.signedArea(), dominant) {
			continue
		}
		x, y := c[0], c[1]
		for g := range groups {
			if glyphContour(contours[outerIdx[g]]).contains(x, y) {
				groups[g].holes = append(groups[g].holes, len(groups[g].vertices)/2)
				groups[g].vertices = append(groups[g].vertices, c...)
				break
			}
		}
	}

	return groups
}

// triangulateOutline flattens and triangulates a glyph outline. The result
// is a flat list of triangle vertices (x,y pairs) in the glyph's local
// coordinates.
func triangulateOutline(o *font.GlyphOutline, tolerance float64) []float64 {
	contours := flattenOutline(o, tolerance)
	groups := groupContours(contours)

	var triangles []float64
	for _, g := range groups {
		indices, err := earcut.Earcut(g.vertices, g.holes, 2)
		if err != nil {
			slogger().Debug("graphics: glyph triangulation failed", "gid", o.GID, "error", err)
			continue
		}
		for _, idx := range indices {
			triangles = append(triangles, g.vertices[2*idx], g.vertices[2*idx+1])
		}
	}
	return triangles
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}
