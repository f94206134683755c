package graphics

// Bounds is an axis-aligned rectangle in logical pixels. The origin is the
// top-left corner; y grows downward.
type Bounds struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle. Both edges
// are inclusive, so a point exactly on the right or bottom edge still hits.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.W &&
		p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Min returns the top-left corner.
func (b Bounds) Min() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

// Max returns the bottom-right corner.
func (b Bounds) Max() Vec2 {
	return Vec2{X: b.X + b.W, Y: b.Y + b.H}
}

// Size returns the extent of the rectangle.
func (b Bounds) Size() Vec2 {
	return Vec2{X: b.W, Y: b.H}
}

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}
