package graphics

// Shape is a filled drawable with a position, an extent, and a fill color.
type Shape interface {
	Position() Vec2
	SetPosition(Vec2)
	Size() Vec2
	SetSize(Vec2)
	FillColor() RGBA
	SetFillColor(RGBA)
	Bounds() Bounds
	Draw(*RenderPass)
}

// RectangleShape is an axis-aligned filled rectangle.
type RectangleShape struct {
	ctx      Context
	position Vec2
	size     Vec2
	fill     RGBA
}

var _ Shape = (*RectangleShape)(nil)

// NewRectangleShape creates a rectangle of the given size at the origin,
// filled white.
func NewRectangleShape(ctx Context, size Vec2) *RectangleShape {
	return &RectangleShape{
		ctx:  ctx,
		size: size,
		fill: White,
	}
}

// Position returns the top-left corner.
func (r *RectangleShape) Position() Vec2 {
	return r.position
}

// SetPosition moves the top-left corner.
func (r *RectangleShape) SetPosition(p Vec2) {
	r.position = p
}

// Size returns the extent.
func (r *RectangleShape) Size() Vec2 {
	return r.size
}

// SetSize sets the extent.
func (r *RectangleShape) SetSize(s Vec2) {
	r.size = s
}

// FillColor returns the current fill color.
func (r *RectangleShape) FillColor() RGBA {
	return r.fill
}

// SetFillColor sets the fill color.
func (r *RectangleShape) SetFillColor(c RGBA) {
	r.fill = c
}

// Bounds returns the rectangle's extent at its current position.
func (r *RectangleShape) Bounds() Bounds {
	return Bounds{X: r.position.X, Y: r.position.Y, W: r.size.X, H: r.size.Y}
}

// Draw records the rectangle as two triangles. A deviceless context makes
// this a no-op.
func (r *RectangleShape) Draw(rp *RenderPass) {
	if !r.ctx.HasDevice() {
		slogger().Debug("graphics: rectangle draw skipped, no device")
		return
	}
	if r.size.X <= 0 || r.size.Y <= 0 {
		return
	}

	x0 := float32(r.position.X)
	y0 := float32(r.position.Y)
	x1 := float32(r.position.X + r.size.X)
	y1 := float32(r.position.Y + r.size.Y)
	color := r.fill.premultiplied()

	data := make([]byte, 0, 6*solidVertexStride)
	data = appendVertex(data, x0, y0, color)
	data = appendVertex(data, x1, y0, color)
	data = appendVertex(data, x1, y1, color)
	data = appendVertex(data, x0, y0, color)
	data = appendVertex(data, x1, y1, color)
	data = appendVertex(data, x0, y1, color)

	if err := rp.drawSolid(data, 6); err != nil {
		slogger().Warn("graphics: rectangle draw failed", "error", err)
	}
}
