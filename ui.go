package ui

import (
	"github.com/gogpu/ui/graphics"
)

// Re-exported graphics types so that typical widget code only needs this
// package on its import line.
type (
	// Vec2 is a 2D point or extent in logical pixels.
	Vec2 = graphics.Vec2
	// Bounds is an axis-aligned rectangle, top-left origin, y down.
	Bounds = graphics.Bounds
	// RGBA is a floating-point straight-alpha color.
	RGBA = graphics.RGBA
	// Context is the drawing context handed to widgets at construction.
	Context = graphics.Context
	// RenderPass records widget draw commands for one frame.
	RenderPass = graphics.RenderPass
)

// Interaction palette shared by all widgets.
var (
	Red   = graphics.Red
	Green = graphics.Green
	Blue  = graphics.Blue
	White = graphics.White
	Black = graphics.Black
)

// V constructs a Vec2.
func V(x, y float64) Vec2 { return graphics.V(x, y) }
