package ui

import (
	"github.com/gogpu/ui/event"
	"github.com/gogpu/ui/graphics"
)

// Transformable is anything with a movable anchor point.
type Transformable interface {
	Position() Vec2
	SetPosition(Vec2)
}

// Drawable is anything that can record itself into a render pass. The
// render pass is borrowed for the duration of the call only.
type Drawable interface {
	Draw(rp *graphics.RenderPass)
}

// Widget is the contract shared by all interactive widgets. A widget has
// an outer extent, a visibility flag, and consumes window events one at a
// time in the order the host delivers them.
type Widget interface {
	Transformable
	Drawable

	Size() Vec2
	SetSize(Vec2)
	Visible() bool
	SetVisibility(bool)
	Update()
	ProcessEvent(event.Event)
}
