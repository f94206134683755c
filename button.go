package ui

import (
	"fmt"

	"github.com/gogpu/ui/event"
	"github.com/gogpu/ui/graphics"
)

// Paddings is the space between a widget's content and its outer edge, in
// logical pixels.
type Paddings struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left + Right.
func (p Paddings) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Paddings) Vertical() float64 { return p.Top + p.Bottom }

// Button is a clickable, hoverable push button: a filled rectangle with a
// centered text label. It consumes window events via [Button.ProcessEvent]
// and queues semantic events the host drains once per frame.
//
// The fill color tracks the interaction state. Idle is red, hover is
// green, pressed is blue. A release does not reset the color; the next
// cursor move does.
type Button struct {
	rect  *graphics.RectangleShape
	label *graphics.Text

	position Vec2
	paddings Paddings
	size     Vec2

	// Pointer state is undefined until the first cursor move; until then
	// every press counts as out of bounds.
	mousePos   Vec2
	mouseKnown bool

	events  []ButtonEvent
	visible bool
}

var (
	_ Widget   = (*Button)(nil)
	_ Drawable = (*Button)(nil)
)

// NewButton creates a button displaying text. The label font is resolved
// from the context's asset registry ("Roboto.ttf" unless [WithFont]
// overrides it); construction fails if the font is not registered. The
// button starts at the origin, sized to the label bounds plus paddings.
func NewButton(text string, ctx graphics.Context, opts ...ButtonOption) (*Button, error) {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := ctx.Assets().Font(cfg.fontName)
	if err != nil {
		return nil, fmt.Errorf("ui: button %q: %w", text, err)
	}

	label := graphics.NewText(ctx, text, src)
	label.SetCharacterSize(cfg.characterSize)
	lb := label.Bounds()

	rect := graphics.NewRectangleShape(ctx, V(lb.W, lb.H))
	rect.SetFillColor(Red)

	b := &Button{
		rect:     rect,
		label:    label,
		paddings: cfg.paddings,
		visible:  true,
	}
	b.Update()

	slogger().Debug("ui: button created",
		"text", text, "font", cfg.fontName, "size", b.size)
	return b, nil
}

// Position returns the button's top-left anchor.
func (b *Button) Position() Vec2 { return b.position }

// SetPosition moves the button's top-left anchor and re-centers the label
// inside the rectangle. The size is unchanged.
func (b *Button) SetPosition(p Vec2) {
	b.position = p
	b.rect.SetPosition(p)
	b.centerLabel()
}

// Visible reports the display flag.
func (b *Button) Visible() bool { return b.visible }

// SetVisibility sets the display flag. Visibility does not affect event
// handling or the event queue.
func (b *Button) SetVisibility(v bool) { b.visible = v }

// Size returns the rectangle's current outer extent.
func (b *Button) Size() Vec2 { return b.rect.Size() }

// SetSize sets an explicit outer extent. Paddings are added on top of the
// given extent. The override lasts until the next [Button.Update], which
// recomputes the extent from the label bounds.
func (b *Button) SetSize(size Vec2) {
	size.X += b.paddings.Horizontal()
	size.Y += b.paddings.Vertical()
	b.size = size
	b.rect.SetSize(size)
}

// Paddings returns the current paddings.
func (b *Button) Paddings() Paddings { return b.paddings }

// SetPaddings replaces the paddings and recomputes the layout.
func (b *Button) SetPaddings(p Paddings) {
	b.paddings = p
	b.Update()
}

// SetCharacterSize forwards the character size to the label. The layout
// settles on the next [Button.Update].
func (b *Button) SetCharacterSize(size float64) {
	b.label.SetCharacterSize(size)
}

// Update recomputes the rectangle's extent from the label bounds plus
// paddings and centers the label inside it. Centering is unrounded.
func (b *Button) Update() {
	lb := b.label.Bounds()
	size := V(lb.W+b.paddings.Horizontal(), lb.H+b.paddings.Vertical())

	b.size = size
	b.rect.SetSize(size)
	b.rect.SetPosition(b.position)
	b.centerLabel()
}

func (b *Button) centerLabel() {
	lb := b.label.Bounds()
	size := b.rect.Size()
	b.label.SetPosition(V(
		b.position.X+(size.X-lb.W)/2,
		b.position.Y+(size.Y-lb.H)/2,
	))
}

// ProcessEvent feeds one window event into the interaction state machine.
// Cursor moves inside the rectangle turn it green and queue a hover; moves
// outside turn it red. A left press while inside turns it blue and queues
// a click. Releases, non-left buttons, and unknown events are dropped.
func (b *Button) ProcessEvent(ev event.Event) {
	bounds := b.rect.Bounds()

	switch e := ev.(type) {
	case event.CursorMoved:
		b.mousePos = V(e.X, e.Y).Round()
		b.mouseKnown = true

		if bounds.Contains(b.mousePos) {
			b.rect.SetFillColor(Green)
			b.events = append(b.events, ButtonEventHover)
		} else {
			b.rect.SetFillColor(Red)
		}

	case event.MouseInput:
		if e.Button != event.ButtonLeft || e.State != event.Pressed {
			return
		}
		if b.mouseKnown && bounds.Contains(b.mousePos) {
			b.rect.SetFillColor(Blue)
			b.events = append(b.events, ButtonEventClick)
		}
	}
}

// Events drains the queue in FIFO order, invoking handler with each
// event's numeric code.
func (b *Button) Events(handler func(code uint32)) {
	for _, e := range b.events {
		handler(uint32(e))
	}
	b.events = b.events[:0]
}

// Emitted drains the queue and reports whether at least one drained event
// equals kind. The drain is destructive: unmatched events are discarded.
func (b *Button) Emitted(kind ButtonEvent) bool {
	found := false
	for _, e := range b.events {
		if e == kind {
			found = true
		}
	}
	b.events = b.events[:0]
	return found
}

// Drain removes and returns all queued events in FIFO order.
func (b *Button) Drain() []ButtonEvent {
	if len(b.events) == 0 {
		return nil
	}
	drained := append([]ButtonEvent(nil), b.events...)
	b.events = b.events[:0]
	return drained
}

// Draw records the rectangle and then the label into the render pass, so
// the label is always on top.
func (b *Button) Draw(rp *graphics.RenderPass) {
	b.rect.Draw(rp)
	b.label.Draw(rp)
}
