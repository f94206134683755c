package ui

// ButtonEvent is a semantic event emitted by a Button. The numeric values
// are a wire contract for host-side polling: 0 is a click, any other value
// is a hover.
type ButtonEvent uint32

const (
	// ButtonEventClick is emitted when the left mouse button is pressed
	// while the pointer is inside the button.
	ButtonEventClick ButtonEvent = iota
	// ButtonEventHover is emitted on every cursor-move sample that lands
	// inside the button, not only on enter.
	ButtonEventHover
)

// ButtonEventFrom decodes a numeric event code. Zero decodes to
// [ButtonEventClick]; every other value decodes to [ButtonEventHover].
func ButtonEventFrom(code uint32) ButtonEvent {
	if code == 0 {
		return ButtonEventClick
	}
	return ButtonEventHover
}

// String returns the event name.
func (e ButtonEvent) String() string {
	switch e {
	case ButtonEventClick:
		return "Click"
	case ButtonEventHover:
		return "Hover"
	default:
		return "Unknown"
	}
}
