// Package event defines the window event stream consumed by widgets.
//
// Events are a closed sum: every Event value is one of the concrete types
// in this package. Widgets receive them one at a time and silently ignore
// the kinds they do not handle, so hosts can forward the full window
// stream without filtering:
//
//	for _, ev := range window.Drain() {
//	    button.ProcessEvent(ev)
//	}
package event

// Event is a single window event. The interface is sealed: only the types
// in this package implement it.
type Event interface {
	isEvent()
}

// CursorMoved reports the pointer position in window coordinates (logical
// pixels, top-left origin).
type CursorMoved struct {
	X, Y float64
}

// MouseInput reports a mouse button press or release. The pointer position
// is not included; consumers track it from CursorMoved events.
type MouseInput struct {
	Button MouseButton
	State  ElementState
}

func (CursorMoved) isEvent() {}
func (MouseInput) isEvent()  {}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	// ButtonLeft is the primary mouse button.
	ButtonLeft MouseButton = iota
	// ButtonRight is the secondary mouse button.
	ButtonRight
	// ButtonMiddle is the middle (wheel) button.
	ButtonMiddle
	// ButtonOther is any additional button.
	ButtonOther
)

// String returns the string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ElementState is the press state carried by a MouseInput event.
type ElementState uint8

const (
	// Pressed means the button went down.
	Pressed ElementState = iota
	// Released means the button came up.
	Released
)

// String returns the string representation of the state.
func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}
