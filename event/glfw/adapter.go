// Package glfw adapts GLFW window callbacks to ui/event values.
//
// The adapter installs cursor-position and mouse-button callbacks on a
// window and buffers the translated events until the host drains them,
// once per frame, on the same thread that pumps glfw.PollEvents:
//
//	adapter := glfwevent.Attach(window)
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    for _, ev := range adapter.Drain() {
//	        button.ProcessEvent(ev)
//	    }
//	    // render ...
//	}
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ui/event"
)

// Adapter buffers translated window events. It is not safe for concurrent
// use; GLFW delivers callbacks on the main thread and Drain must be called
// from the same thread.
type Adapter struct {
	pending []event.Event
}

// Attach installs callbacks on the window and returns the adapter that
// collects their events. Previously installed cursor-position and
// mouse-button callbacks are replaced.
func Attach(window *glfw.Window) *Adapter {
	a := &Adapter{}

	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		a.pending = append(a.pending, event.CursorMoved{X: xpos, Y: ypos})
	})

	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		state, ok := translateAction(action)
		if !ok {
			// Repeat actions are keyboard-only in GLFW; ignore anything
			// unexpected rather than inventing a state.
			return
		}
		a.pending = append(a.pending, event.MouseInput{
			Button: translateButton(button),
			State:  state,
		})
	})

	return a
}

// Drain returns the buffered events in arrival order and empties the
// buffer.
func (a *Adapter) Drain() []event.Event {
	out := a.pending
	a.pending = nil
	return out
}

func translateButton(b glfw.MouseButton) event.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return event.ButtonLeft
	case glfw.MouseButtonRight:
		return event.ButtonRight
	case glfw.MouseButtonMiddle:
		return event.ButtonMiddle
	default:
		return event.ButtonOther
	}
}

func translateAction(a glfw.Action) (event.ElementState, bool) {
	switch a {
	case glfw.Press:
		return event.Pressed, true
	case glfw.Release:
		return event.Released, true
	default:
		return 0, false
	}
}
