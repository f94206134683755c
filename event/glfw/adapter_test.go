package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ui/event"
)

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want event.MouseButton
	}{
		{glfw.MouseButtonLeft, event.ButtonLeft},
		{glfw.MouseButtonRight, event.ButtonRight},
		{glfw.MouseButtonMiddle, event.ButtonMiddle},
		{glfw.MouseButton4, event.ButtonOther},
		{glfw.MouseButton8, event.ButtonOther},
	}
	for _, tt := range tests {
		if got := translateButton(tt.in); got != tt.want {
			t.Errorf("translateButton(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslateAction(t *testing.T) {
	if state, ok := translateAction(glfw.Press); !ok || state != event.Pressed {
		t.Errorf("translateAction(Press) = %v, %v", state, ok)
	}
	if state, ok := translateAction(glfw.Release); !ok || state != event.Released {
		t.Errorf("translateAction(Release) = %v, %v", state, ok)
	}
	if _, ok := translateAction(glfw.Repeat); ok {
		t.Error("translateAction(Repeat) should be rejected")
	}
}

func TestAdapterDrainEmpty(t *testing.T) {
	a := &Adapter{}
	if got := a.Drain(); got != nil {
		t.Errorf("Drain() on empty adapter = %v, want nil", got)
	}
}

func TestAdapterDrainOrder(t *testing.T) {
	a := &Adapter{pending: []event.Event{
		event.CursorMoved{X: 1, Y: 1},
		event.MouseInput{Button: event.ButtonLeft, State: event.Pressed},
		event.CursorMoved{X: 2, Y: 2},
	}}

	got := a.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(got))
	}
	if _, ok := got[0].(event.CursorMoved); !ok {
		t.Errorf("event 0 is %T, want CursorMoved", got[0])
	}
	if _, ok := got[1].(event.MouseInput); !ok {
		t.Errorf("event 1 is %T, want MouseInput", got[1])
	}

	if again := a.Drain(); again != nil {
		t.Errorf("second Drain() = %v, want nil", again)
	}
}
