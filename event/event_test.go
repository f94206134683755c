package event

import "testing"

func TestMouseButtonString(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want string
	}{
		{ButtonLeft, "Left"},
		{ButtonRight, "Right"},
		{ButtonMiddle, "Middle"},
		{ButtonOther, "Other"},
		{MouseButton(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestElementStateString(t *testing.T) {
	tests := []struct {
		s    ElementState
		want string
	}{
		{Pressed, "Pressed"},
		{Released, "Released"},
		{ElementState(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("ElementState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestEventSumIsClosed(t *testing.T) {
	// Both concrete kinds must satisfy the sealed interface.
	events := []Event{
		CursorMoved{X: 1, Y: 2},
		MouseInput{Button: ButtonLeft, State: Pressed},
	}

	for _, ev := range events {
		switch ev.(type) {
		case CursorMoved, MouseInput:
		default:
			t.Errorf("unexpected event type %T", ev)
		}
	}
}
