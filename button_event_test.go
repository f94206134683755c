package ui

import "testing"

func TestButtonEventFrom(t *testing.T) {
	tests := []struct {
		code uint32
		want ButtonEvent
	}{
		{0, ButtonEventClick},
		{1, ButtonEventHover},
		{2, ButtonEventHover},
		{42, ButtonEventHover},
	}
	for _, tt := range tests {
		if got := ButtonEventFrom(tt.code); got != tt.want {
			t.Errorf("ButtonEventFrom(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestButtonEventRoundTrip(t *testing.T) {
	for _, e := range []ButtonEvent{ButtonEventClick, ButtonEventHover} {
		if got := ButtonEventFrom(uint32(e)); got != e {
			t.Errorf("ButtonEventFrom(uint32(%v)) = %v, want identity", e, got)
		}
	}
}

func TestButtonEventString(t *testing.T) {
	tests := []struct {
		e    ButtonEvent
		want string
	}{
		{ButtonEventClick, "Click"},
		{ButtonEventHover, "Hover"},
		{ButtonEvent(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint32(tt.e), got, tt.want)
		}
	}
}
