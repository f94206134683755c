package graphics

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V(25, 40), true},
		{"top-left corner", V(10, 20), true},
		{"bottom-right corner", V(40, 60), true},
		{"on left edge", V(10, 30), true},
		{"on right edge", V(40, 30), true},
		{"left of", V(9.9, 30), false},
		{"right of", V(40.1, 30), false},
		{"above", V(25, 19.9), false},
		{"below", V(25, 60.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsMinMaxSize(t *testing.T) {
	b := Bounds{X: 1, Y: 2, W: 3, H: 4}

	if got := b.Min(); got != V(1, 2) {
		t.Errorf("Min() = %v, want (1, 2)", got)
	}
	if got := b.Max(); got != V(4, 6) {
		t.Errorf("Max() = %v, want (4, 6)", got)
	}
	if got := b.Size(); got != V(3, 4) {
		t.Errorf("Size() = %v, want (3, 4)", got)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if (Bounds{X: 1, Y: 1, W: 1, H: 1}).Empty() {
		t.Error("non-degenerate bounds should not be empty")
	}
	if !(Bounds{W: 0, H: 5}).Empty() {
		t.Error("zero-width bounds should be empty")
	}
	if !(Bounds{W: 5, H: 0}).Empty() {
		t.Error("zero-height bounds should be empty")
	}
}
