package font

import "testing"

func TestBuiltinShaper(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)
	shaper := &BuiltinShaper{}

	glyphs := shaper.Shape("abc", face)
	if len(glyphs) != 3 {
		t.Fatalf("Shape(\"abc\") returned %d glyphs, want 3", len(glyphs))
	}

	var pen float64
	for i, g := range glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d: Cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.X != pen {
			t.Errorf("glyph %d: X = %f, want %f", i, g.X, pen)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance = %f, want > 0", i, g.XAdvance)
		}
		pen += g.XAdvance
	}
}

func TestBuiltinShaperEmpty(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	shaper := &BuiltinShaper{}
	if got := shaper.Shape("", source.Face(16)); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := shaper.Shape("abc", nil); got != nil {
		t.Errorf("Shape with nil face = %v, want nil", got)
	}
}

func TestSetShaper(t *testing.T) {
	original := GetShaper()
	defer SetShaper(original)

	custom := &BuiltinShaper{}
	SetShaper(custom)
	if GetShaper() != Shaper(custom) {
		t.Error("GetShaper() should return the installed shaper")
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Errorf("SetShaper(nil) should reset to BuiltinShaper, got %T", GetShaper())
	}
}

func TestGoTextShaper(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)
	shaper := NewGoTextShaper()
	defer shaper.RemoveSource(source)

	glyphs := shaper.Shape("Hello", face)
	if len(glyphs) == 0 {
		t.Fatal("Shape(\"Hello\") returned no glyphs")
	}

	var total float64
	for _, g := range glyphs {
		total += g.XAdvance
	}
	if total <= 0 {
		t.Errorf("total advance = %f, want > 0", total)
	}

	// HarfBuzz and the builtin shaper agree closely for plain Latin.
	builtin := face.Advance("Hello")
	if diff := total - builtin; diff < -2 || diff > 2 {
		t.Errorf("shaped width %f deviates from builtin %f by more than 2px", total, builtin)
	}
}
