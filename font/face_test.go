package font

import "testing"

func TestFaceMetrics(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12.0},
		{"size 16", 16.0},
		{"size 30", 30.0},
		{"size 48", 48.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := source.Face(tt.size).Metrics()

			if m.Ascent <= 0 {
				t.Errorf("Ascent = %f, want > 0", m.Ascent)
			}
			if m.Descent <= 0 {
				t.Errorf("Descent = %f, want > 0", m.Descent)
			}
			if m.LineGap < 0 {
				t.Errorf("LineGap = %f, want >= 0", m.LineGap)
			}
			if got := m.LineHeight(); got != m.Ascent+m.Descent+m.LineGap {
				t.Errorf("LineHeight() = %f, want %f", got, m.Ascent+m.Descent+m.LineGap)
			}
		})
	}
}

func TestFaceMetricsScale(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	m12 := source.Face(12).Metrics()
	m24 := source.Face(24).Metrics()

	ratio := m24.Ascent / m12.Ascent
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("ascent scaling 12->24: ratio = %f, want ~2.0", ratio)
	}
}

func TestFaceGlyphIndex(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)

	if gid := face.GlyphIndex('A'); gid == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}
	// U+FFFF is not mapped in Go Regular; missing runes map to .notdef.
	if gid := face.GlyphIndex('￿'); gid != 0 {
		t.Errorf("GlyphIndex(unmapped) = %d, want 0", gid)
	}
}

func TestFaceAdvance(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)

	if face.Advance("") != 0 {
		t.Error("Advance(\"\") should be 0")
	}

	single := face.Advance("H")
	if single <= 0 {
		t.Errorf("Advance(\"H\") = %f, want > 0", single)
	}

	double := face.Advance("HH")
	if diff := double - 2*single; diff < -0.01 || diff > 0.01 {
		t.Errorf("Advance(\"HH\") = %f, want %f", double, 2*single)
	}
}

func TestFaceMeasure(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(30)

	w, h := face.Measure("Hello")
	if w <= 0 {
		t.Errorf("Measure width = %f, want > 0", w)
	}
	m := face.Metrics()
	if h != m.Ascent+m.Descent {
		t.Errorf("Measure height = %f, want ascent+descent = %f", h, m.Ascent+m.Descent)
	}

	wider, _ := face.Measure("Hello, world")
	if wider <= w {
		t.Errorf("longer string should measure wider: %f <= %f", wider, w)
	}
}
