package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestSource loads the embedded Go Regular font for testing.
func loadTestSource(t *testing.T) *Source {
	t.Helper()

	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}

	return source
}

func TestNewSource(t *testing.T) {
	source := loadTestSource(t)
	defer func() {
		if err := source.Close(); err != nil {
			t.Errorf("failed to close font source: %v", err)
		}
	}()

	if source.Name() == "" {
		t.Error("Name() should not be empty for Go Regular")
	}
	if len(source.Data()) == 0 {
		t.Error("Data() should return the raw font bytes")
	}
}

func TestNewSourceEmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}

	_, err = NewSource([]byte{})
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(empty) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceInvalidData(t *testing.T) {
	_, err := NewSource([]byte("this is not a font"))
	if err == nil {
		t.Error("NewSource with garbage data should fail")
	}
}

func TestSourceDataIsCopied(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	defer source.Close()

	// Mutating the caller's slice must not affect the source.
	data[0] = 0xFF
	if source.Data()[0] == 0xFF {
		t.Error("Source should hold its own copy of the font data")
	}
}

func TestSourceFace(t *testing.T) {
	source := loadTestSource(t)
	defer source.Close()

	face := source.Face(16)
	if face == nil {
		t.Fatal("Face(16) returned nil")
	}
	if face.Size() != 16 {
		t.Errorf("face.Size() = %v, want 16", face.Size())
	}
	if face.Source() != source {
		t.Error("face.Source() should return the originating source")
	}
}
