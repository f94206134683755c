package font

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file. One Source can create multiple Face
// instances at different sizes.
//
// Source is safe for concurrent use and must not be copied after creation
// (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection. It must point to the Source itself.
	addr *Source

	data   []byte
	parsed *sfnt.Font
	name   string

	mu     sync.Mutex
	closed bool
}

// NewSource creates a Source from font data (TTF or OTF). The data slice is
// copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s
	s.name = extractName(parsed)

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Face creates a Face at the specified size in logical pixels. Multiple
// faces can be created from the same Source.
//
// Panics if s is nil (e.g. when a NewSourceFromFile error was ignored).
func (s *Source) Face(size float64) *Face {
	if s == nil {
		panic("font: Face called on nil Source")
	}
	s.copyCheck()

	return &Face{
		source: s,
		size:   size,
	}
}

// Name returns the font family name, or an empty string if the font does
// not record one.
func (s *Source) Name() string {
	return s.name
}

// Data returns the raw font file bytes. Callers must not mutate the slice.
func (s *Source) Data() []byte {
	return s.data
}

// Close releases the font data. Faces created from the source must not be
// used after Close.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if the Source was copied by value after creation.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: illegal use of non-zero Source copied by value")
	}
}

func extractName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}
