// Package assets provides a named registry for shared UI resources.
//
// Widgets resolve fonts by name at construction time, so the registry must
// be populated before any widget is created:
//
//	if err := assets.Default().LoadFont("Roboto.ttf", "fonts/Roboto.ttf"); err != nil {
//	    log.Fatal(err)
//	}
package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/ui/font"
)

// ErrFontNotFound is returned when a requested font name has not been
// registered.
var ErrFontNotFound = errors.New("assets: font not found")

// Registry is a concurrency-safe store of named resources. The zero value
// is not usable; call NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*font.Source
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*font.Source),
	}
}

// defaultRegistry is the process-wide registry used by widgets that are
// not given an explicit one.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// RegisterFont stores a font source under name, replacing any previous
// entry. The registry takes no ownership: closing the previous source is
// the caller's responsibility.
func (r *Registry) RegisterFont(name string, src *font.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[name] = src
}

// LoadFont reads and parses a font file and registers it under name.
func (r *Registry) LoadFont(name, path string) error {
	src, err := font.NewSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("assets: load font %q: %w", name, err)
	}
	r.RegisterFont(name, src)
	return nil
}

// Font returns the font source registered under name.
func (r *Registry) Font(name string) (*font.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return src, nil
}

// FontNames returns the names of all registered fonts in no particular
// order.
func (r *Registry) FontNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	return names
}

// Close releases all registered font sources and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for name, src := range r.fonts {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("assets: close font %q: %w", name, err)
		}
	}
	r.fonts = make(map[string]*font.Source)
	return firstErr
}
