package convert

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ytget/office-converter/internal/model"
)

// ErrUnsupportedMode is returned when no converter is registered for a mode
var ErrUnsupportedMode = errors.New("no converter registered for mode")

// Converter converts a single file. output is either a directory or an
// explicit file path, depending on the mode (see model.ConversionMode.OutputLocation).
type Converter interface {
	Convert(ctx context.Context, inputPath, output string) error
}

// ConverterFunc adapts a function to the Converter interface
type ConverterFunc func(ctx context.Context, inputPath, output string) error

// Convert calls f(ctx, inputPath, output)
func (f ConverterFunc) Convert(ctx context.Context, inputPath, output string) error {
	return f(ctx, inputPath, output)
}

// Registry is the mode to converter dispatch table
type Registry struct {
	mu         sync.RWMutex
	converters map[model.ConversionMode]Converter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[model.ConversionMode]Converter),
	}
}

// Register binds a converter to a mode, replacing any previous binding
func (r *Registry) Register(mode model.ConversionMode, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[mode] = c
}

// ConverterFor returns the converter bound to mode
func (r *Registry) ConverterFor(mode model.ConversionMode) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[mode]
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	return c, nil
}

// Modes returns the registered modes in display order
func (r *Registry) Modes() []model.ConversionMode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var modes []model.ConversionMode
	for _, mode := range model.Modes() {
		if _, ok := r.converters[mode]; ok {
			modes = append(modes, mode)
		}
	}
	return modes
}
