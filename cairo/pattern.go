package cairo

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

var patternKind = &handle.Kind{
	Name:  "cairo.Pattern",
	Ref:   func(p uintptr) { ffi.Cairo.PatternReference(p) },
	Unref: func(p uintptr) { ffi.Cairo.PatternDestroy(p) },
}

// Pattern is a paint source: a solid color, gradient or surface.
type Pattern struct {
	h *handle.Handle
}

// NewSolidPattern creates an opaque single-color pattern.
func NewSolidPattern(red, green, blue float64) (*Pattern, error) {
	if !ffi.CairoLoaded() {
		return nil, errors.NotLoaded("libcairo")
	}
	return newPattern(ffi.Cairo.PatternCreateRGB(red, green, blue))
}

// NewSolidPatternRGBA creates a translucent single-color pattern.
func NewSolidPatternRGBA(red, green, blue, alpha float64) (*Pattern, error) {
	if !ffi.CairoLoaded() {
		return nil, errors.NotLoaded("libcairo")
	}
	return newPattern(ffi.Cairo.PatternCreateRGBA(red, green, blue, alpha))
}

func newPattern(ptr uintptr) (*Pattern, error) {
	p, err := PatternFromFull(ptr)
	if err != nil {
		return nil, err
	}
	if err := p.Status(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// PatternFromFull wraps ptr, assuming ownership of one existing reference.
func PatternFromFull(ptr uintptr) (*Pattern, error) {
	h, err := handle.TakeOwnership(patternKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Pattern{h: h}, nil
}

// PatternFromNone wraps ptr after taking a new reference.
func PatternFromNone(ptr uintptr) (*Pattern, error) {
	h, err := handle.AdoptReference(patternKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Pattern{h: h}, nil
}

// Native returns the native pointer.
func (p *Pattern) Native() uintptr { return p.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (p *Pattern) Clone() (*Pattern, error) {
	h, err := p.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Pattern{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (p *Pattern) Close() error { return p.h.Close() }

// Status surfaces the pattern's sticky error state.
func (p *Pattern) Status() error {
	return status.FromCode(ffi.Cairo.PatternStatus(p.h.Ptr())).ToError()
}
