package cairo

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

var fontOptionsKind = &handle.Kind{
	Name:  "cairo.FontOptions",
	Unref: func(p uintptr) { ffi.Cairo.FontOptionsDestroy(p) },
}

// FontOptions holds rendering options passed to the font system.
// Options objects are owned outright, not refcounted.
type FontOptions struct {
	h *handle.Handle
}

// NewFontOptions creates a default-initialized options object.
func NewFontOptions() (*FontOptions, error) {
	if !ffi.CairoLoaded() {
		return nil, errors.NotLoaded("libcairo")
	}
	h, err := handle.TakeOwnership(fontOptionsKind, ffi.Cairo.FontOptionsCreate())
	if err != nil {
		return nil, err
	}
	o := &FontOptions{h: h}
	if err := o.Status(); err != nil {
		o.Close()
		return nil, err
	}
	return o, nil
}

// Native returns the native pointer.
func (o *FontOptions) Native() uintptr { return o.h.Ptr() }

// Close destroys the options object. Idempotent.
func (o *FontOptions) Close() error { return o.h.Close() }

// Status surfaces the options object's error state.
func (o *FontOptions) Status() error {
	return status.FromCode(ffi.Cairo.FontOptionsStatus(o.h.Ptr())).ToError()
}

var fontFaceKind = &handle.Kind{
	Name:  "cairo.FontFace",
	Ref:   func(p uintptr) { ffi.Cairo.FontFaceReference(p) },
	Unref: func(p uintptr) { ffi.Cairo.FontFaceDestroy(p) },
}

// FontFace is an unscaled font.
type FontFace struct {
	h *handle.Handle
}

// FontFaceFromFull wraps ptr, assuming ownership of one existing reference.
func FontFaceFromFull(ptr uintptr) (*FontFace, error) {
	h, err := handle.TakeOwnership(fontFaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontFace{h: h}, nil
}

// FontFaceFromNone wraps ptr after taking a new reference.
func FontFaceFromNone(ptr uintptr) (*FontFace, error) {
	h, err := handle.AdoptReference(fontFaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontFace{h: h}, nil
}

// Native returns the native pointer.
func (f *FontFace) Native() uintptr { return f.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (f *FontFace) Clone() (*FontFace, error) {
	h, err := f.h.Clone()
	if err != nil {
		return nil, err
	}
	return &FontFace{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (f *FontFace) Close() error { return f.h.Close() }

// Status surfaces the font face's sticky error state.
func (f *FontFace) Status() error {
	return status.FromCode(ffi.Cairo.FontFaceStatus(f.h.Ptr())).ToError()
}

var scaledFontKind = &handle.Kind{
	Name:  "cairo.ScaledFont",
	Ref:   func(p uintptr) { ffi.Cairo.ScaledFontRef(p) },
	Unref: func(p uintptr) { ffi.Cairo.ScaledFontDestroy(p) },
}

// ScaledFont is a font face at a particular size and transformation.
type ScaledFont struct {
	h *handle.Handle
}

// ScaledFontFromFull wraps ptr, assuming ownership of one existing
// reference.
func ScaledFontFromFull(ptr uintptr) (*ScaledFont, error) {
	h, err := handle.TakeOwnership(scaledFontKind, ptr)
	if err != nil {
		return nil, err
	}
	return &ScaledFont{h: h}, nil
}

// ScaledFontFromNone wraps ptr after taking a new reference.
func ScaledFontFromNone(ptr uintptr) (*ScaledFont, error) {
	h, err := handle.AdoptReference(scaledFontKind, ptr)
	if err != nil {
		return nil, err
	}
	return &ScaledFont{h: h}, nil
}

// Native returns the native pointer.
func (f *ScaledFont) Native() uintptr { return f.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (f *ScaledFont) Clone() (*ScaledFont, error) {
	h, err := f.h.Clone()
	if err != nil {
		return nil, err
	}
	return &ScaledFont{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (f *ScaledFont) Close() error { return f.h.Close() }

// Status surfaces the scaled font's sticky error state.
func (f *ScaledFont) Status() error {
	return status.FromCode(ffi.Cairo.ScaledFontStatus(f.h.Ptr())).ToError()
}
