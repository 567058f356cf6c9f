package glib

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var variantKind = &handle.Kind{
	Name:  "glib.Variant",
	Ref:   func(p uintptr) { ffi.GLib.VariantRef(p) },
	Unref: func(p uintptr) { ffi.GLib.VariantUnref(p) },
}

// Variant wraps one GVariant. Construction sinks the floating reference a
// native variant constructor returns, so every wrapper owns a full
// reference.
type Variant struct {
	h *handle.Handle
}

// NewStringVariant builds a variant holding a UTF-8 string.
func NewStringVariant(value string) (*Variant, error) {
	if !ffi.GLibLoaded() {
		return nil, errors.NotLoaded("libglib")
	}
	ptr := ffi.GLib.VariantNewString(value)
	if ptr == 0 {
		return nil, errors.NilPointer(errors.PhaseAcquire, variantKind.Name)
	}
	return VariantFromFull(ffi.GLib.VariantRefSink(ptr))
}

// VariantFromFull wraps ptr, assuming ownership of one existing reference.
func VariantFromFull(ptr uintptr) (*Variant, error) {
	h, err := handle.TakeOwnership(variantKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Variant{h: h}, nil
}

// VariantFromNone wraps ptr after taking a new reference.
func VariantFromNone(ptr uintptr) (*Variant, error) {
	h, err := handle.AdoptReference(variantKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Variant{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (v *Variant) Native() uintptr { return v.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (v *Variant) Clone() (*Variant, error) {
	h, err := v.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Variant{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (v *Variant) Close() error { return v.h.Close() }

// Str copies the variant's string payload. The native buffer belongs to
// the variant and is not freed here.
func (v *Variant) Str() string {
	return ffi.GoString(ffi.GLib.VariantGetString(v.h.Ptr(), nil))
}
