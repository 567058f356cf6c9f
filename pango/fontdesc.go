package pango

import (
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var fontDescKind = &handle.Kind{
	Name:  "pango.FontDescription",
	Unref: func(p uintptr) { ffi.Pango.FontDescriptionFree(p) },
	Copy:  func(p uintptr) uintptr { return ffi.Pango.FontDescriptionCopy(p) },
}

// FontDescription describes a font by family, style and size. It is a
// plain record without a reference count: wrappers own it outright and
// clones duplicate the native memory.
type FontDescription struct {
	h *handle.Handle
}

// FontDescriptionFromFull wraps ptr, assuming ownership of the record.
func FontDescriptionFromFull(ptr uintptr) (*FontDescription, error) {
	h, err := handle.TakeOwnership(fontDescKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontDescription{h: h}, nil
}

// FontDescriptionFromNone wraps a record owned elsewhere by duplicating
// it.
func FontDescriptionFromNone(ptr uintptr) (*FontDescription, error) {
	h, err := handle.AdoptReference(fontDescKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontDescription{h: h}, nil
}

// BorrowFontDescription wraps ptr without copying or freeing it.
func BorrowFontDescription(ptr uintptr) (*FontDescription, error) {
	h, err := handle.Borrow(fontDescKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontDescription{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (d *FontDescription) Native() uintptr { return d.h.Ptr() }

// Clone duplicates the record; the clone owns distinct native memory.
func (d *FontDescription) Clone() (*FontDescription, error) {
	h, err := d.h.Clone()
	if err != nil {
		return nil, err
	}
	return &FontDescription{h: h}, nil
}

// Close frees the record when owned. Idempotent.
func (d *FontDescription) Close() error { return d.h.Close() }

// Family returns the description's font family.
func (d *FontDescription) Family() string {
	return ffi.Pango.FontDescriptionGetFamily(d.h.Ptr())
}

// String renders the description in pango's "Family Style Size" form. The
// native buffer is freed after copying.
func (d *FontDescription) String() string {
	p := ffi.Pango.FontDescriptionToString(d.h.Ptr())
	s := ffi.GoString(p)
	ffi.GLib.Free(p)
	return s
}
