package pango

import (
	"unsafe"

	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var fontFaceKind = &handle.Kind{
	Name:  "pango.FontFace",
	Ref:   func(p uintptr) { ffi.GObject.ObjectRef(p) },
	Unref: func(p uintptr) { ffi.GObject.ObjectUnref(p) },
}

// FontFace is one face of a font family, such as a family's italic or
// bold variant.
type FontFace struct {
	h *handle.Handle
}

// FontFaceFromFull wraps ptr, assuming ownership of one existing
// reference.
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

// BorrowFontFace wraps ptr without touching the native reference count.
func BorrowFontFace(ptr uintptr) (*FontFace, error) {
	h, err := handle.Borrow(fontFaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &FontFace{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
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

// Describe returns a new description of the face, owned by the caller.
func (f *FontFace) Describe() (*FontDescription, error) {
	if !ffi.PangoLoaded() {
		return nil, errors.NotLoaded("libpango")
	}
	return FontDescriptionFromFull(ffi.Pango.FontFaceDescribe(f.h.Ptr()))
}

// FaceName returns the face's name within its family, such as "Bold".
func (f *FontFace) FaceName() string {
	return ffi.Pango.FontFaceGetFaceName(f.h.Ptr())
}

// IsSynthesized reports whether the face is synthesized from another face
// rather than provided by the font itself.
func (f *FontFace) IsSynthesized() bool {
	return ffi.Pango.FontFaceIsSynthesized(f.h.Ptr()) != 0
}

// ListSizes returns the available sizes of a bitmap face in pango units.
// Scalable faces yield nil.
func (f *FontFace) ListSizes() []int32 {
	var (
		sizes unsafe.Pointer
		n     int32
	)
	ffi.Pango.FontFaceListSizes(f.h.Ptr(),
		unsafe.Pointer(&sizes), unsafe.Pointer(&n))
	if sizes == nil || n <= 0 {
		return nil
	}
	out := ffi.GoInt32Slice(sizes, int(n))
	ffi.GLib.Free(sizes)
	return out
}
