package cairo

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

var surfaceKind = &handle.Kind{
	Name:  "cairo.Surface",
	Ref:   func(p uintptr) { ffi.Cairo.SurfaceReference(p) },
	Unref: func(p uintptr) { ffi.Cairo.SurfaceDestroy(p) },
}

// Surface is a cairo drawing target.
type Surface struct {
	h *handle.Handle
}

// NewImageSurface creates an in-memory surface of the given pixel format.
func NewImageSurface(format Format, width, height int) (*Surface, error) {
	if !ffi.CairoLoaded() {
		return nil, errors.NotLoaded("libcairo")
	}
	s, err := SurfaceFromFull(ffi.Cairo.ImageSurfaceCreate(int32(format), int32(width), int32(height)))
	if err != nil {
		return nil, err
	}
	if err := s.Status(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// SurfaceFromFull wraps ptr, assuming ownership of one existing reference.
func SurfaceFromFull(ptr uintptr) (*Surface, error) {
	h, err := handle.TakeOwnership(surfaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Surface{h: h}, nil
}

// SurfaceFromNone wraps ptr after taking a new reference.
func SurfaceFromNone(ptr uintptr) (*Surface, error) {
	h, err := handle.AdoptReference(surfaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Surface{h: h}, nil
}

// BorrowSurface wraps ptr without touching the native reference count.
func BorrowSurface(ptr uintptr) (*Surface, error) {
	h, err := handle.Borrow(surfaceKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Surface{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (s *Surface) Native() uintptr { return s.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (s *Surface) Clone() (*Surface, error) {
	h, err := s.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Surface{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (s *Surface) Close() error { return s.h.Close() }

// Status surfaces the surface's sticky error state.
func (s *Surface) Status() error {
	return status.FromCode(ffi.Cairo.SurfaceStatus(s.h.Ptr())).ToError()
}

// ReferenceCount returns the native reference count.
func (s *Surface) ReferenceCount() uint {
	return uint(ffi.Cairo.SurfaceGetReferenceCount(s.h.Ptr()))
}

// Width returns the width in pixels of an image surface.
func (s *Surface) Width() int {
	return int(ffi.Cairo.ImageSurfaceGetWidth(s.h.Ptr()))
}

// Height returns the height in pixels of an image surface.
func (s *Surface) Height() int {
	return int(ffi.Cairo.ImageSurfaceGetHeight(s.h.Ptr()))
}

// Flush completes pending drawing before external access to the pixels.
func (s *Surface) Flush() {
	ffi.Cairo.SurfaceFlush(s.h.Ptr())
}

// Finish severs the surface from its backend. Further drawing fails with
// SurfaceFinished.
func (s *Surface) Finish() {
	ffi.Cairo.SurfaceFinish(s.h.Ptr())
}

// WriteToPNG saves the surface contents to a PNG file.
func (s *Surface) WriteToPNG(filename string) error {
	return status.FromCode(ffi.Cairo.SurfaceWriteToPNG(s.h.Ptr(), filename)).ToError()
}
