package cairo

import (
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

// Paths are owned outright rather than refcounted; cairo offers no
// cairo_path_reference, so Path has no Clone.
var pathKind = &handle.Kind{
	Name:  "cairo.Path",
	Unref: func(p uintptr) { ffi.Cairo.PathDestroy(p) },
}

// Path is a snapshot of a context's path, as returned by CopyPath.
type Path struct {
	h *handle.Handle
}

// PathFromFull wraps ptr, assuming ownership of the path.
func PathFromFull(ptr uintptr) (*Path, error) {
	h, err := handle.TakeOwnership(pathKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Path{h: h}, nil
}

// Native returns the native pointer.
func (p *Path) Native() uintptr { return p.h.Ptr() }

// Close destroys the path. Idempotent.
func (p *Path) Close() error { return p.h.Close() }
