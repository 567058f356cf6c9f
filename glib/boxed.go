package glib

import (
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

// NewBoxedKind builds a handle.Kind for a boxed record type. Boxed records
// carry no reference count, so release routes through g_boxed_free and the
// Copy hook makes the handle layer duplicate native memory wherever a
// refcounted type would take a reference.
//
// gtype is resolved lazily on each call because boxed GTypes only exist
// after the owning library registers them.
func NewBoxedKind(name string, gtype func() uintptr) *handle.Kind {
	return &handle.Kind{
		Name:  name,
		Unref: func(p uintptr) { ffi.GObject.BoxedFree(gtype(), p) },
		Copy:  func(p uintptr) uintptr { return ffi.GObject.BoxedCopy(gtype(), p) },
	}
}
