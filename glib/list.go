package glib

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
)

// glist mirrors the native GList node layout.
type glist struct {
	data uintptr
	next unsafe.Pointer
	prev unsafe.Pointer
}

// EachListItem walks a native GList, calling fn for every element's data
// pointer. The list itself is untouched; use FreeList when the caller owns
// the container.
func EachListItem(list unsafe.Pointer, fn func(data uintptr)) {
	for p := list; p != nil; {
		node := (*glist)(p)
		fn(node.data)
		p = node.next
	}
}

// FreeList releases the list container without touching element data.
func FreeList(list unsafe.Pointer) {
	if list != nil {
		ffi.GLib.ListFree(list)
	}
}
