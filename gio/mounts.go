package gio

import (
	"unsafe"

	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/glib"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var mountEntryKind = glib.NewBoxedKind("gio.UnixMountEntry", func() uintptr {
	return ffi.Gio.UnixMountEntryGetType()
})

// UnixMountEntry is one row of the system mount table. It is a boxed
// record: cloning duplicates the native memory instead of sharing it.
type UnixMountEntry struct {
	h *handle.Handle
}

// MountEntryFromFull wraps ptr, assuming ownership of the record.
func MountEntryFromFull(ptr uintptr) (*UnixMountEntry, error) {
	h, err := handle.TakeOwnership(mountEntryKind, ptr)
	if err != nil {
		return nil, err
	}
	return &UnixMountEntry{h: h}, nil
}

// MountEntryFromNone wraps a record owned elsewhere by duplicating it.
func MountEntryFromNone(ptr uintptr) (*UnixMountEntry, error) {
	h, err := handle.AdoptReference(mountEntryKind, ptr)
	if err != nil {
		return nil, err
	}
	return &UnixMountEntry{h: h}, nil
}

// BorrowMountEntry wraps ptr without copying or freeing it.
func BorrowMountEntry(ptr uintptr) (*UnixMountEntry, error) {
	h, err := handle.Borrow(mountEntryKind, ptr)
	if err != nil {
		return nil, err
	}
	return &UnixMountEntry{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (e *UnixMountEntry) Native() uintptr { return e.h.Ptr() }

// Clone duplicates the record; the clone owns distinct native memory.
func (e *UnixMountEntry) Clone() (*UnixMountEntry, error) {
	h, err := e.h.Clone()
	if err != nil {
		return nil, err
	}
	return &UnixMountEntry{h: h}, nil
}

// Close frees the record when owned. Idempotent.
func (e *UnixMountEntry) Close() error { return e.h.Close() }

// MountPath returns where the entry is mounted.
func (e *UnixMountEntry) MountPath() string {
	return ffi.Gio.UnixMountGetMountPath(e.h.Ptr())
}

// DevicePath returns the device the entry mounts.
func (e *UnixMountEntry) DevicePath() string {
	return ffi.Gio.UnixMountGetDevice(e.h.Ptr())
}

// FSType returns the entry's filesystem type.
func (e *UnixMountEntry) FSType() string {
	return ffi.Gio.UnixMountGetFSType(e.h.Ptr())
}

// UnixMounts reads the current mount table. Every returned entry is owned
// by the caller and must be closed; an empty table yields an empty slice.
func UnixMounts() ([]*UnixMountEntry, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}

	var timeRead uint64
	list := ffi.Gio.UnixMountsGet(unsafe.Pointer(&timeRead))
	if list == nil {
		return nil, nil
	}
	defer glib.FreeList(list)

	var entries []*UnixMountEntry
	var fail error
	glib.EachListItem(list, func(data uintptr) {
		if fail != nil {
			// A malformed node already failed the read; release the
			// rest of the list without wrapping.
			ffi.GObject.BoxedFree(ffi.Gio.UnixMountEntryGetType(), data)
			return
		}
		e, err := MountEntryFromFull(data)
		if err != nil {
			fail = err
			return
		}
		entries = append(entries, e)
	})
	if fail != nil {
		for _, e := range entries {
			e.Close()
		}
		return nil, fail
	}
	return entries, nil
}
