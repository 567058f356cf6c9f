package gio

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/glib"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var permissionKind = &handle.Kind{
	Name:  "gio.Permission",
	Ref:   func(p uintptr) { ffi.GObject.ObjectRef(p) },
	Unref: func(p uintptr) { ffi.GObject.ObjectUnref(p) },
}

// Permission represents the ability of the calling process to perform one
// privileged action.
type Permission struct {
	h *handle.Handle
}

// NewSimplePermission builds a permission with a fixed verdict and no
// acquire or release paths.
func NewSimplePermission(allowed bool) (*Permission, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}
	return PermissionFromFull(ffi.Gio.SimplePermissionNew(cbool(allowed)))
}

// PermissionFromFull wraps ptr, assuming ownership of one existing
// reference.
func PermissionFromFull(ptr uintptr) (*Permission, error) {
	h, err := handle.TakeOwnership(permissionKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Permission{h: h}, nil
}

// PermissionFromNone wraps ptr after taking a new reference.
func PermissionFromNone(ptr uintptr) (*Permission, error) {
	h, err := handle.AdoptReference(permissionKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Permission{h: h}, nil
}

// BorrowPermission wraps ptr without touching the native reference count.
func BorrowPermission(ptr uintptr) (*Permission, error) {
	h, err := handle.Borrow(permissionKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Permission{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (p *Permission) Native() uintptr { return p.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (p *Permission) Clone() (*Permission, error) {
	h, err := p.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Permission{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (p *Permission) Close() error { return p.h.Close() }

// Allowed reports whether the action the permission guards may be
// performed right now.
func (p *Permission) Allowed() bool {
	return ffi.Gio.PermissionGetAllowed(p.h.Ptr()) != 0
}

// CanAcquire reports whether the process can try to obtain the
// permission.
func (p *Permission) CanAcquire() bool {
	return ffi.Gio.PermissionGetCanAcquire(p.h.Ptr()) != 0
}

// CanRelease reports whether the process can hand the permission back.
func (p *Permission) CanRelease() bool {
	return ffi.Gio.PermissionGetCanRelease(p.h.Ptr()) != 0
}

// ImplUpdate overwrites the permission's cached state. Reserved for
// permission implementations.
func (p *Permission) ImplUpdate(allowed, canAcquire, canRelease bool) {
	ffi.Gio.PermissionImplUpdate(p.h.Ptr(), cbool(allowed), cbool(canAcquire), cbool(canRelease))
}

// AsObject borrows the permission as a plain GObject for property access.
// The returned object must be closed before the permission.
func (p *Permission) AsObject() (*glib.Object, error) {
	return glib.BorrowObject(p.h.Ptr())
}

func cbool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
