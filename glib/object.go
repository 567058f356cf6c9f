package glib

import (
	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

var objectKind = &handle.Kind{
	Name:  "glib.Object",
	Ref:   func(p uintptr) { ffi.GObject.ObjectRef(p) },
	Unref: func(p uintptr) { ffi.GObject.ObjectUnref(p) },
}

// Object wraps one GObject instance.
type Object struct {
	h *handle.Handle
}

// ObjectFromFull wraps ptr, assuming ownership of one existing reference.
func ObjectFromFull(ptr uintptr) (*Object, error) {
	h, err := handle.TakeOwnership(objectKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Object{h: h}, nil
}

// ObjectFromNone wraps ptr after taking a new reference.
func ObjectFromNone(ptr uintptr) (*Object, error) {
	h, err := handle.AdoptReference(objectKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Object{h: h}, nil
}

// BorrowObject wraps ptr without touching the native reference count.
func BorrowObject(ptr uintptr) (*Object, error) {
	h, err := handle.Borrow(objectKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Object{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (o *Object) Native() uintptr { return o.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (o *Object) Clone() (*Object, error) {
	h, err := o.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Object{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (o *Object) Close() error { return o.h.Close() }

// BoolProperty reads a boolean GObject property.
func (o *Object) BoolProperty(name string) (bool, error) {
	if !ffi.GObjectLoaded() {
		return false, errors.NotLoaded("libgobject")
	}
	v := NewValue(TypeBoolean)
	defer v.Unset()
	ffi.GObject.ObjectGetProperty(o.h.Ptr(), name, v.ptr())
	return v.Bool(), nil
}

// StringProperty reads a string GObject property.
func (o *Object) StringProperty(name string) (string, error) {
	if !ffi.GObjectLoaded() {
		return "", errors.NotLoaded("libgobject")
	}
	v := NewValue(TypeString)
	defer v.Unset()
	ffi.GObject.ObjectGetProperty(o.h.Ptr(), name, v.ptr())
	return v.String(), nil
}
