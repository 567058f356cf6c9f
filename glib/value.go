package glib

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
)

// Fundamental GType numbers, as defined by gtype.h (type number << 2).
const (
	TypeBoolean uintptr = 5 << 2
	TypeString  uintptr = 16 << 2
)

// Value is a stack-allocated GValue: the GType slot followed by the
// two-word data union.
type Value struct {
	raw [3]uintptr
}

// NewValue returns a Value initialized for the given GType.
func NewValue(gtype uintptr) *Value {
	v := &Value{}
	ffi.GObject.ValueInit(v.ptr(), gtype)
	return v
}

func (v *Value) ptr() unsafe.Pointer { return unsafe.Pointer(&v.raw[0]) }

// Unset clears the value and releases anything it holds.
func (v *Value) Unset() { ffi.GObject.ValueUnset(v.ptr()) }

// Bool reads the boolean payload.
func (v *Value) Bool() bool { return ffi.GObject.ValueGetBoolean(v.ptr()) != 0 }

// String copies the string payload. The native string stays owned by the
// value, so no free happens here.
func (v *Value) String() string {
	return ffi.GoString(ffi.GObject.ValueGetString(v.ptr()))
}
