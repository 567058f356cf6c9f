package fakelib

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
)

// GValue layout: the registered type at offset 0, the payload at offset 8.
const gvalueData = 8

func (l *Library) installGLib() {
	g := &ffi.GLib

	g.Free = func(mem unsafe.Pointer) {
		if mem == nil {
			return
		}
		l.mu.Lock()
		l.frees++
		l.mu.Unlock()
	}
	g.ListFree = func(list unsafe.Pointer) {
		if list == nil {
			return
		}
		l.mu.Lock()
		l.frees++
		l.mu.Unlock()
	}

	g.VariantNewString = func(value string) uintptr {
		ptr, o := l.alloc("GVariant")
		o.strValue = value
		o.boolProps["floating"] = true
		return ptr
	}
	g.VariantRefSink = l.refSink
	g.VariantRef = l.ref
	g.VariantUnref = l.unref
	g.VariantGetString = func(variant uintptr, length unsafe.Pointer) unsafe.Pointer {
		o := l.get(variant)
		putU64(length, uint64(len(o.strValue)))
		return l.cstr(o.strValue)
	}

	ob := &ffi.GObject

	ob.ObjectRef = l.ref
	ob.ObjectUnref = l.unref

	ob.BoxedCopy = func(_, src uintptr) uintptr {
		o := l.get(src)
		ptr, cp := l.alloc(o.Kind)
		cp.strValue = o.strValue
		for k, v := range o.strProps {
			cp.strProps[k] = v
		}
		return ptr
	}
	ob.BoxedFree = func(_, boxed uintptr) {
		o := l.get(boxed)
		l.mu.Lock()
		o.Freed = true
		l.frees++
		l.mu.Unlock()
	}

	ob.ValueInit = func(value unsafe.Pointer, gtype uintptr) unsafe.Pointer {
		putPtr(value, gtype)
		putPtr(unsafe.Add(value, gvalueData), 0)
		return value
	}
	ob.ValueUnset = func(value unsafe.Pointer) {
		putPtr(value, 0)
		putPtr(unsafe.Add(value, gvalueData), 0)
	}
	ob.ValueGetBoolean = func(value unsafe.Pointer) int32 {
		return int32(*(*uintptr)(unsafe.Add(value, gvalueData)))
	}
	ob.ValueGetString = func(value unsafe.Pointer) unsafe.Pointer {
		return *(*unsafe.Pointer)(unsafe.Add(value, gvalueData))
	}
	ob.ObjectGetProperty = func(object uintptr, name string, value unsafe.Pointer) {
		o := l.get(object)
		if b, ok := o.boolProps[name]; ok {
			var v uintptr
			if b {
				v = 1
			}
			putPtr(unsafe.Add(value, gvalueData), v)
			return
		}
		if s, ok := o.strProps[name]; ok {
			*(*unsafe.Pointer)(unsafe.Add(value, gvalueData)) = l.cstr(s)
		}
	}
}
