package fakelib

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
)

func (l *Library) installPango() {
	p := &ffi.Pango

	p.FontFaceDescribe = func(face uintptr) uintptr {
		o := l.get(face)
		ptr, d := l.alloc("PangoFontDescription")
		d.family = o.family2
		d.strValue = o.family2 + " " + o.faceName
		return ptr
	}
	p.FontFaceGetFaceName = func(face uintptr) string { return l.get(face).faceName }
	p.FontFaceIsSynthesized = func(face uintptr) int32 {
		if l.get(face).synthesized {
			return 1
		}
		return 0
	}
	p.FontFaceListSizes = func(face uintptr, sizes, nSizes unsafe.Pointer) {
		o := l.get(face)
		if len(o.sizes) == 0 {
			if sizes != nil {
				*(*unsafe.Pointer)(sizes) = nil
			}
			putI32(nSizes, 0)
			return
		}
		out := append([]int32(nil), o.sizes...)
		l.mu.Lock()
		l.ints = append(l.ints, out)
		l.mu.Unlock()
		if sizes != nil {
			*(*unsafe.Pointer)(sizes) = unsafe.Pointer(&out[0])
		}
		putI32(nSizes, int32(len(out)))
	}

	p.FontDescriptionFree = func(desc uintptr) {
		o := l.get(desc)
		l.mu.Lock()
		o.Freed = true
		l.frees++
		l.mu.Unlock()
	}
	p.FontDescriptionCopy = func(desc uintptr) uintptr {
		o := l.get(desc)
		ptr, cp := l.alloc("PangoFontDescription")
		cp.family = o.family
		cp.strValue = o.strValue
		return ptr
	}
	p.FontDescriptionToString = func(desc uintptr) unsafe.Pointer {
		return l.cstr(l.get(desc).strValue)
	}
	p.FontDescriptionGetFamily = func(desc uintptr) string { return l.get(desc).family }
}
