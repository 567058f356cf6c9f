package fakelib

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
)

// fake GType tag for GUnixMountEntry; BoxedCopy and BoxedFree key off the
// object table, not the type, so any stable non-zero value works.
const unixMountEntryType uintptr = 0xB0

func (l *Library) refSink(ptr uintptr) uintptr {
	o := l.get(ptr)
	l.mu.Lock()
	if o.boolProps["floating"] {
		delete(o.boolProps, "floating")
	} else {
		o.Refs++
	}
	l.mu.Unlock()
	return ptr
}

func (l *Library) installGio() {
	g := &ffi.Gio

	boolOf := func(ptr uintptr, name string) int32 {
		if l.get(ptr).boolProps[name] {
			return 1
		}
		return 0
	}
	g.PermissionGetAllowed = func(p uintptr) int32 { return boolOf(p, "allowed") }
	g.PermissionGetCanAcquire = func(p uintptr) int32 { return boolOf(p, "can-acquire") }
	g.PermissionGetCanRelease = func(p uintptr) int32 { return boolOf(p, "can-release") }
	g.PermissionImplUpdate = func(p uintptr, allowed, canAcquire, canRelease int32) {
		o := l.get(p)
		o.boolProps["allowed"] = allowed != 0
		o.boolProps["can-acquire"] = canAcquire != 0
		o.boolProps["can-release"] = canRelease != 0
	}
	g.SimplePermissionNew = func(allowed int32) uintptr {
		ptr, o := l.alloc("GPermission")
		o.boolProps["allowed"] = allowed != 0
		o.boolProps["can-acquire"] = false
		o.boolProps["can-release"] = false
		return ptr
	}

	g.UnixMountEntryGetType = func() uintptr { return unixMountEntryType }
	g.UnixMountsGet = func(timeRead unsafe.Pointer) unsafe.Pointer {
		putU64(timeRead, 1)
		l.mu.Lock()
		mounts := append([]MountSpec(nil), l.mounts...)
		l.mu.Unlock()
		if len(mounts) == 0 {
			return nil
		}
		nodes := make([]listNode, len(mounts))
		for i, m := range mounts {
			entry, o := l.alloc("GUnixMountEntry")
			o.strProps["mount-path"] = m.MountPath
			o.strProps["device-path"] = m.DevicePath
			o.strProps["fs-type"] = m.FSType
			nodes[i].data = entry
		}
		for i := range nodes {
			if i+1 < len(nodes) {
				nodes[i].next = unsafe.Pointer(&nodes[i+1])
			}
			if i > 0 {
				nodes[i].prev = unsafe.Pointer(&nodes[i-1])
			}
		}
		l.mu.Lock()
		l.lists = append(l.lists, nodes)
		l.mu.Unlock()
		return unsafe.Pointer(&nodes[0])
	}
	g.UnixMountGetMountPath = func(entry uintptr) string { return l.get(entry).strProps["mount-path"] }
	g.UnixMountGetDevice = func(entry uintptr) string { return l.get(entry).strProps["device-path"] }
	g.UnixMountGetFSType = func(entry uintptr) string { return l.get(entry).strProps["fs-type"] }

	newVariant := func(s string) uintptr {
		ptr, o := l.alloc("GVariant")
		o.strValue = s
		return ptr
	}
	g.MenuItemNew = func(label, detailedAction unsafe.Pointer) uintptr {
		ptr, o := l.alloc("GMenuItem")
		if label != nil {
			o.attrs["label"] = newVariant(ffi.GoString(label))
		}
		if detailedAction != nil {
			o.attrs["action"] = newVariant(ffi.GoString(detailedAction))
		}
		return ptr
	}
	g.MenuItemNewFromModel = func(model uintptr, _ int32) uintptr {
		l.get(model)
		ptr, _ := l.alloc("GMenuItem")
		return ptr
	}
	g.MenuItemNewSection = func(label unsafe.Pointer, section uintptr) uintptr {
		item := g.MenuItemNew(label, nil)
		g.MenuItemSetLink(item, "section", section)
		return item
	}
	g.MenuItemNewSubmenu = func(label unsafe.Pointer, submenu uintptr) uintptr {
		item := g.MenuItemNew(label, nil)
		g.MenuItemSetLink(item, "submenu", submenu)
		return item
	}
	g.MenuItemGetAttributeValue = func(item uintptr, attribute string, _ uintptr) uintptr {
		o := l.get(item)
		v, ok := o.attrs[attribute]
		if !ok {
			return 0
		}
		return l.ref(v)
	}
	g.MenuItemGetLink = func(item uintptr, link string) uintptr {
		o := l.get(item)
		m, ok := o.links[link]
		if !ok {
			return 0
		}
		return l.ref(m)
	}
	g.MenuItemSetAttributeValue = func(item uintptr, attribute string, value uintptr) {
		o := l.get(item)
		if old, ok := o.attrs[attribute]; ok {
			l.unref(old)
			delete(o.attrs, attribute)
		}
		if value != 0 {
			o.attrs[attribute] = l.refSink(value)
		}
	}
	g.MenuItemSetDetailedAction = func(item uintptr, detailedAction string) {
		o := l.get(item)
		if old, ok := o.attrs["action"]; ok {
			l.unref(old)
		}
		o.attrs["action"] = newVariant(detailedAction)
	}
	g.MenuItemSetLabel = func(item uintptr, label unsafe.Pointer) {
		o := l.get(item)
		if old, ok := o.attrs["label"]; ok {
			l.unref(old)
			delete(o.attrs, "label")
		}
		if label != nil {
			o.attrs["label"] = newVariant(ffi.GoString(label))
		}
	}
	g.MenuItemSetLink = func(item uintptr, link string, model uintptr) {
		o := l.get(item)
		if old, ok := o.links[link]; ok {
			l.unref(old)
			delete(o.links, link)
		}
		if model != 0 {
			o.links[link] = l.ref(model)
		}
	}
	g.MenuItemSetSection = func(item uintptr, section uintptr) {
		g.MenuItemSetLink(item, "section", section)
	}
	g.MenuItemSetSubmenu = func(item uintptr, submenu uintptr) {
		g.MenuItemSetLink(item, "submenu", submenu)
	}
}
