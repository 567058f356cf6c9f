package ffi

import "unsafe"

// GLibProcs is the dispatch table for libglib: memory, lists and variants.
// Native memory the bindings read back (strings, list nodes) travels as
// unsafe.Pointer.
type GLibProcs struct {
	Free     func(mem unsafe.Pointer)
	ListFree func(list unsafe.Pointer)

	VariantNewString func(value string) uintptr
	VariantRefSink   func(variant uintptr) uintptr
	VariantRef       func(variant uintptr) uintptr
	VariantUnref     func(variant uintptr)
	VariantGetString func(variant uintptr, length unsafe.Pointer) unsafe.Pointer
}

// GObjectProcs is the dispatch table for libgobject: the object base,
// boxed records and GValue property access.
type GObjectProcs struct {
	ObjectRef   func(object uintptr) uintptr
	ObjectUnref func(object uintptr)

	BoxedCopy func(boxedType, src uintptr) uintptr
	BoxedFree func(boxedType, boxed uintptr)

	ValueInit       func(value unsafe.Pointer, gtype uintptr) unsafe.Pointer
	ValueUnset      func(value unsafe.Pointer)
	ValueGetBoolean func(value unsafe.Pointer) int32
	ValueGetString  func(value unsafe.Pointer) unsafe.Pointer

	ObjectGetProperty func(object uintptr, name string, value unsafe.Pointer)
}

// GLib and GObject are the live dispatch tables.
var (
	GLib    GLibProcs
	GObject GObjectProcs
)

// GLibLoaded reports whether the glib table is populated.
func GLibLoaded() bool { return GLib.Free != nil }

// GObjectLoaded reports whether the gobject table is populated.
func GObjectLoaded() bool { return GObject.ObjectRef != nil }

func loadGLib(lib uintptr) error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"g_free", &GLib.Free},
		{"g_list_free", &GLib.ListFree},
		{"g_variant_new_string", &GLib.VariantNewString},
		{"g_variant_ref_sink", &GLib.VariantRefSink},
		{"g_variant_ref", &GLib.VariantRef},
		{"g_variant_unref", &GLib.VariantUnref},
		{"g_variant_get_string", &GLib.VariantGetString},
	}
	for _, s := range symbols {
		if err := register(lib, "libglib", s.name, s.fptr); err != nil {
			return err
		}
	}
	return nil
}

func loadGObject(lib uintptr) error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"g_object_ref", &GObject.ObjectRef},
		{"g_object_unref", &GObject.ObjectUnref},
		{"g_boxed_copy", &GObject.BoxedCopy},
		{"g_boxed_free", &GObject.BoxedFree},
		{"g_value_init", &GObject.ValueInit},
		{"g_value_unset", &GObject.ValueUnset},
		{"g_value_get_boolean", &GObject.ValueGetBoolean},
		{"g_value_get_string", &GObject.ValueGetString},
		{"g_object_get_property", &GObject.ObjectGetProperty},
	}
	for _, s := range symbols {
		if err := register(lib, "libgobject", s.name, s.fptr); err != nil {
			return err
		}
	}
	return nil
}
