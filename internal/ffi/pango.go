package ffi

import "unsafe"

// PangoProcs is the dispatch table for libpango font face and description
// entry points.
type PangoProcs struct {
	FontFaceDescribe         func(face uintptr) uintptr
	FontFaceGetFaceName      func(face uintptr) string
	FontFaceIsSynthesized    func(face uintptr) int32
	FontFaceListSizes        func(face uintptr, sizes, nSizes unsafe.Pointer)
	FontDescriptionFree      func(desc uintptr)
	FontDescriptionCopy      func(desc uintptr) uintptr
	FontDescriptionToString  func(desc uintptr) unsafe.Pointer
	FontDescriptionGetFamily func(desc uintptr) string
}

// Pango is the live libpango dispatch table.
var Pango PangoProcs

// PangoLoaded reports whether the pango table is populated.
func PangoLoaded() bool { return Pango.FontFaceDescribe != nil }

func loadPango(lib uintptr) error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"pango_font_face_describe", &Pango.FontFaceDescribe},
		{"pango_font_face_get_face_name", &Pango.FontFaceGetFaceName},
		{"pango_font_face_is_synthesized", &Pango.FontFaceIsSynthesized},
		{"pango_font_face_list_sizes", &Pango.FontFaceListSizes},
		{"pango_font_description_free", &Pango.FontDescriptionFree},
		{"pango_font_description_copy", &Pango.FontDescriptionCopy},
		{"pango_font_description_to_string", &Pango.FontDescriptionToString},
		{"pango_font_description_get_family", &Pango.FontDescriptionGetFamily},
	}
	for _, s := range symbols {
		if err := register(lib, "libpango", s.name, s.fptr); err != nil {
			return err
		}
	}
	return nil
}
