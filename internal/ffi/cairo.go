package ffi

import "unsafe"

// CairoProcs is the dispatch table for libcairo. Opaque object pointers
// travel as uintptr; struct out-parameters and arrays travel as
// unsafe.Pointer so both sides keep real pointers; non-nullable text
// travels as Go strings which purego converts at the boundary.
type CairoProcs struct {
	// Context lifecycle
	Create            func(target uintptr) uintptr
	Reference         func(cr uintptr) uintptr
	Destroy           func(cr uintptr)
	Status            func(cr uintptr) int32
	GetReferenceCount func(cr uintptr) uint32

	// State stack
	Save    func(cr uintptr)
	Restore func(cr uintptr)

	// Groups
	PushGroup            func(cr uintptr)
	PushGroupWithContent func(cr uintptr, content int32)
	PopGroup             func(cr uintptr) uintptr
	PopGroupToSource     func(cr uintptr)
	GetGroupTarget       func(cr uintptr) uintptr
	GetTarget            func(cr uintptr) uintptr

	// Sources
	SetSourceRGB     func(cr uintptr, r, g, b float64)
	SetSourceRGBA    func(cr uintptr, r, g, b, a float64)
	SetSource        func(cr, source uintptr)
	GetSource        func(cr uintptr) uintptr
	SetSourceSurface func(cr, surface uintptr, x, y float64)

	// State accessors
	SetAntialias  func(cr uintptr, antialias int32)
	GetAntialias  func(cr uintptr) int32
	SetDash       func(cr uintptr, dashes unsafe.Pointer, numDashes int32, offset float64)
	GetDashCount  func(cr uintptr) int32
	GetDash       func(cr uintptr, dashes, offset unsafe.Pointer)
	SetFillRule   func(cr uintptr, fillRule int32)
	GetFillRule   func(cr uintptr) int32
	SetLineCap    func(cr uintptr, lineCap int32)
	GetLineCap    func(cr uintptr) int32
	SetLineJoin   func(cr uintptr, lineJoin int32)
	GetLineJoin   func(cr uintptr) int32
	SetLineWidth  func(cr uintptr, width float64)
	GetLineWidth  func(cr uintptr) float64
	SetMiterLimit func(cr uintptr, limit float64)
	GetMiterLimit func(cr uintptr) float64
	SetOperator   func(cr uintptr, op int32)
	GetOperator   func(cr uintptr) int32
	SetTolerance  func(cr uintptr, tolerance float64)
	GetTolerance  func(cr uintptr) float64

	// Clipping
	Clip                  func(cr uintptr)
	ClipPreserve          func(cr uintptr)
	ClipExtents           func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer)
	InClip                func(cr uintptr, x, y float64) int32
	ResetClip             func(cr uintptr)
	CopyClipRectangleList func(cr uintptr) unsafe.Pointer
	RectangleListDestroy  func(list unsafe.Pointer)

	// Fill and stroke
	Fill           func(cr uintptr)
	FillPreserve   func(cr uintptr)
	FillExtents    func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer)
	InFill         func(cr uintptr, x, y float64) int32
	Stroke         func(cr uintptr)
	StrokePreserve func(cr uintptr)
	StrokeExtents  func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer)
	InStroke       func(cr uintptr, x, y float64) int32

	// Compositing
	Mask           func(cr, pattern uintptr)
	MaskSurface    func(cr, surface uintptr, x, y float64)
	Paint          func(cr uintptr)
	PaintWithAlpha func(cr uintptr, alpha float64)
	CopyPage       func(cr uintptr)
	ShowPage       func(cr uintptr)

	// Transformations
	Translate            func(cr uintptr, tx, ty float64)
	Scale                func(cr uintptr, sx, sy float64)
	Rotate               func(cr uintptr, angle float64)
	Transform            func(cr uintptr, matrix unsafe.Pointer)
	SetMatrix            func(cr uintptr, matrix unsafe.Pointer)
	GetMatrix            func(cr uintptr, matrix unsafe.Pointer)
	IdentityMatrix       func(cr uintptr)
	UserToDevice         func(cr uintptr, x, y unsafe.Pointer)
	UserToDeviceDistance func(cr uintptr, dx, dy unsafe.Pointer)
	DeviceToUser         func(cr uintptr, x, y unsafe.Pointer)
	DeviceToUserDistance func(cr uintptr, dx, dy unsafe.Pointer)

	// Text
	SelectFontFace func(cr uintptr, family string, slant, weight int32)
	SetFontSize    func(cr uintptr, size float64)
	SetFontMatrix  func(cr uintptr, matrix unsafe.Pointer)
	GetFontMatrix  func(cr uintptr, matrix unsafe.Pointer)
	SetFontOptions func(cr, options uintptr)
	GetFontOptions func(cr, options uintptr)
	SetFontFace    func(cr, fontFace uintptr)
	GetFontFace    func(cr uintptr) uintptr
	SetScaledFont  func(cr, scaledFont uintptr)
	GetScaledFont  func(cr uintptr) uintptr
	ShowText       func(cr uintptr, utf8 string)
	ShowGlyphs     func(cr uintptr, glyphs unsafe.Pointer, numGlyphs int32)
	FontExtents    func(cr uintptr, extents unsafe.Pointer)
	TextExtents    func(cr uintptr, utf8 string, extents unsafe.Pointer)
	GlyphExtents   func(cr uintptr, glyphs unsafe.Pointer, numGlyphs int32, extents unsafe.Pointer)

	// Paths
	CopyPath        func(cr uintptr) uintptr
	CopyPathFlat    func(cr uintptr) uintptr
	AppendPath      func(cr, path uintptr)
	PathDestroy     func(path uintptr)
	HasCurrentPoint func(cr uintptr) int32
	GetCurrentPoint func(cr uintptr, x, y unsafe.Pointer)
	NewPath         func(cr uintptr)
	NewSubPath      func(cr uintptr)
	ClosePath       func(cr uintptr)
	Arc             func(cr uintptr, xc, yc, radius, angle1, angle2 float64)
	ArcNegative     func(cr uintptr, xc, yc, radius, angle1, angle2 float64)
	CurveTo         func(cr uintptr, x1, y1, x2, y2, x3, y3 float64)
	LineTo          func(cr uintptr, x, y float64)
	MoveTo          func(cr uintptr, x, y float64)
	Rectangle       func(cr uintptr, x, y, width, height float64)
	TextPath        func(cr uintptr, utf8 string)
	GlyphPath       func(cr uintptr, glyphs unsafe.Pointer, numGlyphs int32)
	RelCurveTo      func(cr uintptr, dx1, dy1, dx2, dy2, dx3, dy3 float64)
	RelLineTo       func(cr uintptr, dx, dy float64)
	RelMoveTo       func(cr uintptr, dx, dy float64)
	PathExtents     func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer)

	// Tags
	TagBegin func(cr uintptr, tagName, attributes string)
	TagEnd   func(cr uintptr, tagName string)

	// Surfaces
	ImageSurfaceCreate       func(format, width, height int32) uintptr
	ImageSurfaceGetWidth     func(surface uintptr) int32
	ImageSurfaceGetHeight    func(surface uintptr) int32
	SurfaceReference         func(surface uintptr) uintptr
	SurfaceDestroy           func(surface uintptr)
	SurfaceStatus            func(surface uintptr) int32
	SurfaceGetReferenceCount func(surface uintptr) uint32
	SurfaceFlush             func(surface uintptr)
	SurfaceFinish            func(surface uintptr)
	SurfaceWriteToPNG        func(surface uintptr, filename string) int32

	// Patterns
	PatternCreateRGB  func(r, g, b float64) uintptr
	PatternCreateRGBA func(r, g, b, a float64) uintptr
	PatternReference  func(pattern uintptr) uintptr
	PatternDestroy    func(pattern uintptr)
	PatternStatus     func(pattern uintptr) int32

	// Font options, faces and scaled fonts
	FontOptionsCreate  func() uintptr
	FontOptionsDestroy func(options uintptr)
	FontOptionsStatus  func(options uintptr) int32
	FontFaceReference  func(fontFace uintptr) uintptr
	FontFaceDestroy    func(fontFace uintptr)
	FontFaceStatus     func(fontFace uintptr) int32
	ScaledFontRef      func(scaledFont uintptr) uintptr
	ScaledFontDestroy  func(scaledFont uintptr)
	ScaledFontStatus   func(scaledFont uintptr) int32

	// Matrices
	MatrixInit              func(matrix unsafe.Pointer, xx, yx, xy, yy, x0, y0 float64)
	MatrixInitIdentity      func(matrix unsafe.Pointer)
	MatrixTranslate         func(matrix unsafe.Pointer, tx, ty float64)
	MatrixScale             func(matrix unsafe.Pointer, sx, sy float64)
	MatrixRotate            func(matrix unsafe.Pointer, radians float64)
	MatrixInvert            func(matrix unsafe.Pointer) int32
	MatrixMultiply          func(result, a, b unsafe.Pointer)
	MatrixTransformPoint    func(matrix, x, y unsafe.Pointer)
	MatrixTransformDistance func(matrix, dx, dy unsafe.Pointer)

	// Status descriptions
	StatusToString func(status int32) string
}

// Cairo is the live libcairo dispatch table.
var Cairo CairoProcs

// CairoLoaded reports whether the cairo table is populated.
func CairoLoaded() bool { return Cairo.Create != nil }

func loadCairo(lib uintptr) error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"cairo_create", &Cairo.Create},
		{"cairo_reference", &Cairo.Reference},
		{"cairo_destroy", &Cairo.Destroy},
		{"cairo_status", &Cairo.Status},
		{"cairo_get_reference_count", &Cairo.GetReferenceCount},
		{"cairo_save", &Cairo.Save},
		{"cairo_restore", &Cairo.Restore},
		{"cairo_push_group", &Cairo.PushGroup},
		{"cairo_push_group_with_content", &Cairo.PushGroupWithContent},
		{"cairo_pop_group", &Cairo.PopGroup},
		{"cairo_pop_group_to_source", &Cairo.PopGroupToSource},
		{"cairo_get_group_target", &Cairo.GetGroupTarget},
		{"cairo_get_target", &Cairo.GetTarget},
		{"cairo_set_source_rgb", &Cairo.SetSourceRGB},
		{"cairo_set_source_rgba", &Cairo.SetSourceRGBA},
		{"cairo_set_source", &Cairo.SetSource},
		{"cairo_get_source", &Cairo.GetSource},
		{"cairo_set_source_surface", &Cairo.SetSourceSurface},
		{"cairo_set_antialias", &Cairo.SetAntialias},
		{"cairo_get_antialias", &Cairo.GetAntialias},
		{"cairo_set_dash", &Cairo.SetDash},
		{"cairo_get_dash_count", &Cairo.GetDashCount},
		{"cairo_get_dash", &Cairo.GetDash},
		{"cairo_set_fill_rule", &Cairo.SetFillRule},
		{"cairo_get_fill_rule", &Cairo.GetFillRule},
		{"cairo_set_line_cap", &Cairo.SetLineCap},
		{"cairo_get_line_cap", &Cairo.GetLineCap},
		{"cairo_set_line_join", &Cairo.SetLineJoin},
		{"cairo_get_line_join", &Cairo.GetLineJoin},
		{"cairo_set_line_width", &Cairo.SetLineWidth},
		{"cairo_get_line_width", &Cairo.GetLineWidth},
		{"cairo_set_miter_limit", &Cairo.SetMiterLimit},
		{"cairo_get_miter_limit", &Cairo.GetMiterLimit},
		{"cairo_set_operator", &Cairo.SetOperator},
		{"cairo_get_operator", &Cairo.GetOperator},
		{"cairo_set_tolerance", &Cairo.SetTolerance},
		{"cairo_get_tolerance", &Cairo.GetTolerance},
		{"cairo_clip", &Cairo.Clip},
		{"cairo_clip_preserve", &Cairo.ClipPreserve},
		{"cairo_clip_extents", &Cairo.ClipExtents},
		{"cairo_in_clip", &Cairo.InClip},
		{"cairo_reset_clip", &Cairo.ResetClip},
		{"cairo_copy_clip_rectangle_list", &Cairo.CopyClipRectangleList},
		{"cairo_rectangle_list_destroy", &Cairo.RectangleListDestroy},
		{"cairo_fill", &Cairo.Fill},
		{"cairo_fill_preserve", &Cairo.FillPreserve},
		{"cairo_fill_extents", &Cairo.FillExtents},
		{"cairo_in_fill", &Cairo.InFill},
		{"cairo_stroke", &Cairo.Stroke},
		{"cairo_stroke_preserve", &Cairo.StrokePreserve},
		{"cairo_stroke_extents", &Cairo.StrokeExtents},
		{"cairo_in_stroke", &Cairo.InStroke},
		{"cairo_mask", &Cairo.Mask},
		{"cairo_mask_surface", &Cairo.MaskSurface},
		{"cairo_paint", &Cairo.Paint},
		{"cairo_paint_with_alpha", &Cairo.PaintWithAlpha},
		{"cairo_copy_page", &Cairo.CopyPage},
		{"cairo_show_page", &Cairo.ShowPage},
		{"cairo_translate", &Cairo.Translate},
		{"cairo_scale", &Cairo.Scale},
		{"cairo_rotate", &Cairo.Rotate},
		{"cairo_transform", &Cairo.Transform},
		{"cairo_set_matrix", &Cairo.SetMatrix},
		{"cairo_get_matrix", &Cairo.GetMatrix},
		{"cairo_identity_matrix", &Cairo.IdentityMatrix},
		{"cairo_user_to_device", &Cairo.UserToDevice},
		{"cairo_user_to_device_distance", &Cairo.UserToDeviceDistance},
		{"cairo_device_to_user", &Cairo.DeviceToUser},
		{"cairo_device_to_user_distance", &Cairo.DeviceToUserDistance},
		{"cairo_select_font_face", &Cairo.SelectFontFace},
		{"cairo_set_font_size", &Cairo.SetFontSize},
		{"cairo_set_font_matrix", &Cairo.SetFontMatrix},
		{"cairo_get_font_matrix", &Cairo.GetFontMatrix},
		{"cairo_set_font_options", &Cairo.SetFontOptions},
		{"cairo_get_font_options", &Cairo.GetFontOptions},
		{"cairo_set_font_face", &Cairo.SetFontFace},
		{"cairo_get_font_face", &Cairo.GetFontFace},
		{"cairo_set_scaled_font", &Cairo.SetScaledFont},
		{"cairo_get_scaled_font", &Cairo.GetScaledFont},
		{"cairo_show_text", &Cairo.ShowText},
		{"cairo_show_glyphs", &Cairo.ShowGlyphs},
		{"cairo_font_extents", &Cairo.FontExtents},
		{"cairo_text_extents", &Cairo.TextExtents},
		{"cairo_glyph_extents", &Cairo.GlyphExtents},
		{"cairo_copy_path", &Cairo.CopyPath},
		{"cairo_copy_path_flat", &Cairo.CopyPathFlat},
		{"cairo_append_path", &Cairo.AppendPath},
		{"cairo_path_destroy", &Cairo.PathDestroy},
		{"cairo_has_current_point", &Cairo.HasCurrentPoint},
		{"cairo_get_current_point", &Cairo.GetCurrentPoint},
		{"cairo_new_path", &Cairo.NewPath},
		{"cairo_new_sub_path", &Cairo.NewSubPath},
		{"cairo_close_path", &Cairo.ClosePath},
		{"cairo_arc", &Cairo.Arc},
		{"cairo_arc_negative", &Cairo.ArcNegative},
		{"cairo_curve_to", &Cairo.CurveTo},
		{"cairo_line_to", &Cairo.LineTo},
		{"cairo_move_to", &Cairo.MoveTo},
		{"cairo_rectangle", &Cairo.Rectangle},
		{"cairo_text_path", &Cairo.TextPath},
		{"cairo_glyph_path", &Cairo.GlyphPath},
		{"cairo_rel_curve_to", &Cairo.RelCurveTo},
		{"cairo_rel_line_to", &Cairo.RelLineTo},
		{"cairo_rel_move_to", &Cairo.RelMoveTo},
		{"cairo_path_extents", &Cairo.PathExtents},
		{"cairo_tag_begin", &Cairo.TagBegin},
		{"cairo_tag_end", &Cairo.TagEnd},
		{"cairo_image_surface_create", &Cairo.ImageSurfaceCreate},
		{"cairo_image_surface_get_width", &Cairo.ImageSurfaceGetWidth},
		{"cairo_image_surface_get_height", &Cairo.ImageSurfaceGetHeight},
		{"cairo_surface_reference", &Cairo.SurfaceReference},
		{"cairo_surface_destroy", &Cairo.SurfaceDestroy},
		{"cairo_surface_status", &Cairo.SurfaceStatus},
		{"cairo_surface_get_reference_count", &Cairo.SurfaceGetReferenceCount},
		{"cairo_surface_flush", &Cairo.SurfaceFlush},
		{"cairo_surface_finish", &Cairo.SurfaceFinish},
		{"cairo_surface_write_to_png", &Cairo.SurfaceWriteToPNG},
		{"cairo_pattern_create_rgb", &Cairo.PatternCreateRGB},
		{"cairo_pattern_create_rgba", &Cairo.PatternCreateRGBA},
		{"cairo_pattern_reference", &Cairo.PatternReference},
		{"cairo_pattern_destroy", &Cairo.PatternDestroy},
		{"cairo_pattern_status", &Cairo.PatternStatus},
		{"cairo_font_options_create", &Cairo.FontOptionsCreate},
		{"cairo_font_options_destroy", &Cairo.FontOptionsDestroy},
		{"cairo_font_options_status", &Cairo.FontOptionsStatus},
		{"cairo_font_face_reference", &Cairo.FontFaceReference},
		{"cairo_font_face_destroy", &Cairo.FontFaceDestroy},
		{"cairo_font_face_status", &Cairo.FontFaceStatus},
		{"cairo_scaled_font_reference", &Cairo.ScaledFontRef},
		{"cairo_scaled_font_destroy", &Cairo.ScaledFontDestroy},
		{"cairo_scaled_font_status", &Cairo.ScaledFontStatus},
		{"cairo_matrix_init", &Cairo.MatrixInit},
		{"cairo_matrix_init_identity", &Cairo.MatrixInitIdentity},
		{"cairo_matrix_translate", &Cairo.MatrixTranslate},
		{"cairo_matrix_scale", &Cairo.MatrixScale},
		{"cairo_matrix_rotate", &Cairo.MatrixRotate},
		{"cairo_matrix_invert", &Cairo.MatrixInvert},
		{"cairo_matrix_multiply", &Cairo.MatrixMultiply},
		{"cairo_matrix_transform_point", &Cairo.MatrixTransformPoint},
		{"cairo_matrix_transform_distance", &Cairo.MatrixTransformDistance},
		{"cairo_status_to_string", &Cairo.StatusToString},
	}
	for _, s := range symbols {
		if err := register(lib, "libcairo", s.name, s.fptr); err != nil {
			return err
		}
	}
	return nil
}
