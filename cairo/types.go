package cairo

import (
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

// Rectangle mirrors cairo_rectangle_t.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Glyph mirrors cairo_glyph_t: one shaped glyph positioned in user space.
// Text shaping itself is handed off to the font system; the binding only
// forwards already-shaped glyphs.
type Glyph struct {
	Index uint64
	X, Y  float64
}

// FontExtents mirrors cairo_font_extents_t.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// TextExtents mirrors cairo_text_extents_t.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// Matrix mirrors cairo_matrix_t: the affine transform
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// It is a plain value; the matrix entry points mutate it in place through
// a pointer, as the C API does.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

func (m *Matrix) ptr() unsafe.Pointer { return unsafe.Pointer(m) }

// NewMatrix returns the matrix with the given components.
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	var m Matrix
	ffi.Cairo.MatrixInit(m.ptr(), xx, yx, xy, yy, x0, y0)
	return m
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	var m Matrix
	ffi.Cairo.MatrixInitIdentity(m.ptr())
	return m
}

// Translate applies a translation.
func (m *Matrix) Translate(tx, ty float64) {
	ffi.Cairo.MatrixTranslate(m.ptr(), tx, ty)
}

// Scale applies a scale.
func (m *Matrix) Scale(sx, sy float64) {
	ffi.Cairo.MatrixScale(m.ptr(), sx, sy)
}

// Rotate applies a rotation in radians.
func (m *Matrix) Rotate(radians float64) {
	ffi.Cairo.MatrixRotate(m.ptr(), radians)
}

// Invert replaces m with its inverse. Singular matrices produce a typed
// error and leave m unchanged.
func (m *Matrix) Invert() error {
	return status.FromCode(ffi.Cairo.MatrixInvert(m.ptr())).ToError()
}

// Multiply returns a*b.
func Multiply(a, b Matrix) Matrix {
	var out Matrix
	ffi.Cairo.MatrixMultiply(out.ptr(), a.ptr(), b.ptr())
	return out
}

// TransformPoint maps the point (x, y) through m.
func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	ffi.Cairo.MatrixTransformPoint(m.ptr(), fptr(&x), fptr(&y))
	return x, y
}

// TransformDistance maps the distance vector (dx, dy) through m, ignoring
// the translation components.
func (m *Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	ffi.Cairo.MatrixTransformDistance(m.ptr(), fptr(&dx), fptr(&dy))
	return dx, dy
}

func fptr(v *float64) unsafe.Pointer { return unsafe.Pointer(v) }
