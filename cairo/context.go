package cairo

import (
	"unsafe"

	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

var contextKind = &handle.Kind{
	Name:  "cairo.Context",
	Ref:   func(p uintptr) { ffi.Cairo.Reference(p) },
	Unref: func(p uintptr) { ffi.Cairo.Destroy(p) },
}

// Context is the cairo drawing context: a state stack, a current path and
// a target surface. All drawing goes through it.
type Context struct {
	h *handle.Handle
}

// NewContext creates a context drawing to target.
func NewContext(target *Surface) (*Context, error) {
	if !ffi.CairoLoaded() {
		return nil, errors.NotLoaded("libcairo")
	}
	c, err := ContextFromFull(ffi.Cairo.Create(target.Native()))
	if err != nil {
		return nil, err
	}
	if err := c.Status(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// ContextFromFull wraps ptr, assuming ownership of one existing reference.
func ContextFromFull(ptr uintptr) (*Context, error) {
	h, err := handle.TakeOwnership(contextKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Context{h: h}, nil
}

// ContextFromNone wraps ptr after taking a new reference.
func ContextFromNone(ptr uintptr) (*Context, error) {
	h, err := handle.AdoptReference(contextKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Context{h: h}, nil
}

// BorrowContext wraps ptr without touching the native reference count,
// for contexts handed to callbacks whose reference belongs to the caller.
func BorrowContext(ptr uintptr) (*Context, error) {
	h, err := handle.Borrow(contextKind, ptr)
	if err != nil {
		return nil, err
	}
	return &Context{h: h}, nil
}

// Native returns the native pointer.
func (c *Context) Native() uintptr { return c.h.Ptr() }

// Clone takes a new native reference and returns an independent handle to
// the same drawing state.
func (c *Context) Clone() (*Context, error) {
	h, err := c.h.Clone()
	if err != nil {
		return nil, err
	}
	return &Context{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (c *Context) Close() error { return c.h.Close() }

// Status surfaces the context's sticky error state. Success is nil.
func (c *Context) Status() error {
	return status.FromCode(ffi.Cairo.Status(c.h.Ptr())).ToError()
}

// ReferenceCount returns the native reference count.
func (c *Context) ReferenceCount() uint {
	return uint(ffi.Cairo.GetReferenceCount(c.h.Ptr()))
}

// Save pushes the graphics state onto the state stack.
func (c *Context) Save() error {
	ffi.Cairo.Save(c.h.Ptr())
	return c.Status()
}

// Restore pops the graphics state. Restoring without a matching Save marks
// the context errored.
func (c *Context) Restore() error {
	ffi.Cairo.Restore(c.h.Ptr())
	return c.Status()
}

// Target returns the surface the context draws to.
func (c *Context) Target() (*Surface, error) {
	return SurfaceFromNone(ffi.Cairo.GetTarget(c.h.Ptr()))
}

// PushGroup redirects drawing to an intermediate surface.
func (c *Context) PushGroup() {
	ffi.Cairo.PushGroup(c.h.Ptr())
}

// PushGroupWithContent is PushGroup with an explicit content type.
func (c *Context) PushGroupWithContent(content Content) {
	ffi.Cairo.PushGroupWithContent(c.h.Ptr(), int32(content))
}

// PopGroup ends the group and returns it as a pattern.
func (c *Context) PopGroup() (*Pattern, error) {
	p, err := PatternFromFull(ffi.Cairo.PopGroup(c.h.Ptr()))
	if err != nil {
		return nil, err
	}
	if err := c.Status(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// PopGroupToSource ends the group and installs it as the source.
func (c *Context) PopGroupToSource() error {
	ffi.Cairo.PopGroupToSource(c.h.Ptr())
	return c.Status()
}

// GroupTarget returns the surface currently receiving drawing, which is
// the intermediate surface while a group is pushed.
func (c *Context) GroupTarget() (*Surface, error) {
	return SurfaceFromNone(ffi.Cairo.GetGroupTarget(c.h.Ptr()))
}

// SetSourceRGB installs an opaque color source.
func (c *Context) SetSourceRGB(red, green, blue float64) {
	ffi.Cairo.SetSourceRGB(c.h.Ptr(), red, green, blue)
}

// SetSourceRGBA installs a translucent color source.
func (c *Context) SetSourceRGBA(red, green, blue, alpha float64) {
	ffi.Cairo.SetSourceRGBA(c.h.Ptr(), red, green, blue, alpha)
}

// SetSource installs a pattern as the source.
func (c *Context) SetSource(source *Pattern) error {
	ffi.Cairo.SetSource(c.h.Ptr(), source.Native())
	return c.Status()
}

// Source returns the current source pattern.
func (c *Context) Source() (*Pattern, error) {
	return PatternFromNone(ffi.Cairo.GetSource(c.h.Ptr()))
}

// SetSourceSurface installs a surface as the source, offset by (x, y).
func (c *Context) SetSourceSurface(surface *Surface, x, y float64) error {
	ffi.Cairo.SetSourceSurface(c.h.Ptr(), surface.Native(), x, y)
	return c.Status()
}

// SetAntialias sets the rasterization mode.
func (c *Context) SetAntialias(antialias Antialias) {
	ffi.Cairo.SetAntialias(c.h.Ptr(), int32(antialias))
}

// GetAntialias returns the rasterization mode.
func (c *Context) GetAntialias() Antialias {
	return Antialias(ffi.Cairo.GetAntialias(c.h.Ptr()))
}

// SetDash sets the stroke dash pattern. An empty slice disables dashing;
// all-zero or negative dashes mark the context errored.
func (c *Context) SetDash(dashes []float64, offset float64) error {
	var p unsafe.Pointer
	if len(dashes) > 0 {
		p = unsafe.Pointer(&dashes[0])
	}
	ffi.Cairo.SetDash(c.h.Ptr(), p, int32(len(dashes)), offset)
	return c.Status()
}

// DashCount returns the number of dash segments.
func (c *Context) DashCount() int {
	return int(ffi.Cairo.GetDashCount(c.h.Ptr()))
}

// Dash returns the current dash pattern and offset.
func (c *Context) Dash() ([]float64, float64) {
	n := c.DashCount()
	if n == 0 {
		return nil, 0
	}
	dashes := make([]float64, n)
	var offset float64
	ffi.Cairo.GetDash(c.h.Ptr(), unsafe.Pointer(&dashes[0]), fptr(&offset))
	return dashes, offset
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(fillRule FillRule) {
	ffi.Cairo.SetFillRule(c.h.Ptr(), int32(fillRule))
}

// GetFillRule returns the fill rule.
func (c *Context) GetFillRule() FillRule {
	return FillRule(ffi.Cairo.GetFillRule(c.h.Ptr()))
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	ffi.Cairo.SetLineCap(c.h.Ptr(), int32(lineCap))
}

// GetLineCap returns the line cap style.
func (c *Context) GetLineCap() LineCap {
	return LineCap(ffi.Cairo.GetLineCap(c.h.Ptr()))
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(lineJoin LineJoin) {
	ffi.Cairo.SetLineJoin(c.h.Ptr(), int32(lineJoin))
}

// GetLineJoin returns the line join style.
func (c *Context) GetLineJoin() LineJoin {
	return LineJoin(ffi.Cairo.GetLineJoin(c.h.Ptr()))
}

// SetLineWidth sets the stroke width in user units.
func (c *Context) SetLineWidth(width float64) {
	ffi.Cairo.SetLineWidth(c.h.Ptr(), width)
}

// GetLineWidth returns the stroke width.
func (c *Context) GetLineWidth() float64 {
	return ffi.Cairo.GetLineWidth(c.h.Ptr())
}

// SetMiterLimit sets the miter limit for LineJoinMiter.
func (c *Context) SetMiterLimit(limit float64) {
	ffi.Cairo.SetMiterLimit(c.h.Ptr(), limit)
}

// GetMiterLimit returns the miter limit.
func (c *Context) GetMiterLimit() float64 {
	return ffi.Cairo.GetMiterLimit(c.h.Ptr())
}

// SetOperator sets the compositing operator.
func (c *Context) SetOperator(op Operator) {
	ffi.Cairo.SetOperator(c.h.Ptr(), int32(op))
}

// GetOperator returns the compositing operator.
func (c *Context) GetOperator() Operator {
	return Operator(ffi.Cairo.GetOperator(c.h.Ptr()))
}

// SetTolerance sets the curve flattening tolerance.
func (c *Context) SetTolerance(tolerance float64) {
	ffi.Cairo.SetTolerance(c.h.Ptr(), tolerance)
}

// GetTolerance returns the curve flattening tolerance.
func (c *Context) GetTolerance() float64 {
	return ffi.Cairo.GetTolerance(c.h.Ptr())
}

// Clip intersects the clip region with the current path and clears the
// path.
func (c *Context) Clip() {
	ffi.Cairo.Clip(c.h.Ptr())
}

// ClipPreserve is Clip without clearing the path.
func (c *Context) ClipPreserve() {
	ffi.Cairo.ClipPreserve(c.h.Ptr())
}

// ClipExtents returns the bounding box of the clip region.
func (c *Context) ClipExtents() (x1, y1, x2, y2 float64, err error) {
	ffi.Cairo.ClipExtents(c.h.Ptr(), fptr(&x1), fptr(&y1), fptr(&x2), fptr(&y2))
	return x1, y1, x2, y2, c.Status()
}

// InClip reports whether (x, y) is inside the clip region.
func (c *Context) InClip(x, y float64) (bool, error) {
	in := ffi.Cairo.InClip(c.h.Ptr(), x, y) != 0
	return in, c.Status()
}

// ResetClip removes all clipping.
func (c *Context) ResetClip() {
	ffi.Cairo.ResetClip(c.h.Ptr())
}

// rectangleList mirrors cairo_rectangle_list_t.
type rectangleList struct {
	status     int32
	_          int32
	rectangles unsafe.Pointer
	num        int32
	_          int32
}

// ClipRectangleList returns the clip region as a list of rectangles, or an
// error if the region cannot be represented that way.
func (c *Context) ClipRectangleList() ([]Rectangle, error) {
	ptr := ffi.Cairo.CopyClipRectangleList(c.h.Ptr())
	if ptr == nil {
		return nil, errors.NilPointer(errors.PhaseCall, "cairo.Context")
	}
	defer ffi.Cairo.RectangleListDestroy(ptr)

	list := (*rectangleList)(ptr)
	if err := status.FromCode(list.status).ToError(); err != nil {
		return nil, err
	}
	if list.rectangles == nil || list.num <= 0 {
		return nil, nil
	}
	out := make([]Rectangle, list.num)
	copy(out, unsafe.Slice((*Rectangle)(list.rectangles), list.num))
	return out, nil
}

// Fill fills the current path and clears it.
func (c *Context) Fill() error {
	ffi.Cairo.Fill(c.h.Ptr())
	return c.Status()
}

// FillPreserve is Fill without clearing the path.
func (c *Context) FillPreserve() error {
	ffi.Cairo.FillPreserve(c.h.Ptr())
	return c.Status()
}

// FillExtents returns the bounding box a Fill would affect.
func (c *Context) FillExtents() (x1, y1, x2, y2 float64, err error) {
	ffi.Cairo.FillExtents(c.h.Ptr(), fptr(&x1), fptr(&y1), fptr(&x2), fptr(&y2))
	return x1, y1, x2, y2, c.Status()
}

// InFill reports whether (x, y) would be covered by a Fill.
func (c *Context) InFill(x, y float64) (bool, error) {
	in := ffi.Cairo.InFill(c.h.Ptr(), x, y) != 0
	return in, c.Status()
}

// Mask paints the source through the alpha of pattern.
func (c *Context) Mask(pattern *Pattern) error {
	ffi.Cairo.Mask(c.h.Ptr(), pattern.Native())
	return c.Status()
}

// MaskSurface paints the source through the alpha of surface at (x, y).
func (c *Context) MaskSurface(surface *Surface, x, y float64) error {
	ffi.Cairo.MaskSurface(c.h.Ptr(), surface.Native(), x, y)
	return c.Status()
}

// Paint paints the source over the whole clip region.
func (c *Context) Paint() error {
	ffi.Cairo.Paint(c.h.Ptr())
	return c.Status()
}

// PaintWithAlpha is Paint faded by alpha.
func (c *Context) PaintWithAlpha(alpha float64) error {
	ffi.Cairo.PaintWithAlpha(c.h.Ptr(), alpha)
	return c.Status()
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() error {
	ffi.Cairo.Stroke(c.h.Ptr())
	return c.Status()
}

// StrokePreserve is Stroke without clearing the path.
func (c *Context) StrokePreserve() error {
	ffi.Cairo.StrokePreserve(c.h.Ptr())
	return c.Status()
}

// StrokeExtents returns the bounding box a Stroke would affect.
func (c *Context) StrokeExtents() (x1, y1, x2, y2 float64, err error) {
	ffi.Cairo.StrokeExtents(c.h.Ptr(), fptr(&x1), fptr(&y1), fptr(&x2), fptr(&y2))
	return x1, y1, x2, y2, c.Status()
}

// InStroke reports whether (x, y) would be covered by a Stroke.
func (c *Context) InStroke(x, y float64) (bool, error) {
	in := ffi.Cairo.InStroke(c.h.Ptr(), x, y) != 0
	return in, c.Status()
}

// CopyPage emits the current page on paginated surfaces, keeping content.
func (c *Context) CopyPage() error {
	ffi.Cairo.CopyPage(c.h.Ptr())
	return c.Status()
}

// ShowPage emits and clears the current page on paginated surfaces.
func (c *Context) ShowPage() error {
	ffi.Cairo.ShowPage(c.h.Ptr())
	return c.Status()
}

// Translate shifts user space by (tx, ty).
func (c *Context) Translate(tx, ty float64) {
	ffi.Cairo.Translate(c.h.Ptr(), tx, ty)
}

// Scale scales user space by (sx, sy).
func (c *Context) Scale(sx, sy float64) {
	ffi.Cairo.Scale(c.h.Ptr(), sx, sy)
}

// Rotate rotates user space by angle radians.
func (c *Context) Rotate(angle float64) {
	ffi.Cairo.Rotate(c.h.Ptr(), angle)
}

// Transform applies matrix on top of the current transformation.
func (c *Context) Transform(matrix Matrix) {
	ffi.Cairo.Transform(c.h.Ptr(), matrix.ptr())
}

// SetMatrix replaces the current transformation.
func (c *Context) SetMatrix(matrix Matrix) {
	ffi.Cairo.SetMatrix(c.h.Ptr(), matrix.ptr())
}

// GetMatrix returns the current transformation.
func (c *Context) GetMatrix() Matrix {
	var m Matrix
	ffi.Cairo.GetMatrix(c.h.Ptr(), m.ptr())
	return m
}

// IdentityMatrix resets the transformation to identity.
func (c *Context) IdentityMatrix() {
	ffi.Cairo.IdentityMatrix(c.h.Ptr())
}

// UserToDevice maps a user-space point to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	ffi.Cairo.UserToDevice(c.h.Ptr(), fptr(&x), fptr(&y))
	return x, y
}

// UserToDeviceDistance maps a user-space distance to device space.
func (c *Context) UserToDeviceDistance(dx, dy float64) (float64, float64, error) {
	ffi.Cairo.UserToDeviceDistance(c.h.Ptr(), fptr(&dx), fptr(&dy))
	return dx, dy, c.Status()
}

// DeviceToUser maps a device-space point to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64, error) {
	ffi.Cairo.DeviceToUser(c.h.Ptr(), fptr(&x), fptr(&y))
	return x, y, c.Status()
}

// DeviceToUserDistance maps a device-space distance to user space.
func (c *Context) DeviceToUserDistance(dx, dy float64) (float64, float64, error) {
	ffi.Cairo.DeviceToUserDistance(c.h.Ptr(), fptr(&dx), fptr(&dy))
	return dx, dy, c.Status()
}

// SelectFontFace picks a font via cairo's toy font API.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	ffi.Cairo.SelectFontFace(c.h.Ptr(), family, int32(slant), int32(weight))
}

// SetFontSize sets the font size in user units.
func (c *Context) SetFontSize(size float64) {
	ffi.Cairo.SetFontSize(c.h.Ptr(), size)
}

// SetFontMatrix sets the font transformation.
func (c *Context) SetFontMatrix(matrix Matrix) {
	ffi.Cairo.SetFontMatrix(c.h.Ptr(), matrix.ptr())
}

// GetFontMatrix returns the font transformation.
func (c *Context) GetFontMatrix() Matrix {
	var m Matrix
	ffi.Cairo.GetFontMatrix(c.h.Ptr(), m.ptr())
	return m
}

// SetFontOptions sets the font rendering options.
func (c *Context) SetFontOptions(options *FontOptions) {
	ffi.Cairo.SetFontOptions(c.h.Ptr(), options.Native())
}

// FontOptions returns a copy of the font rendering options.
func (c *Context) FontOptions() (*FontOptions, error) {
	o, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	ffi.Cairo.GetFontOptions(c.h.Ptr(), o.Native())
	if err := o.Status(); err != nil {
		o.Close()
		return nil, err
	}
	return o, nil
}

// SetFontFace installs a font face.
func (c *Context) SetFontFace(fontFace *FontFace) {
	ffi.Cairo.SetFontFace(c.h.Ptr(), fontFace.Native())
}

// FontFace returns the current font face.
func (c *Context) FontFace() (*FontFace, error) {
	return FontFaceFromNone(ffi.Cairo.GetFontFace(c.h.Ptr()))
}

// SetScaledFont installs a scaled font.
func (c *Context) SetScaledFont(scaledFont *ScaledFont) {
	ffi.Cairo.SetScaledFont(c.h.Ptr(), scaledFont.Native())
}

// ScaledFont returns the current scaled font.
func (c *Context) ScaledFont() (*ScaledFont, error) {
	return ScaledFontFromNone(ffi.Cairo.GetScaledFont(c.h.Ptr()))
}

// ShowText draws text at the current point using the current font.
func (c *Context) ShowText(text string) error {
	ffi.Cairo.ShowText(c.h.Ptr(), text)
	return c.Status()
}

// ShowGlyphs draws already-shaped glyphs.
func (c *Context) ShowGlyphs(glyphs []Glyph) error {
	if len(glyphs) == 0 {
		return nil
	}
	ffi.Cairo.ShowGlyphs(c.h.Ptr(), unsafe.Pointer(&glyphs[0]), int32(len(glyphs)))
	return c.Status()
}

// FontExtents returns metrics for the current font.
func (c *Context) FontExtents() (FontExtents, error) {
	var ext FontExtents
	ffi.Cairo.FontExtents(c.h.Ptr(), unsafe.Pointer(&ext))
	return ext, c.Status()
}

// TextExtents returns the extents text would cover.
func (c *Context) TextExtents(text string) (TextExtents, error) {
	var ext TextExtents
	ffi.Cairo.TextExtents(c.h.Ptr(), text, unsafe.Pointer(&ext))
	return ext, c.Status()
}

// GlyphExtents returns the extents the glyphs would cover.
func (c *Context) GlyphExtents(glyphs []Glyph) (TextExtents, error) {
	var ext TextExtents
	if len(glyphs) == 0 {
		return ext, nil
	}
	ffi.Cairo.GlyphExtents(c.h.Ptr(), unsafe.Pointer(&glyphs[0]), int32(len(glyphs)), unsafe.Pointer(&ext))
	return ext, c.Status()
}

// CopyPath snapshots the current path.
func (c *Context) CopyPath() (*Path, error) {
	p, err := PathFromFull(ffi.Cairo.CopyPath(c.h.Ptr()))
	if err != nil {
		return nil, err
	}
	if err := c.Status(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// CopyPathFlat snapshots the current path with curves flattened.
func (c *Context) CopyPathFlat() (*Path, error) {
	p, err := PathFromFull(ffi.Cairo.CopyPathFlat(c.h.Ptr()))
	if err != nil {
		return nil, err
	}
	if err := c.Status(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// AppendPath appends a path snapshot onto the current path.
func (c *Context) AppendPath(path *Path) {
	ffi.Cairo.AppendPath(c.h.Ptr(), path.Native())
}

// HasCurrentPoint reports whether the path has a current point.
func (c *Context) HasCurrentPoint() (bool, error) {
	has := ffi.Cairo.HasCurrentPoint(c.h.Ptr()) != 0
	return has, c.Status()
}

// CurrentPoint returns the path's current point.
func (c *Context) CurrentPoint() (float64, float64, error) {
	if err := c.Status(); err != nil {
		return 0, 0, err
	}
	var x, y float64
	ffi.Cairo.GetCurrentPoint(c.h.Ptr(), fptr(&x), fptr(&y))
	return x, y, nil
}

// NewPath clears the current path.
func (c *Context) NewPath() {
	ffi.Cairo.NewPath(c.h.Ptr())
}

// NewSubPath starts a new sub-path without a current point.
func (c *Context) NewSubPath() {
	ffi.Cairo.NewSubPath(c.h.Ptr())
}

// ClosePath closes the current sub-path.
func (c *Context) ClosePath() {
	ffi.Cairo.ClosePath(c.h.Ptr())
}

// Arc adds a clockwise arc around (xc, yc).
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	ffi.Cairo.Arc(c.h.Ptr(), xc, yc, radius, angle1, angle2)
}

// ArcNegative adds a counter-clockwise arc around (xc, yc).
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	ffi.Cairo.ArcNegative(c.h.Ptr(), xc, yc, radius, angle1, angle2)
}

// CurveTo adds a cubic Bezier segment.
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	ffi.Cairo.CurveTo(c.h.Ptr(), x1, y1, x2, y2, x3, y3)
}

// LineTo adds a line segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	ffi.Cairo.LineTo(c.h.Ptr(), x, y)
}

// MoveTo starts a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	ffi.Cairo.MoveTo(c.h.Ptr(), x, y)
}

// RectanglePath adds a closed rectangular sub-path.
func (c *Context) RectanglePath(x, y, width, height float64) {
	ffi.Cairo.Rectangle(c.h.Ptr(), x, y, width, height)
}

// TextPath adds closed paths for text to the current path.
func (c *Context) TextPath(text string) {
	ffi.Cairo.TextPath(c.h.Ptr(), text)
}

// GlyphPath adds closed paths for the glyphs to the current path.
func (c *Context) GlyphPath(glyphs []Glyph) {
	if len(glyphs) == 0 {
		return
	}
	ffi.Cairo.GlyphPath(c.h.Ptr(), unsafe.Pointer(&glyphs[0]), int32(len(glyphs)))
}

// RelCurveTo is CurveTo with offsets relative to the current point.
func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	ffi.Cairo.RelCurveTo(c.h.Ptr(), dx1, dy1, dx2, dy2, dx3, dy3)
}

// RelLineTo is LineTo with an offset relative to the current point.
func (c *Context) RelLineTo(dx, dy float64) {
	ffi.Cairo.RelLineTo(c.h.Ptr(), dx, dy)
}

// RelMoveTo is MoveTo with an offset relative to the current point.
func (c *Context) RelMoveTo(dx, dy float64) {
	ffi.Cairo.RelMoveTo(c.h.Ptr(), dx, dy)
}

// PathExtents returns the bounding box of the current path.
func (c *Context) PathExtents() (x1, y1, x2, y2 float64, err error) {
	ffi.Cairo.PathExtents(c.h.Ptr(), fptr(&x1), fptr(&y1), fptr(&x2), fptr(&y2))
	return x1, y1, x2, y2, c.Status()
}

// TagBegin opens a structure tag on surfaces that support them.
func (c *Context) TagBegin(tagName, attributes string) {
	ffi.Cairo.TagBegin(c.h.Ptr(), tagName, attributes)
}

// TagEnd closes a structure tag.
func (c *Context) TagEnd(tagName string) {
	ffi.Cairo.TagEnd(c.h.Ptr(), tagName)
}
