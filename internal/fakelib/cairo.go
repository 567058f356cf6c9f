package fakelib

import (
	"math"
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

func (l *Library) installCairo() {
	c := &ffi.Cairo

	c.Create = func(target uintptr) uintptr {
		l.ref(target)
		ptr, o := l.alloc("cairo_t")
		o.target = target
		src, _ := l.alloc("cairo_pattern_t")
		o.source = src
		return ptr
	}
	c.Reference = l.ref
	c.Destroy = l.unref
	c.Status = func(cr uintptr) int32 { return l.get(cr).Status }
	c.GetReferenceCount = func(cr uintptr) uint32 { return uint32(l.get(cr).Refs) }

	c.Save = func(cr uintptr) { l.get(cr).saveDepth++ }
	c.Restore = func(cr uintptr) {
		o := l.get(cr)
		if o.saveDepth == 0 {
			o.Status = int32(status.InvalidRestore)
			return
		}
		o.saveDepth--
	}

	c.PushGroup = func(cr uintptr) { l.get(cr).groupDepth++ }
	c.PushGroupWithContent = func(cr uintptr, _ int32) { l.get(cr).groupDepth++ }
	c.PopGroup = func(cr uintptr) uintptr {
		o := l.get(cr)
		if o.groupDepth == 0 {
			o.Status = int32(status.InvalidPopGroup)
		} else {
			o.groupDepth--
		}
		ptr, _ := l.alloc("cairo_pattern_t")
		return ptr
	}
	c.PopGroupToSource = func(cr uintptr) {
		o := l.get(cr)
		if o.groupDepth == 0 {
			o.Status = int32(status.InvalidPopGroup)
			return
		}
		o.groupDepth--
	}
	c.GetGroupTarget = func(cr uintptr) uintptr { return l.get(cr).target }
	c.GetTarget = func(cr uintptr) uintptr { return l.get(cr).target }

	c.SetSourceRGB = func(cr uintptr, _, _, _ float64) { l.get(cr) }
	c.SetSourceRGBA = func(cr uintptr, _, _, _, _ float64) { l.get(cr) }
	c.SetSource = func(cr, source uintptr) {
		o := l.get(cr)
		l.ref(source)
		if o.source != 0 {
			l.unref(o.source)
		}
		o.source = source
	}
	c.GetSource = func(cr uintptr) uintptr { return l.get(cr).source }
	c.SetSourceSurface = func(cr, surface uintptr, _, _ float64) { l.get(cr); l.get(surface) }

	c.SetAntialias = func(cr uintptr, v int32) { l.get(cr).antialias = v }
	c.GetAntialias = func(cr uintptr) int32 { return l.get(cr).antialias }
	c.SetDash = func(cr uintptr, dashes unsafe.Pointer, n int32, offset float64) {
		o := l.get(cr)
		if n < 0 {
			o.Status = int32(status.InvalidDash)
			return
		}
		ds := make([]float64, n)
		if n > 0 {
			copy(ds, unsafe.Slice((*float64)(dashes), n))
		}
		sum := 0.0
		for _, d := range ds {
			if d < 0 {
				o.Status = int32(status.InvalidDash)
				return
			}
			sum += d
		}
		if n > 0 && sum == 0 {
			o.Status = int32(status.InvalidDash)
			return
		}
		o.dashes = ds
		o.dashOffset = offset
	}
	c.GetDashCount = func(cr uintptr) int32 { return int32(len(l.get(cr).dashes)) }
	c.GetDash = func(cr uintptr, dashes, offset unsafe.Pointer) {
		o := l.get(cr)
		if dashes != nil && len(o.dashes) > 0 {
			out := unsafe.Slice((*float64)(dashes), len(o.dashes))
			copy(out, o.dashes)
		}
		putF64(offset, o.dashOffset)
	}
	c.SetFillRule = func(cr uintptr, v int32) { l.get(cr).fillRule = v }
	c.GetFillRule = func(cr uintptr) int32 { return l.get(cr).fillRule }
	c.SetLineCap = func(cr uintptr, v int32) { l.get(cr).lineCap = v }
	c.GetLineCap = func(cr uintptr) int32 { return l.get(cr).lineCap }
	c.SetLineJoin = func(cr uintptr, v int32) { l.get(cr).lineJoin = v }
	c.GetLineJoin = func(cr uintptr) int32 { return l.get(cr).lineJoin }
	c.SetLineWidth = func(cr uintptr, v float64) { l.get(cr).lineWidth = v }
	c.GetLineWidth = func(cr uintptr) float64 { return l.get(cr).lineWidth }
	c.SetMiterLimit = func(cr uintptr, v float64) { l.get(cr).miterLimit = v }
	c.GetMiterLimit = func(cr uintptr) float64 { return l.get(cr).miterLimit }
	c.SetOperator = func(cr uintptr, v int32) { l.get(cr).operator = v }
	c.GetOperator = func(cr uintptr) int32 { return l.get(cr).operator }
	c.SetTolerance = func(cr uintptr, v float64) { l.get(cr).tolerance = v }
	c.GetTolerance = func(cr uintptr) float64 { return l.get(cr).tolerance }

	c.Clip = func(cr uintptr) { l.get(cr).hasCurrent = false }
	c.ClipPreserve = func(cr uintptr) { l.get(cr) }
	c.ClipExtents = func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer) {
		o := l.get(cr)
		t := l.get(o.target)
		putF64(x1, 0)
		putF64(y1, 0)
		putF64(x2, float64(t.width))
		putF64(y2, float64(t.height))
	}
	c.InClip = func(cr uintptr, _, _ float64) int32 { l.get(cr); return 1 }
	c.ResetClip = func(cr uintptr) { l.get(cr) }
	c.CopyClipRectangleList = func(cr uintptr) unsafe.Pointer {
		o := l.get(cr)
		t := l.get(o.target)
		rs := []rect{{0, 0, float64(t.width), float64(t.height)}}
		lst := []rectangleList{{
			status: o.Status,
			rects:  unsafe.Pointer(&rs[0]),
			num:    int32(len(rs)),
		}}
		l.mu.Lock()
		l.rects = append(l.rects, rs)
		l.lures = append(l.lures, lst)
		l.mu.Unlock()
		return unsafe.Pointer(&lst[0])
	}
	c.RectangleListDestroy = func(_ unsafe.Pointer) {
		l.mu.Lock()
		l.frees++
		l.mu.Unlock()
	}

	noopDraw := func(cr uintptr) { l.get(cr).hasCurrent = false }
	c.Fill = noopDraw
	c.FillPreserve = func(cr uintptr) { l.get(cr) }
	c.FillExtents = func(cr uintptr, x1, y1, x2, y2 unsafe.Pointer) {
		l.get(cr)
		putF64(x1, 0)
		putF64(y1, 0)
		putF64(x2, 0)
		putF64(y2, 0)
	}
	c.InFill = func(cr uintptr, _, _ float64) int32 { l.get(cr); return 1 }
	c.Stroke = noopDraw
	c.StrokePreserve = func(cr uintptr) { l.get(cr) }
	c.StrokeExtents = c.FillExtents
	c.InStroke = func(cr uintptr, _, _ float64) int32 { l.get(cr); return 1 }

	c.Mask = func(cr, pattern uintptr) { l.get(cr); l.get(pattern) }
	c.MaskSurface = func(cr, surface uintptr, _, _ float64) { l.get(cr); l.get(surface) }
	c.Paint = func(cr uintptr) {
		o := l.get(cr)
		if l.get(o.target).finished {
			o.Status = int32(status.SurfaceFinished)
		}
	}
	c.PaintWithAlpha = func(cr uintptr, _ float64) { c.Paint(cr) }
	c.CopyPage = func(cr uintptr) { l.get(cr) }
	c.ShowPage = func(cr uintptr) { l.get(cr) }

	c.Translate = func(cr uintptr, tx, ty float64) {
		o := l.get(cr)
		o.ctm.x0 += o.ctm.xx*tx + o.ctm.xy*ty
		o.ctm.y0 += o.ctm.yx*tx + o.ctm.yy*ty
	}
	c.Scale = func(cr uintptr, sx, sy float64) {
		o := l.get(cr)
		o.ctm.xx *= sx
		o.ctm.yx *= sx
		o.ctm.xy *= sy
		o.ctm.yy *= sy
	}
	c.Rotate = func(cr uintptr, angle float64) {
		o := l.get(cr)
		s, cs := math.Sin(angle), math.Cos(angle)
		r := mat{xx: cs, yx: s, xy: -s, yy: cs}
		o.ctm = mulMat(r, o.ctm)
	}
	c.Transform = func(cr uintptr, matrix unsafe.Pointer) {
		o := l.get(cr)
		o.ctm = mulMat(*matAt(matrix), o.ctm)
	}
	c.SetMatrix = func(cr uintptr, matrix unsafe.Pointer) { l.get(cr).ctm = *matAt(matrix) }
	c.GetMatrix = func(cr uintptr, matrix unsafe.Pointer) { *matAt(matrix) = l.get(cr).ctm }
	c.IdentityMatrix = func(cr uintptr) { l.get(cr).ctm = identity }
	c.UserToDevice = func(cr uintptr, x, y unsafe.Pointer) {
		o := l.get(cr)
		px := *(*float64)(x)
		py := *(*float64)(y)
		putF64(x, o.ctm.xx*px+o.ctm.xy*py+o.ctm.x0)
		putF64(y, o.ctm.yx*px+o.ctm.yy*py+o.ctm.y0)
	}
	c.UserToDeviceDistance = func(cr uintptr, dx, dy unsafe.Pointer) {
		o := l.get(cr)
		px := *(*float64)(dx)
		py := *(*float64)(dy)
		putF64(dx, o.ctm.xx*px+o.ctm.xy*py)
		putF64(dy, o.ctm.yx*px+o.ctm.yy*py)
	}
	c.DeviceToUser = func(cr uintptr, x, y unsafe.Pointer) {
		o := l.get(cr)
		inv, ok := invMat(o.ctm)
		if !ok {
			o.Status = int32(status.InvalidMatrix)
			return
		}
		px := *(*float64)(x)
		py := *(*float64)(y)
		putF64(x, inv.xx*px+inv.xy*py+inv.x0)
		putF64(y, inv.yx*px+inv.yy*py+inv.y0)
	}
	c.DeviceToUserDistance = func(cr uintptr, dx, dy unsafe.Pointer) {
		o := l.get(cr)
		inv, ok := invMat(o.ctm)
		if !ok {
			o.Status = int32(status.InvalidMatrix)
			return
		}
		px := *(*float64)(dx)
		py := *(*float64)(dy)
		putF64(dx, inv.xx*px+inv.xy*py)
		putF64(dy, inv.yx*px+inv.yy*py)
	}

	c.SelectFontFace = func(cr uintptr, family string, _, _ int32) { l.get(cr).family = family }
	c.SetFontSize = func(cr uintptr, size float64) { l.get(cr).fontSize = size }
	c.SetFontMatrix = func(cr uintptr, matrix unsafe.Pointer) { l.get(cr).fontMatrix = *matAt(matrix) }
	c.GetFontMatrix = func(cr uintptr, matrix unsafe.Pointer) { *matAt(matrix) = l.get(cr).fontMatrix }
	c.SetFontOptions = func(cr, options uintptr) { l.get(cr); l.get(options) }
	c.GetFontOptions = func(cr, options uintptr) { l.get(cr); l.get(options) }
	c.SetFontFace = func(cr, fontFace uintptr) {
		o := l.get(cr)
		l.ref(fontFace)
		if o.fontFace != 0 {
			l.unref(o.fontFace)
		}
		o.fontFace = fontFace
	}
	c.GetFontFace = func(cr uintptr) uintptr {
		o := l.get(cr)
		if o.fontFace == 0 {
			o.fontFace, _ = l.alloc("cairo_font_face_t")
		}
		return o.fontFace
	}
	c.SetScaledFont = func(cr, scaledFont uintptr) {
		o := l.get(cr)
		l.ref(scaledFont)
		if o.scaledFont != 0 {
			l.unref(o.scaledFont)
		}
		o.scaledFont = scaledFont
	}
	c.GetScaledFont = func(cr uintptr) uintptr {
		o := l.get(cr)
		if o.scaledFont == 0 {
			o.scaledFont, _ = l.alloc("cairo_scaled_font_t")
		}
		return o.scaledFont
	}
	c.ShowText = func(cr uintptr, utf8 string) {
		o := l.get(cr)
		o.curX += float64(len(utf8)) * o.fontSize * 0.5
		o.hasCurrent = true
	}
	c.ShowGlyphs = func(cr uintptr, _ unsafe.Pointer, _ int32) { l.get(cr) }
	c.FontExtents = func(cr uintptr, extents unsafe.Pointer) {
		o := l.get(cr)
		e := (*[5]float64)(extents)
		e[0] = o.fontSize * 0.8 // ascent
		e[1] = o.fontSize * 0.2 // descent
		e[2] = o.fontSize       // height
		e[3] = o.fontSize * 0.6
		e[4] = 0
	}
	c.TextExtents = func(cr uintptr, utf8 string, extents unsafe.Pointer) {
		o := l.get(cr)
		e := (*[6]float64)(extents)
		w := float64(len(utf8)) * o.fontSize * 0.5
		e[0] = 0
		e[1] = -o.fontSize * 0.8
		e[2] = w
		e[3] = o.fontSize
		e[4] = w
		e[5] = 0
	}
	c.GlyphExtents = func(cr uintptr, _ unsafe.Pointer, n int32, extents unsafe.Pointer) {
		o := l.get(cr)
		e := (*[6]float64)(extents)
		e[2] = float64(n) * o.fontSize * 0.5
		e[3] = o.fontSize
		e[4] = e[2]
	}

	c.CopyPath = func(cr uintptr) uintptr {
		l.get(cr)
		ptr, _ := l.alloc("cairo_path_t")
		return ptr
	}
	c.CopyPathFlat = c.CopyPath
	c.AppendPath = func(cr, path uintptr) { l.get(cr); l.get(path) }
	c.PathDestroy = func(path uintptr) {
		o := l.get(path)
		o.Freed = true
		l.mu.Lock()
		l.frees++
		l.mu.Unlock()
	}
	c.HasCurrentPoint = func(cr uintptr) int32 {
		if l.get(cr).hasCurrent {
			return 1
		}
		return 0
	}
	c.GetCurrentPoint = func(cr uintptr, x, y unsafe.Pointer) {
		o := l.get(cr)
		putF64(x, o.curX)
		putF64(y, o.curY)
	}
	c.NewPath = func(cr uintptr) { l.get(cr).hasCurrent = false }
	c.NewSubPath = func(cr uintptr) { l.get(cr).hasCurrent = false }
	c.ClosePath = func(cr uintptr) { l.get(cr) }
	c.Arc = func(cr uintptr, xc, yc, radius, _, angle2 float64) {
		o := l.get(cr)
		o.curX = xc + radius*math.Cos(angle2)
		o.curY = yc + radius*math.Sin(angle2)
		o.hasCurrent = true
	}
	c.ArcNegative = c.Arc
	c.CurveTo = func(cr uintptr, _, _, _, _, x3, y3 float64) {
		o := l.get(cr)
		o.curX, o.curY, o.hasCurrent = x3, y3, true
	}
	c.LineTo = func(cr uintptr, x, y float64) {
		o := l.get(cr)
		o.curX, o.curY, o.hasCurrent = x, y, true
	}
	c.MoveTo = c.LineTo
	c.Rectangle = func(cr uintptr, x, y, _, _ float64) {
		o := l.get(cr)
		o.curX, o.curY, o.hasCurrent = x, y, true
	}
	c.TextPath = func(cr uintptr, _ string) { l.get(cr) }
	c.GlyphPath = func(cr uintptr, _ unsafe.Pointer, _ int32) { l.get(cr) }
	c.RelCurveTo = func(cr uintptr, _, _, _, _, dx3, dy3 float64) {
		o := l.get(cr)
		if !o.hasCurrent {
			o.Status = int32(status.NoCurrentPoint)
			return
		}
		o.curX += dx3
		o.curY += dy3
	}
	c.RelLineTo = func(cr uintptr, dx, dy float64) {
		o := l.get(cr)
		if !o.hasCurrent {
			o.Status = int32(status.NoCurrentPoint)
			return
		}
		o.curX += dx
		o.curY += dy
	}
	c.RelMoveTo = c.RelLineTo
	c.PathExtents = c.FillExtents
	c.TagBegin = func(cr uintptr, _, _ string) { l.get(cr) }
	c.TagEnd = func(cr uintptr, _ string) { l.get(cr) }

	c.ImageSurfaceCreate = func(format, width, height int32) uintptr {
		ptr, o := l.alloc("cairo_surface_t")
		o.width, o.height = width, height
		if format < 0 || format > 5 {
			o.Status = int32(status.InvalidFormat)
		}
		if width < 0 || height < 0 {
			o.Status = int32(status.InvalidSize)
		}
		return ptr
	}
	c.ImageSurfaceGetWidth = func(surface uintptr) int32 { return l.get(surface).width }
	c.ImageSurfaceGetHeight = func(surface uintptr) int32 { return l.get(surface).height }
	c.SurfaceReference = l.ref
	c.SurfaceDestroy = l.unref
	c.SurfaceStatus = func(surface uintptr) int32 { return l.get(surface).Status }
	c.SurfaceGetReferenceCount = func(surface uintptr) uint32 { return uint32(l.get(surface).Refs) }
	c.SurfaceFlush = func(surface uintptr) { l.get(surface) }
	c.SurfaceFinish = func(surface uintptr) { l.get(surface).finished = true }
	c.SurfaceWriteToPNG = func(surface uintptr, filename string) int32 {
		o := l.get(surface)
		if filename == "" {
			return int32(status.WriteError)
		}
		o.pngPath = filename
		return 0
	}

	c.PatternCreateRGB = func(_, _, _ float64) uintptr {
		ptr, _ := l.alloc("cairo_pattern_t")
		return ptr
	}
	c.PatternCreateRGBA = func(_, _, _, _ float64) uintptr {
		ptr, _ := l.alloc("cairo_pattern_t")
		return ptr
	}
	c.PatternReference = l.ref
	c.PatternDestroy = l.unref
	c.PatternStatus = func(pattern uintptr) int32 { return l.get(pattern).Status }

	c.FontOptionsCreate = func() uintptr {
		ptr, _ := l.alloc("cairo_font_options_t")
		return ptr
	}
	c.FontOptionsDestroy = l.unref
	c.FontOptionsStatus = func(options uintptr) int32 { return l.get(options).Status }
	c.FontFaceReference = l.ref
	c.FontFaceDestroy = l.unref
	c.FontFaceStatus = func(fontFace uintptr) int32 { return l.get(fontFace).Status }
	c.ScaledFontRef = l.ref
	c.ScaledFontDestroy = l.unref
	c.ScaledFontStatus = func(scaledFont uintptr) int32 { return l.get(scaledFont).Status }

	c.MatrixInit = func(matrix unsafe.Pointer, xx, yx, xy, yy, x0, y0 float64) {
		*matAt(matrix) = mat{xx, yx, xy, yy, x0, y0}
	}
	c.MatrixInitIdentity = func(matrix unsafe.Pointer) { *matAt(matrix) = identity }
	c.MatrixTranslate = func(matrix unsafe.Pointer, tx, ty float64) {
		m := matAt(matrix)
		m.x0 += m.xx*tx + m.xy*ty
		m.y0 += m.yx*tx + m.yy*ty
	}
	c.MatrixScale = func(matrix unsafe.Pointer, sx, sy float64) {
		m := matAt(matrix)
		m.xx *= sx
		m.yx *= sx
		m.xy *= sy
		m.yy *= sy
	}
	c.MatrixRotate = func(matrix unsafe.Pointer, radians float64) {
		m := matAt(matrix)
		s, cs := math.Sin(radians), math.Cos(radians)
		*m = mulMat(mat{xx: cs, yx: s, xy: -s, yy: cs}, *m)
	}
	c.MatrixInvert = func(matrix unsafe.Pointer) int32 {
		m := matAt(matrix)
		inv, ok := invMat(*m)
		if !ok {
			return int32(status.InvalidMatrix)
		}
		*m = inv
		return 0
	}
	c.MatrixMultiply = func(result, a, b unsafe.Pointer) {
		*matAt(result) = mulMat(*matAt(a), *matAt(b))
	}
	c.MatrixTransformPoint = func(matrix, x, y unsafe.Pointer) {
		m := matAt(matrix)
		px := *(*float64)(x)
		py := *(*float64)(y)
		putF64(x, m.xx*px+m.xy*py+m.x0)
		putF64(y, m.yx*px+m.yy*py+m.y0)
	}
	c.MatrixTransformDistance = func(matrix, dx, dy unsafe.Pointer) {
		m := matAt(matrix)
		px := *(*float64)(dx)
		py := *(*float64)(dy)
		putF64(dx, m.xx*px+m.xy*py)
		putF64(dy, m.yx*px+m.yy*py)
	}

	c.StatusToString = func(code int32) string { return status.Status(code).String() }
}

// mulMat returns a*b in cairo's row-vector convention.
func mulMat(a, b mat) mat {
	return mat{
		xx: a.xx*b.xx + a.yx*b.xy,
		yx: a.xx*b.yx + a.yx*b.yy,
		xy: a.xy*b.xx + a.yy*b.xy,
		yy: a.xy*b.yx + a.yy*b.yy,
		x0: a.x0*b.xx + a.y0*b.xy + b.x0,
		y0: a.x0*b.yx + a.y0*b.yy + b.y0,
	}
}

func invMat(m mat) (mat, bool) {
	det := m.xx*m.yy - m.yx*m.xy
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return mat{}, false
	}
	inv := mat{
		xx: m.yy / det,
		yx: -m.yx / det,
		xy: -m.xy / det,
		yy: m.xx / det,
	}
	inv.x0 = -(m.x0*inv.xx + m.y0*inv.xy)
	inv.y0 = -(m.x0*inv.yx + m.y0*inv.yy)
	return inv, true
}
