// Package cairo provides bindings to the cairo 2D graphics library.
//
// Every wrapper type owns one native object through the handle package and
// forwards its methods one-to-one to cairo entry points. Constructors come
// in the three acquisition modes of the C API's transfer conventions:
//
//	ContextFromFull - assume ownership of an existing reference
//	ContextFromNone - take a new reference, leaving the caller's intact
//	BorrowContext   - observe a reference owned elsewhere
//
// After any call that can leave the native object errored, the wrapper
// queries cairo's sticky status and surfaces it as a typed error from the
// status package; success is silent.
//
//	surface, err := cairo.NewImageSurface(cairo.FormatARGB32, 640, 480)
//	...
//	defer surface.Close()
//
//	cr, err := cairo.NewContext(surface)
//	...
//	defer cr.Close()
//
//	cr.MoveTo(10, 10)
//	cr.LineTo(100, 100)
//	if err := cr.Stroke(); err != nil {
//		...
//	}
//
// The native library is loaded through internal/ffi; call ffi.Load (via the
// top-level nativekit package) before constructing any wrapper.
package cairo
