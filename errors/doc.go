// Package errors provides structured error types for the nativekit bindings.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the wrapped object type, the native
// entry point, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindNativeStatus).
//		Object("cairo.Context").
//		Entry("cairo_restore").
//		Detail("invalid restore without matching save").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NilPointer(errors.PhaseAcquire, "cairo.Surface")
//	err := errors.Closed("glib.Object")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
