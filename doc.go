// Package nativekit provides memory-safe Go bindings for a family of
// reference-counted C libraries: cairo, GLib, GObject, GIO and pango.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	nativekit/           Root package: library loading and logging
//	├── handle/          Ownership and lifetime layer for native pointers
//	├── status/          cairo status codes and their error translation
//	├── errors/          Structured error types for debugging
//	├── cairo/           2D drawing contexts, surfaces, patterns and fonts
//	├── glib/            GObject base, boxed records, GValue, GVariant, GList
//	├── gio/             Permissions, unix mounts and menu models
//	└── pango/           Font faces and font descriptions
//
// # Quick Start
//
// Load the native libraries once, then construct wrappers:
//
//	if err := nativekit.Load(nativekit.Config{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	surface, err := cairo.NewImageSurface(cairo.FormatARGB32, 640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer surface.Close()
//
//	cr, err := cairo.NewContext(surface)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cr.Close()
//
//	cr.MoveTo(10, 10)
//	cr.LineTo(100, 100)
//	if err := cr.Stroke(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership Model
//
// Every wrapper acquires its native pointer in one of three modes:
//
//   - FromFull: the wrapper assumes ownership of one existing reference
//     (C "transfer full") and releases it on Close.
//   - FromNone: the wrapper takes a reference of its own (C "transfer
//     none"); the caller's reference is unaffected. Boxed records are
//     duplicated instead, since they carry no count.
//   - Borrow: the wrapper observes a reference owned elsewhere and never
//     touches the native count.
//
// A nil native pointer fails construction immediately with a typed error;
// no wrapper ever holds NULL. Close is idempotent and releases exactly
// one reference for owned handles, so the native count always returns to
// its pre-acquisition value.
//
// # Error Surface
//
// cairo objects carry a sticky status: once an operation fails, every
// later status check on that object reports the same code. Operations on
// cairo wrappers end with a status check and translate non-success codes
// into *status.Error values that work with errors.Is and errors.As.
// Everything else reports *errors.Error with a phase and kind.
package nativekit
