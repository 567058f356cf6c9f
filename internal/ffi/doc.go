// Package ffi owns the foreign-function boundary to the native libraries
// wrapped by nativekit: cairo, GLib, GObject, gio and pango.
//
// Each library is exposed as a package-level dispatch table (Cairo, GLib,
// GObject, Gio, Pango) whose fields are plain Go function values. Load
// populates the tables from the real shared libraries through purego; tests
// install in-process fakes by assigning the fields directly, which keeps
// every lifetime test hermetic.
//
// A library counts as loaded once its table is populated; binding packages
// check this through the *Loaded predicates before constructing handles.
//
// Pointer conventions at this boundary: opaque native objects travel as
// uintptr, while memory either side dereferences (out-parameters, arrays,
// list nodes, nullable C strings) travels as unsafe.Pointer. String
// ownership follows the wrapped libraries' conventions: transfer-none
// char* returns are registered as Go string results (purego copies them),
// transfer-full char* returns are registered as unsafe.Pointer and
// converted with GoString so the caller can free the native copy
// explicitly.
package ffi
