// Package glib wraps the GLib and GObject base layers: reference-counted
// objects, boxed records, GValue property access, string variants and
// GList traversal.
//
// Objects follow the three acquisition modes from package handle. A
// pointer returned by a native constructor is wrapped with ObjectFromFull;
// a pointer a native getter merely exposes is wrapped with ObjectFromNone
// or BorrowObject, depending on whether the wrapper needs to outlive the
// call that produced it.
//
// Boxed records are plain C structs without a reference count. NewBoxedKind
// builds a handle.Kind whose Clone duplicates the record through
// g_boxed_copy, so clones own distinct native memory.
package glib
