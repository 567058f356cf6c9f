// Package handle implements the ownership and lifetime-safety layer for
// reference-counted native pointers.
//
// A Handle wraps one opaque pointer owned by a native C library together
// with the ref/unref entry points of that library. Three acquisition modes
// cover the transfer conventions of C APIs:
//
//	TakeOwnership  - the wrapper assumes one existing reference
//	                 (C "transfer full"); exactly one unref on Close.
//	AdoptReference - the wrapper takes its own reference first
//	                 (C "transfer none"); the original owner is unaffected.
//	Borrow         - bounded observation of a reference owned elsewhere;
//	                 Close never touches the native count.
//
// # Invariants
//
// The wrapped pointer is never nil: constructors fail fast with a typed
// error. Exactly one decrement happens per increment across the handle's
// lifetime, including all clones. Close is idempotent; using a handle after
// Close panics.
//
// # Cloning
//
// Clone takes a new native reference (or a boxed copy, for kinds with a
// Copy entry point) and returns an independent owning handle:
//
//	dup, err := h.Clone()
//	...
//	defer dup.Close()
//
// # Lifecycle observation
//
// Every acquisition and release is reported to the handle's Registry.
// Observers can subscribe for leak diagnostics:
//
//	handle.Default().Subscribe(obs)
//	n := handle.Default().Len() // live handles
//
// Handles are not garbage collected; the owner must call Close. Leaked
// handles remain visible in the registry instead of being silently
// finalized.
package handle
