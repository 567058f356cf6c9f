package handle

import (
	"fmt"
	"sync/atomic"

	"github.com/wippyai/nativekit/errors"
)

// Kind describes one native type's lifetime entry points. Binding packages
// declare one Kind per wrapped C type, with closures that resolve the
// dispatch table at call time.
type Kind struct {
	// Name is the Go-facing type name, used in errors and events.
	Name string

	// Ref takes one additional reference on ptr.
	Ref func(ptr uintptr)

	// Unref releases one reference on ptr.
	Unref func(ptr uintptr)

	// Copy, when set, marks a non-refcounted boxed record: Clone duplicates
	// the record instead of taking a reference, and the clone owns the new
	// pointer.
	Copy func(ptr uintptr) uintptr
}

// Mode is how a handle acquired its pointer.
type Mode uint8

const (
	// ModeOwned handles release their reference on Close.
	ModeOwned Mode = iota
	// ModeBorrowed handles observe a reference owned elsewhere and never
	// touch the native count.
	ModeBorrowed
)

func (m Mode) String() string {
	switch m {
	case ModeOwned:
		return "owned"
	case ModeBorrowed:
		return "borrowed"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Handle owns (or observes) one native pointer.
type Handle struct {
	ptr    uintptr
	kind   *Kind
	reg    *Registry
	mode   Mode
	closed atomic.Bool
}

// TakeOwnership wraps ptr, assuming ownership of one existing native
// reference (C "transfer full"). Close releases that reference.
func TakeOwnership(k *Kind, ptr uintptr) (*Handle, error) {
	return Default().TakeOwnership(k, ptr)
}

// AdoptReference wraps ptr after taking a reference of its own
// (C "transfer none"). The caller's reference is unaffected.
func AdoptReference(k *Kind, ptr uintptr) (*Handle, error) {
	return Default().AdoptReference(k, ptr)
}

// Borrow wraps ptr for bounded observation. The handle never increments or
// decrements the native count; Close only invalidates the wrapper.
func Borrow(k *Kind, ptr uintptr) (*Handle, error) {
	return Default().Borrow(k, ptr)
}

// TakeOwnership wraps ptr in r, assuming ownership of one existing
// reference.
func (r *Registry) TakeOwnership(k *Kind, ptr uintptr) (*Handle, error) {
	h, err := r.wrap(k, ptr, ModeOwned)
	if err != nil {
		return nil, err
	}
	r.track(h, EventAcquired)
	return h, nil
}

// AdoptReference wraps ptr in r after taking a new reference. For boxed
// kinds there is no count to increment, so the record is duplicated and
// the handle owns the copy.
func (r *Registry) AdoptReference(k *Kind, ptr uintptr) (*Handle, error) {
	h, err := r.wrap(k, ptr, ModeOwned)
	if err != nil {
		return nil, err
	}
	if k.Copy != nil {
		dup := k.Copy(ptr)
		if dup == 0 {
			return nil, errors.NilPointer(errors.PhaseAcquire, k.Name)
		}
		h.ptr = dup
	} else {
		if k.Ref == nil {
			return nil, errors.Unsupported(errors.PhaseAcquire,
				k.Name+" cannot take an additional reference")
		}
		k.Ref(ptr)
	}
	r.track(h, EventAcquired)
	return h, nil
}

// Borrow wraps ptr in r without touching the native count.
func (r *Registry) Borrow(k *Kind, ptr uintptr) (*Handle, error) {
	h, err := r.wrap(k, ptr, ModeBorrowed)
	if err != nil {
		return nil, err
	}
	r.track(h, EventBorrowed)
	return h, nil
}

func (r *Registry) wrap(k *Kind, ptr uintptr, mode Mode) (*Handle, error) {
	if k == nil {
		return nil, errors.InvalidInput(errors.PhaseAcquire, "nil handle kind")
	}
	if ptr == 0 {
		return nil, errors.NilPointer(errors.PhaseAcquire, k.Name)
	}
	return &Handle{ptr: ptr, kind: k, reg: r, mode: mode}, nil
}

// Ptr returns the native pointer. It panics after Close: a released
// pointer must never reach a native entry point.
func (h *Handle) Ptr() uintptr {
	if h.closed.Load() {
		panic(fmt.Sprintf("nativekit: use of closed %s handle", h.kind.Name))
	}
	return h.ptr
}

// Kind returns the handle's native type descriptor.
func (h *Handle) Kind() *Kind { return h.kind }

// Mode returns how the handle acquired its pointer.
func (h *Handle) Mode() Mode { return h.mode }

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool { return h.closed.Load() }

// Clone returns an independent owning handle for the same native object.
// For refcounted kinds it takes a new reference to the same pointer; for
// boxed kinds it duplicates the record. Cloning a borrow is allowed and
// yields an owner.
func (h *Handle) Clone() (*Handle, error) {
	if h.closed.Load() {
		return nil, errors.Closed(h.kind.Name)
	}

	ptr := h.ptr
	if h.kind.Copy != nil {
		ptr = h.kind.Copy(ptr)
		if ptr == 0 {
			return nil, errors.NilPointer(errors.PhaseAcquire, h.kind.Name)
		}
	} else {
		if h.kind.Ref == nil {
			return nil, errors.Unsupported(errors.PhaseAcquire,
				h.kind.Name+" cannot take an additional reference")
		}
		h.kind.Ref(ptr)
	}

	dup := &Handle{ptr: ptr, kind: h.kind, reg: h.reg, mode: ModeOwned}
	h.reg.track(dup, EventCloned)
	return dup, nil
}

// Close releases the handle. Owned handles release exactly one native
// reference; borrowed handles only invalidate the wrapper. Close is
// idempotent and never fails on a second call.
func (h *Handle) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	if h.mode == ModeOwned {
		h.kind.Unref(h.ptr)
	}
	h.reg.untrack(h)
	return nil
}
