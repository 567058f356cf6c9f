package handle

import (
	"errors"
	"testing"

	bnderr "github.com/wippyai/nativekit/errors"
)

// countedKind returns a Kind backed by a Go reference counter standing in
// for the native library's count.
func countedKind(name string) (*Kind, *int) {
	refs := 1 // the caller's pre-existing reference
	k := &Kind{
		Name:  name,
		Ref:   func(uintptr) { refs++ },
		Unref: func(uintptr) { refs-- },
	}
	return k, &refs
}

func TestTakeOwnership_NilPointer(t *testing.T) {
	reg := NewRegistry()
	k, _ := countedKind("test.Object")

	if _, err := reg.TakeOwnership(k, 0); err == nil {
		t.Fatal("expected error for nil pointer")
	} else if !errors.Is(err, &bnderr.Error{Phase: bnderr.PhaseAcquire, Kind: bnderr.KindNilPointer}) {
		t.Fatalf("expected nil_pointer error, got %v", err)
	}

	if _, err := reg.AdoptReference(k, 0); err == nil {
		t.Fatal("expected error for nil pointer")
	}
	if _, err := reg.Borrow(k, 0); err == nil {
		t.Fatal("expected error for nil pointer")
	}
	if reg.Len() != 0 {
		t.Fatalf("registry tracked a failed acquisition: %d", reg.Len())
	}
}

func TestTakeOwnership_ReleasesOnce(t *testing.T) {
	reg := NewRegistry()
	k, refs := countedKind("test.Object")

	h, err := reg.TakeOwnership(k, 0xdead)
	if err != nil {
		t.Fatal(err)
	}
	if *refs != 1 {
		t.Fatalf("own-full must not ref, count = %d", *refs)
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if *refs != 0 {
		t.Fatalf("expected count 0 after close, got %d", *refs)
	}

	// Idempotent: a second close must not double-free.
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if *refs != 0 {
		t.Fatalf("double release: count = %d", *refs)
	}
}

func TestAdoptReference_OriginalOwnerUnaffected(t *testing.T) {
	reg := NewRegistry()
	k, refs := countedKind("test.Object")

	h, err := reg.AdoptReference(k, 0xdead)
	if err != nil {
		t.Fatal(err)
	}
	if *refs != 2 {
		t.Fatalf("own-none must ref, count = %d", *refs)
	}

	h.Close()
	if *refs != 1 {
		t.Fatalf("expected pre-acquisition count 1 after close, got %d", *refs)
	}
}

func TestBorrow_NeverTouchesCount(t *testing.T) {
	reg := NewRegistry()
	k, refs := countedKind("test.Object")

	h, err := reg.Borrow(k, 0xdead)
	if err != nil {
		t.Fatal(err)
	}
	if *refs != 1 {
		t.Fatalf("borrow must not ref, count = %d", *refs)
	}
	if h.Mode() != ModeBorrowed {
		t.Fatalf("mode = %v", h.Mode())
	}

	h.Close()
	if *refs != 1 {
		t.Fatalf("borrow close must not unref, count = %d", *refs)
	}
}

func TestClone_IndependentRelease(t *testing.T) {
	reg := NewRegistry()
	k, refs := countedKind("test.Object")

	h, err := reg.TakeOwnership(k, 0xdead)
	if err != nil {
		t.Fatal(err)
	}

	dup, err := h.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if *refs != 2 {
		t.Fatalf("clone must ref, count = %d", *refs)
	}
	if dup.Ptr() != h.Ptr() {
		t.Fatal("refcounted clone must share the pointer")
	}

	// Either order of release works; each decrements exactly once.
	h.Close()
	if *refs != 1 {
		t.Fatalf("count after first close = %d", *refs)
	}
	if dup.Closed() {
		t.Fatal("clone must survive original's close")
	}
	dup.Close()
	if *refs != 0 {
		t.Fatalf("count after both closes = %d", *refs)
	}
}

func TestClone_OfBorrowYieldsOwner(t *testing.T) {
	reg := NewRegistry()
	k, refs := countedKind("test.Object")

	b, err := reg.Borrow(k, 0xdead)
	if err != nil {
		t.Fatal(err)
	}
	dup, err := b.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if *refs != 2 {
		t.Fatalf("clone of borrow must ref, count = %d", *refs)
	}
	if dup.Mode() != ModeOwned {
		t.Fatalf("clone mode = %v", dup.Mode())
	}

	b.Close()
	dup.Close()
	if *refs != 1 {
		t.Fatalf("count = %d, want pre-acquisition 1", *refs)
	}
}

func TestClone_BoxedCopies(t *testing.T) {
	reg := NewRegistry()
	freed := map[uintptr]bool{}
	next := uintptr(0x2000)
	k := &Kind{
		Name: "test.Boxed",
		Copy: func(uintptr) uintptr {
			next++
			return next
		},
		Unref: func(p uintptr) { freed[p] = true },
	}

	h, err := reg.TakeOwnership(k, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	dup, err := h.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if dup.Ptr() == h.Ptr() {
		t.Fatal("boxed clone must duplicate the record")
	}

	h.Close()
	dup.Close()
	if !freed[0x1000] || !freed[0x2001] {
		t.Fatalf("both records must be freed: %v", freed)
	}
}

func TestClone_AfterCloseFails(t *testing.T) {
	reg := NewRegistry()
	k, _ := countedKind("test.Object")

	h, _ := reg.TakeOwnership(k, 0xdead)
	h.Close()

	if _, err := h.Clone(); err == nil {
		t.Fatal("expected error cloning closed handle")
	} else if !errors.Is(err, &bnderr.Error{Phase: bnderr.PhaseLifetime, Kind: bnderr.KindClosed}) {
		t.Fatalf("expected closed error, got %v", err)
	}
}

func TestPtr_PanicsAfterClose(t *testing.T) {
	reg := NewRegistry()
	k, _ := countedKind("test.Object")

	h, _ := reg.TakeOwnership(k, 0xdead)
	h.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on use after close")
		}
	}()
	h.Ptr()
}

func TestSingleOwnerKind_CannotAdoptOrClone(t *testing.T) {
	reg := NewRegistry()
	freed := 0
	k := &Kind{
		Name:  "test.Path",
		Unref: func(uintptr) { freed++ },
	}

	if _, err := reg.AdoptReference(k, 0xbeef); err == nil {
		t.Fatal("expected error adopting a single-owner resource")
	} else if !errors.Is(err, &bnderr.Error{Phase: bnderr.PhaseAcquire, Kind: bnderr.KindUnsupported}) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("registry tracked a failed acquisition: %d", reg.Len())
	}

	h, err := reg.TakeOwnership(k, 0xbeef)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Clone(); err == nil {
		t.Fatal("expected error cloning a single-owner resource")
	} else if !errors.Is(err, &bnderr.Error{Phase: bnderr.PhaseAcquire, Kind: bnderr.KindUnsupported}) {
		t.Fatalf("expected unsupported error, got %v", err)
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if freed != 1 {
		t.Fatalf("released %d times, want exactly 1", freed)
	}
}
