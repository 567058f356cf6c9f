package cairo

import (
	"errors"
	"testing"

	"github.com/wippyai/nativekit/internal/fakelib"
	"github.com/wippyai/nativekit/status"
)

func TestNewImageSurface(t *testing.T) {
	lib := fakelib.Install(t)

	s, err := NewImageSurface(FormatARGB32, 800, 600)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	if got := s.Width(); got != 800 {
		t.Fatalf("Width() = %d, want 800", got)
	}
	if got := s.Height(); got != 600 {
		t.Fatalf("Height() = %d, want 600", got)
	}
	if got := s.ReferenceCount(); got != 1 {
		t.Fatalf("refs = %d, want 1", got)
	}
	ptr := s.Native()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("surface alive after close")
	}
}

func TestNewImageSurface_InvalidFormat(t *testing.T) {
	lib := fakelib.Install(t)

	_, err := NewImageSurface(Format(99), 10, 10)
	if !errors.Is(err, &status.Error{Status: status.InvalidFormat}) {
		t.Fatalf("invalid format = %v, want invalid format status", err)
	}
	// The errored surface must not leak: the constructor releases it.
	if n := lib.LiveCount("cairo_surface_t"); n != 0 {
		t.Fatalf("%d surfaces leaked after failed construction", n)
	}
}

func TestNewImageSurface_NegativeSize(t *testing.T) {
	fakelib.Install(t)

	_, err := NewImageSurface(FormatARGB32, -1, 10)
	if !errors.Is(err, &status.Error{Status: status.InvalidSize}) {
		t.Fatalf("negative size = %v, want invalid size status", err)
	}
}

func TestSurfaceWriteToPNG(t *testing.T) {
	fakelib.Install(t)

	s, err := NewImageSurface(FormatRGB24, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	defer s.Close()

	if err := s.WriteToPNG("out.png"); err != nil {
		t.Fatalf("WriteToPNG: %v", err)
	}
	if err := s.WriteToPNG(""); !errors.Is(err, &status.Error{Status: status.WriteError}) {
		t.Fatalf("empty filename = %v, want write error", err)
	}
}

func TestSurfaceClone_SharedUntilLastClose(t *testing.T) {
	lib := fakelib.Install(t)

	s, err := NewImageSurface(FormatA8, 16, 16)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	dup, err := s.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	ptr := s.Native()
	if got := lib.Refs(ptr); got != 2 {
		t.Fatalf("refs after clone = %d, want 2", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := dup.Width(); got != 16 {
		t.Fatalf("clone Width() = %d after original closed", got)
	}
	if err := dup.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("surface alive after both handles closed")
	}
}

func TestBorrowSurface_NeverTouchesCount(t *testing.T) {
	lib := fakelib.Install(t)

	owner, err := NewImageSurface(FormatARGB32, 8, 8)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	defer owner.Close()
	ptr := owner.Native()

	b, err := BorrowSurface(ptr)
	if err != nil {
		t.Fatalf("BorrowSurface: %v", err)
	}
	if got := lib.Refs(ptr); got != 1 {
		t.Fatalf("refs after borrow = %d, want 1", got)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close borrow: %v", err)
	}
	if got := lib.Refs(ptr); got != 1 {
		t.Fatalf("refs after borrow close = %d, want 1", got)
	}
}
