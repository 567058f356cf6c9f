package pango

import (
	"testing"

	"github.com/wippyai/nativekit/internal/fakelib"
)

func TestFontFaceDescribe_CallerOwnsDescription(t *testing.T) {
	lib := fakelib.Install(t)
	face, err := BorrowFontFace(lib.NewFontFace("Bold", "DejaVu Sans", false, nil))
	if err != nil {
		t.Fatalf("BorrowFontFace: %v", err)
	}
	defer face.Close()

	desc, err := face.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if got := desc.Family(); got != "DejaVu Sans" {
		t.Fatalf("Family() = %q, want %q", got, "DejaVu Sans")
	}
	if got := desc.String(); got != "DejaVu Sans Bold" {
		t.Fatalf("String() = %q, want %q", got, "DejaVu Sans Bold")
	}
	ptr := desc.Native()
	if err := desc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("description still alive after owning handle closed")
	}
}

func TestFontFaceMetadata(t *testing.T) {
	lib := fakelib.Install(t)
	face, err := BorrowFontFace(lib.NewFontFace("Oblique", "Courier", true, []int32{8192, 10240}))
	if err != nil {
		t.Fatalf("BorrowFontFace: %v", err)
	}
	defer face.Close()

	if got := face.FaceName(); got != "Oblique" {
		t.Fatalf("FaceName() = %q, want %q", got, "Oblique")
	}
	if !face.IsSynthesized() {
		t.Fatal("IsSynthesized() = false, want true")
	}
	sizes := face.ListSizes()
	if len(sizes) != 2 || sizes[0] != 8192 || sizes[1] != 10240 {
		t.Fatalf("ListSizes() = %v, want [8192 10240]", sizes)
	}
}

func TestFontFaceListSizes_Scalable(t *testing.T) {
	lib := fakelib.Install(t)
	face, err := BorrowFontFace(lib.NewFontFace("Regular", "Inter", false, nil))
	if err != nil {
		t.Fatalf("BorrowFontFace: %v", err)
	}
	defer face.Close()

	if sizes := face.ListSizes(); sizes != nil {
		t.Fatalf("ListSizes() = %v, want nil for a scalable face", sizes)
	}
}

func TestFontDescriptionClone_CopiesRecord(t *testing.T) {
	lib := fakelib.Install(t)
	face, err := BorrowFontFace(lib.NewFontFace("Italic", "Georgia", false, nil))
	if err != nil {
		t.Fatalf("BorrowFontFace: %v", err)
	}
	defer face.Close()

	desc, err := face.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	dup, err := desc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if dup.Native() == desc.Native() {
		t.Fatal("clone shares native memory with the original record")
	}
	if err := desc.Close(); err != nil {
		t.Fatalf("Close original: %v", err)
	}
	if got := dup.Family(); got != "Georgia" {
		t.Fatalf("clone Family() after original close = %q, want %q", got, "Georgia")
	}
	if err := dup.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if n := lib.LiveCount("PangoFontDescription"); n != 0 {
		t.Fatalf("%d descriptions still live after closing all handles", n)
	}
}

func TestFontFaceClone_SharesObject(t *testing.T) {
	lib := fakelib.Install(t)
	ptr := lib.NewFontFace("Bold", "Arial", false, nil)

	face, err := FontFaceFromFull(ptr)
	if err != nil {
		t.Fatalf("FontFaceFromFull: %v", err)
	}
	dup, err := face.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if dup.Native() != ptr {
		t.Fatal("refcounted clone should share the native pointer")
	}
	if got := lib.Refs(ptr); got != 2 {
		t.Fatalf("refs after clone = %d, want 2", got)
	}
	if err := face.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := dup.FaceName(); got != "Bold" {
		t.Fatalf("clone FaceName() = %q after original closed", got)
	}
	if err := dup.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("face alive after both handles closed")
	}
}
