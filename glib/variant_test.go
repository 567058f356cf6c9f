package glib

import (
	"testing"

	"github.com/wippyai/nativekit/internal/fakelib"
	"github.com/wippyai/nativekit/internal/ffi"
)

func TestNewStringVariant_SinksFloatingRef(t *testing.T) {
	lib := fakelib.Install(t)

	v, err := NewStringVariant("app.quit")
	if err != nil {
		t.Fatalf("NewStringVariant: %v", err)
	}
	ptr := v.Native()
	if got := lib.Refs(ptr); got != 1 {
		t.Fatalf("refs after sink = %d, want 1", got)
	}
	if got := v.Str(); got != "app.quit" {
		t.Fatalf("Str() = %q, want %q", got, "app.quit")
	}
	if err := v.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("variant alive after owning handle closed")
	}
}

func TestVariantClone_SharedPointer(t *testing.T) {
	lib := fakelib.Install(t)

	v, err := NewStringVariant("label text")
	if err != nil {
		t.Fatalf("NewStringVariant: %v", err)
	}
	dup, err := v.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if dup.Native() != v.Native() {
		t.Fatal("variant clone should share the native pointer")
	}
	if got := lib.Refs(v.Native()); got != 2 {
		t.Fatalf("refs after clone = %d, want 2", got)
	}
	ptr := v.Native()
	if err := dup.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if got := v.Str(); got != "label text" {
		t.Fatalf("Str() after clone close = %q, want original payload", got)
	}
	if err := v.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("variant alive after both handles closed")
	}
}

func TestEachListItem_WalksAll(t *testing.T) {
	lib := fakelib.Install(t)
	lib.SetMounts([]fakelib.MountSpec{
		{MountPath: "/", DevicePath: "/dev/sda1", FSType: "ext4"},
		{MountPath: "/boot", DevicePath: "/dev/sda2", FSType: "vfat"},
		{MountPath: "/data", DevicePath: "/dev/sdb1", FSType: "xfs"},
	})

	list := ffi.Gio.UnixMountsGet(nil)
	if list == nil {
		t.Fatal("empty mount list")
	}
	defer FreeList(list)

	var n int
	EachListItem(list, func(data uintptr) {
		if data == 0 {
			t.Fatal("list node with nil data")
		}
		n++
	})
	if n != 3 {
		t.Fatalf("walked %d items, want 3", n)
	}
}
