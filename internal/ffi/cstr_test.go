package ffi

import (
	"testing"
	"unsafe"
)

func TestCString_EmptyMapsToNull(t *testing.T) {
	if p := CString(""); p != nil {
		t.Fatal("empty string must map to NULL")
	}
	p := CString("ab")
	if p == nil {
		t.Fatal("non-empty string mapped to NULL")
	}
	b := unsafe.Slice(p, 3)
	if b[0] != 'a' || b[1] != 'b' || b[2] != 0 {
		t.Fatalf("bad C string bytes: %v", b)
	}
}

func TestGoString_RoundTrip(t *testing.T) {
	if s := GoString(nil); s != "" {
		t.Fatalf("GoString(nil) = %q", s)
	}

	buf := []byte("mount/path\x00trailing")
	if s := GoString(unsafe.Pointer(&buf[0])); s != "mount/path" {
		t.Fatalf("GoString = %q, want %q", s, "mount/path")
	}

	empty := []byte{0}
	if s := GoString(unsafe.Pointer(&empty[0])); s != "" {
		t.Fatalf("GoString of empty C string = %q", s)
	}
}

func TestGoInt32Slice_Copies(t *testing.T) {
	if out := GoInt32Slice(nil, 3); out != nil {
		t.Fatal("nil pointer must yield nil")
	}

	src := []int32{8, 10, 12}
	out := GoInt32Slice(unsafe.Pointer(&src[0]), len(src))
	if len(out) != 3 || out[0] != 8 || out[2] != 12 {
		t.Fatalf("copied %v", out)
	}
	src[0] = 99
	if out[0] != 8 {
		t.Fatal("result aliases the native array")
	}
}
