package status_test

import (
	"testing"

	"github.com/wippyai/nativekit/internal/fakelib"
	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

func TestNativeString_DispatchesToLibrary(t *testing.T) {
	fakelib.Install(t)
	ffi.Cairo.StatusToString = func(code int32) string {
		if code == 1 {
			return "native says: out of memory"
		}
		return "native says: something else"
	}

	if got := status.NoMemory.NativeString(); got != "native says: out of memory" {
		t.Fatalf("NativeString = %q, want the library's description", got)
	}
}

func TestNativeString_FallsBackWhenNotLoaded(t *testing.T) {
	prev := ffi.Cairo
	ffi.Cairo = ffi.CairoProcs{}
	t.Cleanup(func() { ffi.Cairo = prev })

	if got := status.NoMemory.NativeString(); got != status.NoMemory.String() {
		t.Fatalf("NativeString = %q, want the Go-side name %q", got, status.NoMemory.String())
	}
}
