package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New(PhaseCall, KindNativeStatus).
		Object("cairo.Context").
		Entry("cairo_restore").
		Detail("invalid restore without matching save").
		Build()

	msg := err.Error()
	for _, want := range []string{"[call]", "native_status", "cairo.Context", "cairo_restore", "matching save"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := NilPointer(PhaseAcquire, "cairo.Surface")

	if !errors.Is(err, &Error{Phase: PhaseAcquire, Kind: KindNilPointer}) {
		t.Error("expected match on phase+kind")
	}
	if errors.Is(err, &Error{Phase: PhaseCall, Kind: KindNilPointer}) {
		t.Error("unexpected match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dlopen failed")
	err := LibraryMissing("libcairo.so.2", cause)

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "dlopen failed") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestError_DetailFormatting(t *testing.T) {
	err := New(PhaseConvert, KindOverflow).Detail("value %d too large", 42).Build()
	if !strings.Contains(err.Error(), "value 42 too large") {
		t.Errorf("formatted detail missing: %q", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cases := []struct {
		err  *Error
		kind Kind
	}{
		{Closed("glib.Object"), KindClosed},
		{SymbolMissing("libgio", "g_permission_get_allowed"), KindSymbolMissing},
		{NotLoaded("libcairo"), KindLibraryMissing},
		{NotFound(PhaseCall, "attribute", "label"), KindNotFound},
		{Unsupported(PhaseConvert, "variant type"), KindUnsupported},
		{Overflow(PhaseConvert, int64(1) << 40, "int32"), KindOverflow},
	}
	for _, c := range cases {
		if c.err.Kind != c.kind {
			t.Errorf("got kind %q, want %q", c.err.Kind, c.kind)
		}
		if c.err.Error() == "" {
			t.Error("empty message")
		}
	}
}
