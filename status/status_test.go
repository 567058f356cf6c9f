package status

import (
	"errors"
	"strings"
	"testing"
)

func TestToError_SuccessIsSilent(t *testing.T) {
	if err := Success.ToError(); err != nil {
		t.Fatalf("success produced error: %v", err)
	}
	if err := FromCode(0).ToError(); err != nil {
		t.Fatalf("code 0 produced error: %v", err)
	}
}

func TestToError_Typed(t *testing.T) {
	err := InvalidRestore.ToError()
	if err == nil {
		t.Fatal("expected error")
	}

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *status.Error, got %T", err)
	}
	if se.Status != InvalidRestore {
		t.Fatalf("status = %v", se.Status)
	}
	if !errors.Is(err, &Error{Status: InvalidRestore}) {
		t.Fatal("Is must match on status code")
	}
	if errors.Is(err, &Error{Status: NoMemory}) {
		t.Fatal("Is must not match a different status")
	}
}

func TestString(t *testing.T) {
	if got := InvalidRestore.String(); !strings.Contains(got, "matching save") {
		t.Errorf("InvalidRestore = %q", got)
	}
	if got := Status(9999).String(); !strings.Contains(got, "unknown") {
		t.Errorf("unknown code = %q", got)
	}
	if !strings.HasPrefix(InvalidDash.ToError().Error(), "cairo: ") {
		t.Error("error message must carry the library prefix")
	}
}
