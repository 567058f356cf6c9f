package nativekit

import (
	"testing"

	"github.com/wippyai/nativekit/cairo"
	"github.com/wippyai/nativekit/internal/fakelib"
)

func TestLoad_AllSkipped(t *testing.T) {
	err := Load(Config{SkipCairo: true, SkipGLib: true, SkipGio: true, SkipPango: true})
	if err != nil {
		t.Fatalf("Load with every library skipped: %v", err)
	}
}

func TestLiveHandles(t *testing.T) {
	fakelib.Install(t)
	before := LiveHandles()

	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	if got := LiveHandles(); got != before+1 {
		t.Fatalf("LiveHandles() = %d, want %d", got, before+1)
	}
	byKind := LiveHandlesByKind()
	if byKind["cairo.Surface"] == 0 {
		t.Fatal("no cairo.Surface in the live-handle breakdown")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := LiveHandles(); got != before {
		t.Fatalf("LiveHandles() after close = %d, want %d", got, before)
	}
}
