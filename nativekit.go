package nativekit

import (
	"go.uber.org/zap"

	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

// Config selects which native libraries Load opens and lets callers
// override the default shared library names. The zero value loads
// everything with platform defaults.
type Config struct {
	SkipCairo bool
	SkipGLib  bool
	SkipGio   bool
	SkipPango bool

	CairoLibrary   string
	GLibLibrary    string
	GObjectLibrary string
	GioLibrary     string
	PangoLibrary   string
}

// Load opens the native libraries and resolves every bound entry point.
// It is safe to call more than once; libraries already resolved are left
// alone. Wrapper constructors fail with a not-loaded error until their
// library has been loaded.
func Load(cfg Config) error {
	return ffi.Load(ffi.Config{
		SkipCairo:      cfg.SkipCairo,
		SkipGLib:       cfg.SkipGLib,
		SkipGio:        cfg.SkipGio,
		SkipPango:      cfg.SkipPango,
		CairoLibrary:   cfg.CairoLibrary,
		GLibLibrary:    cfg.GLibLibrary,
		GObjectLibrary: cfg.GObjectLibrary,
		GioLibrary:     cfg.GioLibrary,
		PangoLibrary:   cfg.PangoLibrary,
	})
}

// SetLogger installs a logger for loading and lifetime diagnostics.
// Logging is a no-op by default.
func SetLogger(l *zap.Logger) { ffi.SetLogger(l) }

// LiveHandles returns the number of open handles in the default registry,
// a quick leak check for tests and shutdown paths.
func LiveHandles() int { return handle.Default().Len() }

// LiveHandlesByKind breaks the open-handle count down by native type
// name.
func LiveHandlesByKind() map[string]int { return handle.Default().LiveByKind() }
