package ffi

import (
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/wippyai/nativekit/errors"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the ffi logger. It is a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger installs a logger for library loading diagnostics.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Config selects which native libraries Load opens. The zero value loads
// everything.
type Config struct {
	SkipCairo bool
	SkipGLib  bool
	SkipGio   bool
	SkipPango bool

	// Overrides for the default shared library names, mainly for
	// distributions that install unversioned sonames.
	CairoLibrary   string
	GLibLibrary    string
	GObjectLibrary string
	GioLibrary     string
	PangoLibrary   string
}

var loadMu sync.Mutex

// Load opens the native libraries and populates the dispatch tables.
// Libraries already loaded (or populated by a test fake) are left alone.
func Load(cfg Config) error {
	loadMu.Lock()
	defer loadMu.Unlock()

	type step struct {
		skip bool
		done bool
		name string
		def  string
		fill func(lib uintptr) error
	}
	steps := []step{
		{cfg.SkipCairo, CairoLoaded(), cfg.CairoLibrary, cairoLibName, loadCairo},
		{cfg.SkipGLib, GLibLoaded(), cfg.GLibLibrary, glibLibName, loadGLib},
		{cfg.SkipGLib, GObjectLoaded(), cfg.GObjectLibrary, gobjectLibName, loadGObject},
		{cfg.SkipGio, GioLoaded(), cfg.GioLibrary, gioLibName, loadGio},
		{cfg.SkipPango, PangoLoaded(), cfg.PangoLibrary, pangoLibName, loadPango},
	}

	for _, s := range steps {
		if s.skip || s.done {
			continue
		}
		name := s.name
		if name == "" {
			name = s.def
		}
		lib, err := dlopen(name)
		if err != nil {
			Logger().Warn("native library unavailable", zap.String("library", name), zap.Error(err))
			return errors.LibraryMissing(name, err)
		}
		if err := s.fill(lib); err != nil {
			return err
		}
		Logger().Info("native library loaded", zap.String("library", name))
	}
	return nil
}

// register binds one native symbol into a dispatch table slot. purego
// panics on unknown symbols; translate that into a structured error.
func register(lib uintptr, library, symbol string, fptr any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.SymbolMissing(library, symbol)
		}
	}()
	purego.RegisterLibFunc(fptr, lib, symbol)
	return nil
}
