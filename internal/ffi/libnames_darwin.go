//go:build darwin

package ffi

const (
	cairoLibName   = "libcairo.2.dylib"
	glibLibName    = "libglib-2.0.0.dylib"
	gobjectLibName = "libgobject-2.0.0.dylib"
	gioLibName     = "libgio-2.0.0.dylib"
	pangoLibName   = "libpango-1.0.0.dylib"
)
