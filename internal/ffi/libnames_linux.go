//go:build linux || freebsd

package ffi

const (
	cairoLibName   = "libcairo.so.2"
	glibLibName    = "libglib-2.0.so.0"
	gobjectLibName = "libgobject-2.0.so.0"
	gioLibName     = "libgio-2.0.so.0"
	pangoLibName   = "libpango-1.0.so.0"
)
