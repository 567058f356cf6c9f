//go:build !linux && !freebsd && !darwin

package ffi

const (
	cairoLibName   = "cairo"
	glibLibName    = "glib-2.0"
	gobjectLibName = "gobject-2.0"
	gioLibName     = "gio-2.0"
	pangoLibName   = "pango-1.0"
)
