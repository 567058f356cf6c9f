//go:build !linux && !freebsd && !darwin

package ffi

import "github.com/wippyai/nativekit/errors"

func dlopen(name string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseLoad, "dynamic loading on this platform")
}
