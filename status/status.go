package status

import (
	"fmt"

	"github.com/wippyai/nativekit/internal/ffi"
)

// Status is a cairo status code. Zero is success; every other value marks
// the object as permanently errored per cairo's error model.
type Status int32

const (
	Success Status = iota
	NoMemory
	InvalidRestore
	InvalidPopGroup
	NoCurrentPoint
	InvalidMatrix
	InvalidStatus
	NullPointer
	InvalidString
	InvalidPathData
	ReadError
	WriteError
	SurfaceFinished
	SurfaceTypeMismatch
	PatternTypeMismatch
	InvalidContent
	InvalidFormat
	InvalidVisual
	FileNotFound
	InvalidDash
	InvalidDSCComment
	InvalidIndex
	ClipNotRepresentable
	TempFileError
	InvalidStride
	FontTypeMismatch
	UserFontImmutable
	UserFontError
	NegativeCount
	InvalidClusters
	InvalidSlant
	InvalidWeight
	InvalidSize
	UserFontNotImplemented
	DeviceTypeMismatch
	DeviceError
	InvalidMeshConstruction
	DeviceFinished
	JBIG2GlobalMissing
	PNGError
	FreetypeError
	Win32GDIError
	TagError
	DWriteError
)

var names = map[Status]string{
	Success:                 "success",
	NoMemory:                "out of memory",
	InvalidRestore:          "invalid restore without matching save",
	InvalidPopGroup:         "invalid pop group without matching push group",
	NoCurrentPoint:          "no current point defined",
	InvalidMatrix:           "invalid matrix (not invertible)",
	InvalidStatus:           "invalid status value",
	NullPointer:             "null pointer",
	InvalidString:           "invalid string (not valid UTF-8)",
	InvalidPathData:         "invalid path data",
	ReadError:               "read error",
	WriteError:              "write error",
	SurfaceFinished:         "surface has been finished",
	SurfaceTypeMismatch:     "surface type mismatch",
	PatternTypeMismatch:     "pattern type mismatch",
	InvalidContent:          "invalid content value",
	InvalidFormat:           "invalid format value",
	InvalidVisual:           "invalid visual",
	FileNotFound:            "file not found",
	InvalidDash:             "invalid dash value",
	InvalidDSCComment:       "invalid DSC comment",
	InvalidIndex:            "invalid index",
	ClipNotRepresentable:    "clip region not representable",
	TempFileError:           "temporary file error",
	InvalidStride:           "invalid stride",
	FontTypeMismatch:        "font type mismatch",
	UserFontImmutable:       "user font is immutable",
	UserFontError:           "user font error",
	NegativeCount:           "negative count",
	InvalidClusters:         "invalid text clusters",
	InvalidSlant:            "invalid font slant",
	InvalidWeight:           "invalid font weight",
	InvalidSize:             "invalid size",
	UserFontNotImplemented:  "user font method not implemented",
	DeviceTypeMismatch:      "device type mismatch",
	DeviceError:             "device error",
	InvalidMeshConstruction: "invalid mesh construction",
	DeviceFinished:          "device has been finished",
	JBIG2GlobalMissing:      "JBIG2 global data missing",
	PNGError:                "PNG error",
	FreetypeError:           "FreeType error",
	Win32GDIError:           "Win32 GDI error",
	TagError:                "tag error",
	DWriteError:             "DirectWrite error",
}

func (s Status) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown status %d", int32(s))
}

// NativeString asks libcairo to describe the status, falling back to the
// Go-side name when the library is not loaded.
func (s Status) NativeString() string {
	if ffi.CairoLoaded() {
		return ffi.Cairo.StatusToString(int32(s))
	}
	return s.String()
}

// Error is the typed error surfaced for a non-success status.
type Error struct {
	Status Status
}

func (e *Error) Error() string {
	return "cairo: " + e.Status.String()
}

// Is matches errors carrying the same status code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Status == t.Status
	}
	return false
}

// ToError translates a status into a typed error. Success is silent (nil).
func (s Status) ToError() error {
	if s == Success {
		return nil
	}
	return &Error{Status: s}
}

// FromCode translates a raw native status code.
func FromCode(code int32) Status { return Status(code) }
