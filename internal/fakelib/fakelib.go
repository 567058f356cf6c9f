// Package fakelib is an in-process stand-in for the native libraries. It
// installs Go implementations into the ffi dispatch tables so that handle
// lifetime, status translation and forwarding tests run without libcairo or
// GLib present.
//
// The fake models exactly what the bindings' contract depends on: reference
// counts, sticky status codes, transfer conventions and a minimum of object
// state. It does not rasterize, shape text or parse mount tables.
package fakelib

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/wippyai/nativekit/internal/ffi"
	"github.com/wippyai/nativekit/status"
)

// Object is one fake native object.
type Object struct {
	Kind   string
	Refs   int
	Status int32
	Freed  bool

	// context state
	saveDepth  int
	groupDepth int
	target     uintptr
	source     uintptr
	fontFace   uintptr
	scaledFont uintptr
	ctm        mat
	fontMatrix mat
	curX, curY float64
	hasCurrent bool
	lineWidth  float64
	miterLimit float64
	tolerance  float64
	antialias  int32
	fillRule   int32
	lineCap    int32
	lineJoin   int32
	operator   int32
	dashes     []float64
	dashOffset float64
	family     string
	fontSize   float64

	// surface state
	width, height int32
	finished      bool
	pngPath       string

	// property / attribute state
	boolProps map[string]bool
	strProps  map[string]string
	attrs     map[string]uintptr
	links     map[string]uintptr

	// variant / string payloads
	strValue string

	// pango face state
	faceName    string
	family2     string
	synthesized bool
	sizes       []int32
}

// Library is the fake native world: an object table plus an arena that
// keeps fake C memory alive for the duration of a test.
type Library struct {
	mu      sync.Mutex
	next    uintptr
	objects map[uintptr]*Object
	arena   [][]byte
	lists   [][]listNode
	ints    [][]int32
	rects   [][]rect
	lures   [][]rectangleList
	frees   int
	mounts  []MountSpec
}

type listNode struct {
	data       uintptr
	next, prev unsafe.Pointer
}

type rect struct{ x, y, w, h float64 }

type rectangleList struct {
	status int32
	_      int32
	rects  unsafe.Pointer
	num    int32
	_      int32
}

type mat struct{ xx, yx, xy, yy, x0, y0 float64 }

var identity = mat{xx: 1, yy: 1}

// MountSpec describes one fake unix mount entry.
type MountSpec struct {
	MountPath  string
	DevicePath string
	FSType     string
}

// New creates an empty fake library.
func New() *Library {
	return &Library{
		next:    0x1000,
		objects: make(map[uintptr]*Object),
	}
}

// Install creates a fake library, wires it into the ffi dispatch tables
// and restores the previous tables when the test finishes.
func Install(t testing.TB) *Library {
	t.Helper()

	prevCairo := ffi.Cairo
	prevGLib := ffi.GLib
	prevGObject := ffi.GObject
	prevGio := ffi.Gio
	prevPango := ffi.Pango

	l := New()
	l.installCairo()
	l.installGLib()
	l.installGio()
	l.installPango()

	t.Cleanup(func() {
		ffi.Cairo = prevCairo
		ffi.GLib = prevGLib
		ffi.GObject = prevGObject
		ffi.Gio = prevGio
		ffi.Pango = prevPango
	})
	return l
}

func (l *Library) alloc(kind string) (uintptr, *Object) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next += 16
	o := &Object{
		Kind:       kind,
		Refs:       1,
		ctm:        identity,
		fontMatrix: identity,
		lineWidth:  2.0,
		miterLimit: 10.0,
		tolerance:  0.1,
		operator:   int32(2), // over
		fontSize:   10,
		boolProps:  make(map[string]bool),
		strProps:   make(map[string]string),
		attrs:      make(map[string]uintptr),
		links:      make(map[string]uintptr),
	}
	l.objects[l.next] = o
	return l.next, o
}

// get returns a live object; a stale or foreign pointer fails the
// invariant loudly rather than silently succeeding.
func (l *Library) get(ptr uintptr) *Object {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.objects[ptr]
	if !ok {
		panic("fakelib: unknown native pointer")
	}
	if o.Freed {
		panic("fakelib: use of freed " + o.Kind)
	}
	return o
}

func (l *Library) ref(ptr uintptr) uintptr {
	o := l.get(ptr)
	l.mu.Lock()
	o.Refs++
	l.mu.Unlock()
	return ptr
}

func (l *Library) unref(ptr uintptr) {
	o := l.get(ptr)
	l.mu.Lock()
	o.Refs--
	if o.Refs < 0 {
		l.mu.Unlock()
		panic("fakelib: negative reference count on " + o.Kind)
	}
	dead := o.Refs == 0
	if dead {
		o.Freed = true
		l.frees++
	}
	l.mu.Unlock()

	if dead {
		// Cascade the owned references a context holds.
		for _, dep := range []uintptr{o.target, o.source, o.fontFace, o.scaledFont} {
			if dep != 0 {
				l.unref(dep)
			}
		}
	}
}

func (l *Library) cstr(s string) unsafe.Pointer {
	b := append([]byte(s), 0)
	l.mu.Lock()
	l.arena = append(l.arena, b)
	l.mu.Unlock()
	return unsafe.Pointer(&b[0])
}

// Refs returns the current reference count for ptr, counting freed
// objects as zero.
func (l *Library) Refs(ptr uintptr) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.objects[ptr]
	if !ok || o.Freed {
		return 0
	}
	return o.Refs
}

// Alive reports whether ptr refers to a live object.
func (l *Library) Alive(ptr uintptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.objects[ptr]
	return ok && !o.Freed
}

// LiveCount returns the number of live objects of the given kind.
func (l *Library) LiveCount(kind string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, o := range l.objects {
		if !o.Freed && o.Kind == kind {
			n++
		}
	}
	return n
}

// Object returns the fake object behind ptr for direct inspection.
func (l *Library) Object(ptr uintptr) *Object { return l.get(ptr) }

// Poison forces an object into the given error status, standing in for a
// native operation that failed internally.
func (l *Library) Poison(ptr uintptr, s status.Status) {
	o := l.get(ptr)
	o.Status = int32(s)
}

// Frees returns how many native frees the library has observed, counting
// object destruction, boxed frees and g_free of returned strings.
func (l *Library) Frees() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frees
}

// SetMounts replaces the mount table returned by the unix mount fakes.
func (l *Library) SetMounts(mounts []MountSpec) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mounts = append([]MountSpec(nil), mounts...)
}

// NewFontFace creates a fake pango font face for tests.
func (l *Library) NewFontFace(faceName, family string, synthesized bool, sizes []int32) uintptr {
	ptr, o := l.alloc("PangoFontFace")
	o.faceName = faceName
	o.family2 = family
	o.synthesized = synthesized
	o.sizes = append([]int32(nil), sizes...)
	return ptr
}

// NewObject creates a bare fake object of the given kind with one
// reference, standing in for a pointer produced by some native caller.
func (l *Library) NewObject(kind string) uintptr {
	ptr, _ := l.alloc(kind)
	return ptr
}

// SetStringProp sets a string property on a fake object.
func (l *Library) SetStringProp(ptr uintptr, name, value string) {
	l.get(ptr).strProps[name] = value
}

// SetBoolProp sets a boolean property on a fake object.
func (l *Library) SetBoolProp(ptr uintptr, name string, value bool) {
	l.get(ptr).boolProps[name] = value
}

// NewMenuModel creates a fake menu model object for link tests.
func (l *Library) NewMenuModel() uintptr {
	ptr, _ := l.alloc("GMenuModel")
	return ptr
}

func putF64(p unsafe.Pointer, v float64) {
	if p != nil {
		*(*float64)(p) = v
	}
}

func putI32(p unsafe.Pointer, v int32) {
	if p != nil {
		*(*int32)(p) = v
	}
}

func putU64(p unsafe.Pointer, v uint64) {
	if p != nil {
		*(*uint64)(p) = v
	}
}

func putPtr(p unsafe.Pointer, v uintptr) {
	if p != nil {
		*(*uintptr)(p) = v
	}
}

func matAt(p unsafe.Pointer) *mat { return (*mat)(p) }
