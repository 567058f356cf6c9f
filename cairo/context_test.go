package cairo

import (
	"errors"
	"testing"

	bnderr "github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/internal/fakelib"
	"github.com/wippyai/nativekit/status"
)

func newTestContext(t *testing.T) (*Context, *Surface) {
	t.Helper()
	surface, err := NewImageSurface(FormatARGB32, 640, 480)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	cr, err := NewContext(surface)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return cr, surface
}

func TestNewContext_RefcountRoundTrip(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)

	// The context holds its own reference on the target surface.
	if got := lib.Refs(surface.Native()); got != 2 {
		t.Fatalf("surface refs with live context = %d, want 2", got)
	}
	if got := cr.ReferenceCount(); got != 1 {
		t.Fatalf("context refs = %d, want 1", got)
	}

	crPtr := cr.Native()
	if err := cr.Close(); err != nil {
		t.Fatalf("Close context: %v", err)
	}
	if lib.Alive(crPtr) {
		t.Fatal("context alive after close")
	}
	if got := lib.Refs(surface.Native()); got != 1 {
		t.Fatalf("surface refs after context close = %d, want the pre-context 1", got)
	}
	if err := surface.Close(); err != nil {
		t.Fatalf("Close surface: %v", err)
	}
	if lib.LiveCount("cairo_surface_t") != 0 {
		t.Fatal("surface leaked")
	}
}

func TestContextFromFull_NilPointer(t *testing.T) {
	fakelib.Install(t)

	_, err := ContextFromFull(0)
	if err == nil {
		t.Fatal("expected error for nil pointer")
	}
	if !errors.Is(err, &bnderr.Error{Phase: bnderr.PhaseAcquire, Kind: bnderr.KindNilPointer}) {
		t.Fatalf("error %v does not match nil-pointer acquire failure", err)
	}
}

func TestContextClone_IndependentRelease(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()

	dup, err := cr.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	ptr := cr.Native()
	if dup.Native() != ptr {
		t.Fatal("context clone should share the native pointer")
	}
	if got := lib.Refs(ptr); got != 2 {
		t.Fatalf("refs after clone = %d, want 2", got)
	}
	if err := cr.Close(); err != nil {
		t.Fatalf("Close original: %v", err)
	}
	if !lib.Alive(ptr) {
		t.Fatal("context freed while the clone still owns a reference")
	}
	if err := dup.Status(); err != nil {
		t.Fatalf("clone unusable after original closed: %v", err)
	}
	if err := dup.Close(); err != nil {
		t.Fatalf("Close clone: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("context alive after both handles closed")
	}
}

func TestRestore_Unbalanced_SurfacesTypedError(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	if err := cr.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := cr.Restore(); err != nil {
		t.Fatalf("balanced Restore: %v", err)
	}

	err := cr.Restore()
	if err == nil {
		t.Fatal("unbalanced Restore reported success")
	}
	var se *status.Error
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a status error", err)
	}
	if se.Status != status.InvalidRestore {
		t.Fatalf("status = %v, want %v", se.Status, status.InvalidRestore)
	}
	// The status is sticky: every later check reports the same failure.
	if err := cr.Status(); !errors.Is(err, &status.Error{Status: status.InvalidRestore}) {
		t.Fatalf("sticky status = %v, want invalid restore", err)
	}
}

func TestPopGroup_WithoutPush(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	_, err := cr.PopGroup()
	if !errors.Is(err, &status.Error{Status: status.InvalidPopGroup}) {
		t.Fatalf("PopGroup without a push = %v, want invalid pop group", err)
	}
}

func TestPushPopGroup(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	cr.PushGroup()
	p, err := cr.PopGroup()
	if err != nil {
		t.Fatalf("PopGroup: %v", err)
	}
	ptr := p.Native()
	if err := p.Close(); err != nil {
		t.Fatalf("Close pattern: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("group pattern alive after its only owner closed")
	}
}

func TestStateAccessors(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	cr.SetLineWidth(4.5)
	if got := cr.GetLineWidth(); got != 4.5 {
		t.Fatalf("line width = %v, want 4.5", got)
	}
	cr.SetLineCap(LineCapRound)
	if got := cr.GetLineCap(); got != LineCapRound {
		t.Fatalf("line cap = %v, want round", got)
	}
	cr.SetFillRule(FillRuleEvenOdd)
	if got := cr.GetFillRule(); got != FillRuleEvenOdd {
		t.Fatalf("fill rule = %v, want even-odd", got)
	}
	cr.SetOperator(OperatorMultiply)
	if got := cr.GetOperator(); got != OperatorMultiply {
		t.Fatalf("operator = %v, want multiply", got)
	}
	cr.SetTolerance(0.25)
	if got := cr.GetTolerance(); got != 0.25 {
		t.Fatalf("tolerance = %v, want 0.25", got)
	}
}

func TestSetDash_RoundTripAndValidation(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	if err := cr.SetDash([]float64{4, 2, 1}, 0.5); err != nil {
		t.Fatalf("SetDash: %v", err)
	}
	if got := cr.DashCount(); got != 3 {
		t.Fatalf("dash count = %d, want 3", got)
	}
	dashes, offset := cr.Dash()
	if len(dashes) != 3 || dashes[0] != 4 || dashes[1] != 2 || dashes[2] != 1 {
		t.Fatalf("dashes = %v, want [4 2 1]", dashes)
	}
	if offset != 0.5 {
		t.Fatalf("offset = %v, want 0.5", offset)
	}

	if err := cr.SetDash([]float64{-1}, 0); !errors.Is(err, &status.Error{Status: status.InvalidDash}) {
		t.Fatalf("negative dash = %v, want invalid dash", err)
	}
}

func TestSourceOwnership(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	p, err := NewSolidPattern(1, 0, 0)
	if err != nil {
		t.Fatalf("NewSolidPattern: %v", err)
	}
	ptr := p.Native()
	if err := cr.SetSource(p); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if got := lib.Refs(ptr); got != 2 {
		t.Fatalf("pattern refs after SetSource = %d, want 2", got)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close pattern: %v", err)
	}
	if got := lib.Refs(ptr); got != 1 {
		t.Fatalf("pattern refs after caller close = %d, context must still hold one", got)
	}

	got, err := cr.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if got.Native() != ptr {
		t.Fatal("Source() returned a different pattern")
	}
	if err := got.Close(); err != nil {
		t.Fatalf("Close source wrapper: %v", err)
	}
	if got := lib.Refs(ptr); got != 1 {
		t.Fatalf("pattern refs after wrapper close = %d, want 1", got)
	}
}

func TestClipRectangleList(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	rects, err := cr.ClipRectangleList()
	if err != nil {
		t.Fatalf("ClipRectangleList: %v", err)
	}
	if len(rects) != 1 {
		t.Fatalf("got %d rectangles, want 1", len(rects))
	}
	if rects[0].Width != 640 || rects[0].Height != 480 {
		t.Fatalf("clip rectangle = %+v, want the full 640x480 surface", rects[0])
	}
	if lib.Frees() == 0 {
		t.Fatal("native rectangle list never destroyed")
	}
}

func TestPaint_FinishedTarget(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	surface.Finish()
	if err := cr.Paint(); !errors.Is(err, &status.Error{Status: status.SurfaceFinished}) {
		t.Fatalf("Paint on finished target = %v, want surface finished", err)
	}
}

func TestTextExtents(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	cr.SetFontSize(12)
	ext, err := cr.TextExtents("hello")
	if err != nil {
		t.Fatalf("TextExtents: %v", err)
	}
	if ext.Width <= 0 || ext.XAdvance <= 0 {
		t.Fatalf("extents = %+v, want positive width and advance", ext)
	}

	fe, err := cr.FontExtents()
	if err != nil {
		t.Fatalf("FontExtents: %v", err)
	}
	if fe.Height != 12 {
		t.Fatalf("font height = %v, want 12", fe.Height)
	}
}

func TestCurrentPoint(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	has, err := cr.HasCurrentPoint()
	if err != nil {
		t.Fatalf("HasCurrentPoint: %v", err)
	}
	if has {
		t.Fatal("fresh context reports a current point")
	}

	cr.MoveTo(10, 20)
	cr.RelLineTo(5, -5)
	x, y, err := cr.CurrentPoint()
	if err != nil {
		t.Fatalf("CurrentPoint: %v", err)
	}
	if x != 15 || y != 15 {
		t.Fatalf("current point = (%v, %v), want (15, 15)", x, y)
	}
}

func TestCopyPath_OwnedByCaller(t *testing.T) {
	lib := fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	cr.MoveTo(0, 0)
	cr.LineTo(10, 10)
	path, err := cr.CopyPath()
	if err != nil {
		t.Fatalf("CopyPath: %v", err)
	}
	ptr := path.Native()
	if err := path.Close(); err != nil {
		t.Fatalf("Close path: %v", err)
	}
	if lib.Alive(ptr) {
		t.Fatal("path alive after owning handle closed")
	}
}

func TestUserToDevice_Transforms(t *testing.T) {
	fakelib.Install(t)
	cr, surface := newTestContext(t)
	defer surface.Close()
	defer cr.Close()

	cr.Translate(10, 20)
	x, y := cr.UserToDevice(1, 2)
	if x != 11 || y != 22 {
		t.Fatalf("UserToDevice(1,2) = (%v, %v), want (11, 22)", x, y)
	}
	ux, uy, err := cr.DeviceToUser(11, 22)
	if err != nil {
		t.Fatalf("DeviceToUser: %v", err)
	}
	if ux != 1 || uy != 2 {
		t.Fatalf("DeviceToUser(11,22) = (%v, %v), want (1, 2)", ux, uy)
	}
}
