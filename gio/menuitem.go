package gio

import (
	"unsafe"

	"github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/glib"
	"github.com/wippyai/nativekit/handle"
	"github.com/wippyai/nativekit/internal/ffi"
)

// Well-known menu item link names.
const (
	LinkSection = "section"
	LinkSubmenu = "submenu"
)

var (
	menuModelKind = &handle.Kind{
		Name:  "gio.MenuModel",
		Ref:   func(p uintptr) { ffi.GObject.ObjectRef(p) },
		Unref: func(p uintptr) { ffi.GObject.ObjectUnref(p) },
	}
	menuItemKind = &handle.Kind{
		Name:  "gio.MenuItem",
		Ref:   func(p uintptr) { ffi.GObject.ObjectRef(p) },
		Unref: func(p uintptr) { ffi.GObject.ObjectUnref(p) },
	}
)

// MenuModel is an ordered collection of menu items, usually owned by the
// library that built the menu.
type MenuModel struct {
	h *handle.Handle
}

// MenuModelFromFull wraps ptr, assuming ownership of one existing
// reference.
func MenuModelFromFull(ptr uintptr) (*MenuModel, error) {
	h, err := handle.TakeOwnership(menuModelKind, ptr)
	if err != nil {
		return nil, err
	}
	return &MenuModel{h: h}, nil
}

// MenuModelFromNone wraps ptr after taking a new reference.
func MenuModelFromNone(ptr uintptr) (*MenuModel, error) {
	h, err := handle.AdoptReference(menuModelKind, ptr)
	if err != nil {
		return nil, err
	}
	return &MenuModel{h: h}, nil
}

// BorrowMenuModel wraps ptr without touching the native reference count.
func BorrowMenuModel(ptr uintptr) (*MenuModel, error) {
	h, err := handle.Borrow(menuModelKind, ptr)
	if err != nil {
		return nil, err
	}
	return &MenuModel{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (m *MenuModel) Native() uintptr { return m.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (m *MenuModel) Clone() (*MenuModel, error) {
	h, err := m.h.Clone()
	if err != nil {
		return nil, err
	}
	return &MenuModel{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (m *MenuModel) Close() error { return m.h.Close() }

// MenuItem is one entry of a menu model.
type MenuItem struct {
	h *handle.Handle
}

// NewMenuItem creates a menu item. Either argument may be empty, which
// maps to NULL on the native side.
func NewMenuItem(label, detailedAction string) (*MenuItem, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}
	lb := ffi.CString(label)
	da := ffi.CString(detailedAction)
	return MenuItemFromFull(ffi.Gio.MenuItemNew(strArg(lb), strArg(da)))
}

// NewMenuItemFromModel copies the item at index out of model.
func NewMenuItemFromModel(model *MenuModel, index int) (*MenuItem, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}
	return MenuItemFromFull(ffi.Gio.MenuItemNewFromModel(model.Native(), int32(index)))
}

// NewMenuSection creates an item representing a section of another model.
func NewMenuSection(label string, section *MenuModel) (*MenuItem, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}
	lb := ffi.CString(label)
	return MenuItemFromFull(ffi.Gio.MenuItemNewSection(strArg(lb), section.Native()))
}

// NewMenuSubmenu creates an item that opens another model as a submenu.
func NewMenuSubmenu(label string, submenu *MenuModel) (*MenuItem, error) {
	if !ffi.GioLoaded() {
		return nil, errors.NotLoaded("libgio")
	}
	lb := ffi.CString(label)
	return MenuItemFromFull(ffi.Gio.MenuItemNewSubmenu(strArg(lb), submenu.Native()))
}

// MenuItemFromFull wraps ptr, assuming ownership of one existing
// reference.
func MenuItemFromFull(ptr uintptr) (*MenuItem, error) {
	h, err := handle.TakeOwnership(menuItemKind, ptr)
	if err != nil {
		return nil, err
	}
	return &MenuItem{h: h}, nil
}

// MenuItemFromNone wraps ptr after taking a new reference.
func MenuItemFromNone(ptr uintptr) (*MenuItem, error) {
	h, err := handle.AdoptReference(menuItemKind, ptr)
	if err != nil {
		return nil, err
	}
	return &MenuItem{h: h}, nil
}

// Native returns the native pointer for passing back to C entry points.
func (m *MenuItem) Native() uintptr { return m.h.Ptr() }

// Clone takes a new native reference and returns an independent handle.
func (m *MenuItem) Clone() (*MenuItem, error) {
	h, err := m.h.Clone()
	if err != nil {
		return nil, err
	}
	return &MenuItem{h: h}, nil
}

// Close releases the wrapper's reference. Idempotent.
func (m *MenuItem) Close() error { return m.h.Close() }

// SetLabel sets the item's label; the empty string clears it.
func (m *MenuItem) SetLabel(label string) {
	lb := ffi.CString(label)
	ffi.Gio.MenuItemSetLabel(m.h.Ptr(), strArg(lb))
}

// SetDetailedAction sets the item's action from a detailed action string.
func (m *MenuItem) SetDetailedAction(detailedAction string) {
	ffi.Gio.MenuItemSetDetailedAction(m.h.Ptr(), detailedAction)
}

// SetAttributeValue attaches a variant to the named attribute. A nil value
// removes the attribute. The item takes its own reference; the caller's
// variant stays valid.
func (m *MenuItem) SetAttributeValue(attribute string, value *glib.Variant) {
	var ptr uintptr
	if value != nil {
		ptr = value.Native()
	}
	ffi.Gio.MenuItemSetAttributeValue(m.h.Ptr(), attribute, ptr)
}

// SetAttributeString sets a string-typed attribute.
func (m *MenuItem) SetAttributeString(attribute, value string) error {
	v, err := glib.NewStringVariant(value)
	if err != nil {
		return err
	}
	defer v.Close()
	m.SetAttributeValue(attribute, v)
	return nil
}

// AttributeValue looks up the named attribute. The returned variant is
// owned by the caller; a missing attribute reports a not-found error.
func (m *MenuItem) AttributeValue(attribute string) (*glib.Variant, error) {
	ptr := ffi.Gio.MenuItemGetAttributeValue(m.h.Ptr(), attribute, 0)
	if ptr == 0 {
		return nil, errors.NotFound(errors.PhaseCall, "menu attribute", attribute)
	}
	return glib.VariantFromFull(ptr)
}

// SetLink points the named link at model; nil removes the link.
func (m *MenuItem) SetLink(link string, model *MenuModel) {
	var ptr uintptr
	if model != nil {
		ptr = model.Native()
	}
	ffi.Gio.MenuItemSetLink(m.h.Ptr(), link, ptr)
}

// Link resolves the named link. The returned model is owned by the
// caller; a missing link reports a not-found error.
func (m *MenuItem) Link(link string) (*MenuModel, error) {
	ptr := ffi.Gio.MenuItemGetLink(m.h.Ptr(), link)
	if ptr == 0 {
		return nil, errors.NotFound(errors.PhaseCall, "menu link", link)
	}
	return MenuModelFromFull(ptr)
}

// SetSection points the item's section link at model.
func (m *MenuItem) SetSection(model *MenuModel) {
	var ptr uintptr
	if model != nil {
		ptr = model.Native()
	}
	ffi.Gio.MenuItemSetSection(m.h.Ptr(), ptr)
}

// SetSubmenu points the item's submenu link at model.
func (m *MenuItem) SetSubmenu(model *MenuModel) {
	var ptr uintptr
	if model != nil {
		ptr = model.Native()
	}
	ffi.Gio.MenuItemSetSubmenu(m.h.Ptr(), ptr)
}

func strArg(p *byte) unsafe.Pointer { return unsafe.Pointer(p) }
