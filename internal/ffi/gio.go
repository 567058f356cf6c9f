package ffi

import "unsafe"

// GioProcs is the dispatch table for libgio: permissions, unix mounts and
// the menu model. Nullable C strings travel as unsafe.Pointer (nil maps to
// NULL), optional objects as uintptr (0 maps to NULL); required text
// travels as Go strings.
type GioProcs struct {
	// GPermission
	PermissionGetAllowed    func(permission uintptr) int32
	PermissionGetCanAcquire func(permission uintptr) int32
	PermissionGetCanRelease func(permission uintptr) int32
	PermissionImplUpdate    func(permission uintptr, allowed, canAcquire, canRelease int32)
	SimplePermissionNew     func(allowed int32) uintptr

	// Unix mounts
	UnixMountEntryGetType func() uintptr
	UnixMountsGet         func(timeRead unsafe.Pointer) unsafe.Pointer
	UnixMountGetMountPath func(entry uintptr) string
	UnixMountGetDevice    func(entry uintptr) string
	UnixMountGetFSType    func(entry uintptr) string

	// GMenuItem
	MenuItemNew               func(label, detailedAction unsafe.Pointer) uintptr
	MenuItemNewFromModel      func(model uintptr, itemIndex int32) uintptr
	MenuItemNewSection        func(label unsafe.Pointer, section uintptr) uintptr
	MenuItemNewSubmenu        func(label unsafe.Pointer, submenu uintptr) uintptr
	MenuItemGetAttributeValue func(item uintptr, attribute string, expectedType uintptr) uintptr
	MenuItemGetLink           func(item uintptr, link string) uintptr
	MenuItemSetAttributeValue func(item uintptr, attribute string, value uintptr)
	MenuItemSetDetailedAction func(item uintptr, detailedAction string)
	MenuItemSetLabel          func(item uintptr, label unsafe.Pointer)
	MenuItemSetLink           func(item uintptr, link string, model uintptr)
	MenuItemSetSection        func(item uintptr, section uintptr)
	MenuItemSetSubmenu        func(item uintptr, submenu uintptr)
}

// Gio is the live libgio dispatch table.
var Gio GioProcs

// GioLoaded reports whether the gio table is populated.
func GioLoaded() bool { return Gio.PermissionGetAllowed != nil }

func loadGio(lib uintptr) error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"g_permission_get_allowed", &Gio.PermissionGetAllowed},
		{"g_permission_get_can_acquire", &Gio.PermissionGetCanAcquire},
		{"g_permission_get_can_release", &Gio.PermissionGetCanRelease},
		{"g_permission_impl_update", &Gio.PermissionImplUpdate},
		{"g_simple_permission_new", &Gio.SimplePermissionNew},
		{"g_unix_mount_entry_get_type", &Gio.UnixMountEntryGetType},
		{"g_unix_mounts_get", &Gio.UnixMountsGet},
		{"g_unix_mount_get_mount_path", &Gio.UnixMountGetMountPath},
		{"g_unix_mount_get_device_path", &Gio.UnixMountGetDevice},
		{"g_unix_mount_get_fs_type", &Gio.UnixMountGetFSType},
		{"g_menu_item_new", &Gio.MenuItemNew},
		{"g_menu_item_new_from_model", &Gio.MenuItemNewFromModel},
		{"g_menu_item_new_section", &Gio.MenuItemNewSection},
		{"g_menu_item_new_submenu", &Gio.MenuItemNewSubmenu},
		{"g_menu_item_get_attribute_value", &Gio.MenuItemGetAttributeValue},
		{"g_menu_item_get_link", &Gio.MenuItemGetLink},
		{"g_menu_item_set_attribute_value", &Gio.MenuItemSetAttributeValue},
		{"g_menu_item_set_detailed_action", &Gio.MenuItemSetDetailedAction},
		{"g_menu_item_set_label", &Gio.MenuItemSetLabel},
		{"g_menu_item_set_link", &Gio.MenuItemSetLink},
		{"g_menu_item_set_section", &Gio.MenuItemSetSection},
		{"g_menu_item_set_submenu", &Gio.MenuItemSetSubmenu},
	}
	for _, s := range symbols {
		if err := register(lib, "libgio", s.name, s.fptr); err != nil {
			return err
		}
	}
	return nil
}
