// Package gio wraps the GIO permission, unix mount and menu model entry
// points on top of the handle lifetime layer.
//
// Permissions and menu items are reference-counted GObjects; unix mount
// entries are boxed records that duplicate through g_boxed_copy whenever
// an owning wrapper is created from a transfer-none pointer.
package gio
