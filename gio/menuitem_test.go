package gio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bnderr "github.com/wippyai/nativekit/errors"
	"github.com/wippyai/nativekit/glib"
	"github.com/wippyai/nativekit/internal/fakelib"
)

func TestNewMenuItem_LabelAndAction(t *testing.T) {
	fakelib.Install(t)

	item, err := NewMenuItem("Open", "app.open")
	require.NoError(t, err)
	defer item.Close()

	label, err := item.AttributeValue("label")
	require.NoError(t, err)
	defer label.Close()
	assert.Equal(t, "Open", label.Str())

	action, err := item.AttributeValue("action")
	require.NoError(t, err)
	defer action.Close()
	assert.Equal(t, "app.open", action.Str())
}

func TestMenuItem_MissingAttribute(t *testing.T) {
	fakelib.Install(t)

	item, err := NewMenuItem("", "")
	require.NoError(t, err)
	defer item.Close()

	_, err = item.AttributeValue("target")
	require.Error(t, err)
	want := &bnderr.Error{Phase: bnderr.PhaseCall, Kind: bnderr.KindNotFound}
	assert.True(t, errors.Is(err, want), "missing attribute should report not-found, got %v", err)
}

func TestMenuItem_SetAttributeValue_SharedOwnership(t *testing.T) {
	lib := fakelib.Install(t)

	item, err := NewMenuItem("Save", "app.save")
	require.NoError(t, err)
	defer item.Close()

	v, err := glib.NewStringVariant("ctrl+s")
	require.NoError(t, err)
	ptr := v.Native()

	item.SetAttributeValue("accel", v)
	assert.Equal(t, 2, lib.Refs(ptr), "item must take its own reference")

	require.NoError(t, v.Close())
	assert.Equal(t, 1, lib.Refs(ptr), "item's reference must survive the caller's close")

	got, err := item.AttributeValue("accel")
	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, "ctrl+s", got.Str())
}

func TestMenuItem_Links(t *testing.T) {
	lib := fakelib.Install(t)
	model, err := BorrowMenuModel(lib.NewMenuModel())
	require.NoError(t, err)
	defer model.Close()

	item, err := NewMenuSubmenu("More", model)
	require.NoError(t, err)
	defer item.Close()

	sub, err := item.Link(LinkSubmenu)
	require.NoError(t, err)
	assert.Equal(t, model.Native(), sub.Native())
	require.NoError(t, sub.Close())

	_, err = item.Link(LinkSection)
	require.Error(t, err)

	item.SetSection(model)
	sec, err := item.Link(LinkSection)
	require.NoError(t, err)
	require.NoError(t, sec.Close())

	item.SetLink(LinkSection, nil)
	_, err = item.Link(LinkSection)
	require.Error(t, err)
}

func TestMenuItem_SetLabelClears(t *testing.T) {
	fakelib.Install(t)

	item, err := NewMenuItem("Close", "app.close")
	require.NoError(t, err)
	defer item.Close()

	item.SetLabel("")
	_, err = item.AttributeValue("label")
	require.Error(t, err)

	item.SetLabel("Quit")
	label, err := item.AttributeValue("label")
	require.NoError(t, err)
	defer label.Close()
	assert.Equal(t, "Quit", label.Str())
}
