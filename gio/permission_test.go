package gio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/nativekit/internal/fakelib"
)

func TestNewSimplePermission(t *testing.T) {
	lib := fakelib.Install(t)

	p, err := NewSimplePermission(true)
	require.NoError(t, err)
	ptr := p.Native()

	assert.True(t, p.Allowed())
	assert.False(t, p.CanAcquire())
	assert.False(t, p.CanRelease())
	assert.Equal(t, 1, lib.Refs(ptr))

	require.NoError(t, p.Close())
	assert.False(t, lib.Alive(ptr), "permission should be freed with its only handle")
}

func TestPermissionImplUpdate(t *testing.T) {
	fakelib.Install(t)

	p, err := NewSimplePermission(false)
	require.NoError(t, err)
	defer p.Close()

	require.False(t, p.Allowed())
	p.ImplUpdate(true, true, false)
	assert.True(t, p.Allowed())
	assert.True(t, p.CanAcquire())
	assert.False(t, p.CanRelease())
}

func TestPermissionAsObject_Properties(t *testing.T) {
	fakelib.Install(t)

	p, err := NewSimplePermission(true)
	require.NoError(t, err)
	defer p.Close()

	o, err := p.AsObject()
	require.NoError(t, err)
	defer o.Close()

	allowed, err := o.BoolProperty("allowed")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPermissionFromNone_KeepsCallerReference(t *testing.T) {
	lib := fakelib.Install(t)

	owner, err := NewSimplePermission(true)
	require.NoError(t, err)
	ptr := owner.Native()

	p, err := PermissionFromNone(ptr)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Refs(ptr))

	require.NoError(t, p.Close())
	assert.Equal(t, 1, lib.Refs(ptr), "owner's reference must survive the adopted handle")
	require.NoError(t, owner.Close())
	assert.False(t, lib.Alive(ptr))
}
