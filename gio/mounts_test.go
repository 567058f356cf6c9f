package gio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/nativekit/internal/fakelib"
)

func TestUnixMounts(t *testing.T) {
	lib := fakelib.Install(t)
	lib.SetMounts([]fakelib.MountSpec{
		{MountPath: "/", DevicePath: "/dev/nvme0n1p2", FSType: "ext4"},
		{MountPath: "/boot/efi", DevicePath: "/dev/nvme0n1p1", FSType: "vfat"},
	})

	entries, err := UnixMounts()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "/", entries[0].MountPath())
	assert.Equal(t, "/dev/nvme0n1p2", entries[0].DevicePath())
	assert.Equal(t, "ext4", entries[0].FSType())
	assert.Equal(t, "/boot/efi", entries[1].MountPath())

	for _, e := range entries {
		require.NoError(t, e.Close())
	}
	assert.Zero(t, lib.LiveCount("GUnixMountEntry"), "closing all entries must free every record")
}

func TestUnixMounts_EmptyTable(t *testing.T) {
	fakelib.Install(t)

	entries, err := UnixMounts()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMountEntryClone_CopiesRecord(t *testing.T) {
	lib := fakelib.Install(t)
	lib.SetMounts([]fakelib.MountSpec{
		{MountPath: "/data", DevicePath: "/dev/sdb1", FSType: "xfs"},
	})

	entries, err := UnixMounts()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]

	dup, err := entry.Clone()
	require.NoError(t, err)
	assert.NotEqual(t, entry.Native(), dup.Native(), "boxed clone must own distinct memory")
	assert.Equal(t, entry.MountPath(), dup.MountPath())

	require.NoError(t, entry.Close())
	assert.Equal(t, "/data", dup.MountPath(), "clone must survive the original")
	require.NoError(t, dup.Close())
	assert.Zero(t, lib.LiveCount("GUnixMountEntry"))
}

func TestMountEntryFromNone_Copies(t *testing.T) {
	lib := fakelib.Install(t)
	lib.SetMounts([]fakelib.MountSpec{
		{MountPath: "/home", DevicePath: "/dev/sda3", FSType: "btrfs"},
	})

	entries, err := UnixMounts()
	require.NoError(t, err)
	entry := entries[0]
	defer entry.Close()

	adopted, err := MountEntryFromNone(entry.Native())
	require.NoError(t, err)
	assert.NotEqual(t, entry.Native(), adopted.Native())
	assert.Equal(t, "/home", adopted.MountPath())
	require.NoError(t, adopted.Close())
	assert.True(t, lib.Alive(entry.Native()), "freeing the copy must not touch the source record")
}
