package keyvalue

import (
	"os"
	"path/filepath"
	"testing"

	"privy/config"
	"privy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) service.DeviceIDStore {
	cfg := &config.Config{
		Identity: &config.IdentityConfig{
			StorePath: filepath.Join(t.TempDir(), "device_id"),
		},
	}

	return NewFileStore(cfg)
}

func TestFileStore_ReadEmptySlot(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read()
	assert.ErrorIs(t, err, service.ErrDeviceIDNotFound)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Write("device_1732240789_ab12cd"))

	deviceID, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "device_1732240789_ab12cd", deviceID)
}

func TestFileStore_WriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "device_id")
	cfg := &config.Config{Identity: &config.IdentityConfig{StorePath: path}}
	store := NewFileStore(cfg)

	require.NoError(t, store.Write("device_1_x"))
	require.NoError(t, store.Write("device_2_y"))

	// The temp file the write goes through must be renamed away, never
	// left behind next to the slot.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "device_id", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	deviceID, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "device_2_y", deviceID)
}

func TestFileStore_ReadSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device_id")
	cfg := &config.Config{Identity: &config.IdentityConfig{StorePath: path}}

	store := NewFileStore(cfg)
	require.NoError(t, store.Write("device_1_x"))

	reopened := NewFileStore(cfg)
	deviceID, err := reopened.Read()
	require.NoError(t, err)
	assert.Equal(t, "device_1_x", deviceID)
}
