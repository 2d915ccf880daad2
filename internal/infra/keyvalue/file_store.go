// Package keyvalue implements the durable local slot for the device
// identifier as a single file on disk. No library from the stack fits a
// one-key durable store; the filesystem already gives the atomic
// read / write-if-absent semantics the bootstrap needs.
package keyvalue

import (
	"os"
	"path/filepath"
	"strings"

	"privy/config"
	"privy/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultStorePath = "data/device_id"

const storeFileMode = 0o600

type fileStore struct {
	path string
}

// NewFileStore creates the file-backed device id store.
func NewFileStore(cfg *config.Config) service.DeviceIDStore {
	path := defaultStorePath
	if cfg.Identity != nil && cfg.Identity.StorePath != "" {
		path = cfg.Identity.StorePath
	}

	return &fileStore{path: path}
}

// Read returns the stored device id, or service.ErrDeviceIDNotFound when
// the slot file does not exist or is empty.
func (s *fileStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", service.ErrDeviceIDNotFound
		}

		return "", errors.Wrap(err, "failed to read device id slot")
	}

	deviceID := strings.TrimSpace(string(data))
	if deviceID == "" {
		return "", service.ErrDeviceIDNotFound
	}

	return deviceID, nil
}

// Write persists the device id. The parent directory is created on first
// write so a fresh installation does not need setup steps. The id goes
// through a temp file and a rename so a crash mid-write can never leave
// a torn slot; the slot either holds the old content or the new id.
func (s *fileStore) Write(deviceID string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "failed to create device id directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create device id temp file")
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, deviceID); err != nil {
		os.Remove(tmpPath)

		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)

		return errors.Wrap(err, "failed to move device id slot into place")
	}

	return nil
}

func writeAndClose(tmp *os.File, deviceID string) error {
	defer tmp.Close()

	if err := tmp.Chmod(storeFileMode); err != nil {
		return errors.Wrap(err, "failed to set device id slot mode")
	}

	if _, err := tmp.WriteString(deviceID + "\n"); err != nil {
		return errors.Wrap(err, "failed to write device id slot")
	}

	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync device id slot")
	}

	return nil
}
