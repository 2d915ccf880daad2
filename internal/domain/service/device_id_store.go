// Package service defines interfaces for infrastructure services the
// application layer depends on.
package service

import "github.com/pkg/errors"

// ErrDeviceIDNotFound is returned when no device id has been stored yet.
// First launch hits this path; it is an expected state, not a failure.
var ErrDeviceIDNotFound = errors.New("device id not stored")

// DeviceIDStore is the durable local key-value slot holding the device
// identifier. It is read once at bootstrap and written at most once per
// installation lifetime.
type DeviceIDStore interface {
	// Read returns the stored device id, or ErrDeviceIDNotFound when the
	// slot is empty. Any other error means the store itself is unusable and
	// the caller should fall back to a non-persisted identity.
	Read() (string, error)

	// Write persists the device id to the durable slot.
	Write(deviceID string) error
}
