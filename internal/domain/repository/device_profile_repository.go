// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"privy/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device profile persistence.
var (
	// ErrProfileNotFound is returned when a device profile is not found.
	ErrProfileNotFound = errors.New("device profile not found")
	// ErrDuplicateProfile is returned when a profile already exists for the device id.
	// Identity bootstrap treats this as success to stay idempotent under races.
	ErrDuplicateProfile = errors.New("device profile already exists")
)

// DeviceProfileRepository defines the interface for device-profile database operations.
type DeviceProfileRepository interface {
	// CreateProfile persists a new (possibly empty) profile row for a device id.
	// Returns ErrDuplicateProfile when a row for the id already exists.
	CreateProfile(ctx context.Context, profile *entity.DeviceProfile) error

	// FindProfileByDeviceID retrieves the profile for a device id.
	// Returns ErrProfileNotFound when no row exists; callers treat that as a
	// normal onboarding state, not a failure.
	FindProfileByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceProfile, error)

	// UpdateProfile updates an existing profile row.
	UpdateProfile(ctx context.Context, profile *entity.DeviceProfile) error
}
