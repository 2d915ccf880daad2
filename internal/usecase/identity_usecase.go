// Package usecase defines the application service interfaces and their
// input/output types. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"privy/internal/domain/entity"
)

// UpdateProfileInput represents the input for updating the device profile.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name         *string `json:"name,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// OnboardingStatus reports whether the device finished onboarding and
// which profile fields are still missing.
type OnboardingStatus struct {
	Complete         bool `json:"complete"`
	HasName          bool `json:"has_name"`
	HasProfileImage  bool `json:"has_profile_image"`
	ProfilePersisted bool `json:"profile_persisted"`
}

// IdentityUsecase defines the anonymous device identity use cases.
// There is no login: the durable device identifier is the whole identity.
type IdentityUsecase interface {
	// Bootstrap returns the stable device identity, creating and persisting
	// a fresh identifier plus its placeholder profile on first call.
	// It never fails outright: when durable storage is unavailable it
	// returns a session-scoped identity with Persisted set to false.
	Bootstrap(ctx context.Context) (*entity.DeviceIdentity, error)

	// GetProfile returns the profile for the bootstrapped device.
	GetProfile(ctx context.Context) (*entity.DeviceProfile, error)

	// UpdateProfile applies a partial update to the device profile.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.DeviceProfile, error)

	// SaveProfileImage stores the image bytes and records the resulting
	// URL on the profile.
	SaveProfileImage(ctx context.Context, fileName, contentType string, data []byte) (*entity.DeviceProfile, error)

	// OnboardingStatus reports whether the profile has both a name and a
	// profile image.
	OnboardingStatus(ctx context.Context) (*OnboardingStatus, error)
}
