// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path"
	"strings"
	"sync"
	"time"

	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	"privy/internal/usecase"
)

// ErrProfileNotFound is returned when the device has no stored profile
var ErrProfileNotFound = errors.New("profile not found")

const (
	deviceIDPrefix      = "device"
	deviceIDSuffixLen   = 13
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	profileImagePathFmt = "profiles/%s/%s"
)

type identityService struct {
	store       service.DeviceIDStore
	profileRepo repository.DeviceProfileRepository
	txManager   repository.TransactionManager
	media       service.MediaStorage
	logger      *slog.Logger

	mu       sync.Mutex
	identity *entity.DeviceIdentity
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(
	store service.DeviceIDStore,
	profileRepo repository.DeviceProfileRepository,
	txManager repository.TransactionManager,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		store:       store,
		profileRepo: profileRepo,
		txManager:   txManager,
		media:       media,
		logger:      logger,
	}
}

// Bootstrap resolves the stable device identity. A stored id is returned
// as-is without touching the database; only the minting paths persist the
// fresh identifier and seed its placeholder profile. Later calls return
// the cached identity.
func (s *identityService) Bootstrap(ctx context.Context) (*entity.DeviceIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity != nil {
		return s.identity, nil
	}

	identity := &entity.DeviceIdentity{Persisted: true}

	deviceID, err := s.store.Read()
	switch {
	case err == nil:
		// The stored id is the whole identity; its profile row was seeded
		// when the id was minted, so this path makes no remote call.
		identity.ID = deviceID
		s.identity = identity

		return identity, nil
	case errors.Is(err, service.ErrDeviceIDNotFound):
		identity.ID = newDeviceID()
		if writeErr := s.store.Write(identity.ID); writeErr != nil {
			// A failed write degrades to a session-scoped identity. The
			// device keeps working; it just mints a new identity next run.
			s.logger.Warn("device ID write failed, using session-scoped identity",
				slog.String("error", writeErr.Error()),
			)
			identity.Persisted = false
		}
	default:
		s.logger.Warn("device ID read failed, using session-scoped identity",
			slog.String("error", err.Error()),
		)
		identity.ID = newDeviceID()
		identity.Persisted = false
	}

	if err := s.ensureProfile(ctx, identity.ID); err != nil {
		return nil, fmt.Errorf("failed to ensure device profile: %w", err)
	}

	s.identity = identity

	return identity, nil
}

// ensureProfile guarantees a profile row exists for the device. A
// duplicate insert means another bootstrap already won the race, which
// counts as success.
func (s *identityService) ensureProfile(ctx context.Context, deviceID string) error {
	profile := &entity.DeviceProfile{DeviceID: deviceID}

	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil
		}

		return err
	}

	return nil
}

// GetProfile returns the profile for the bootstrapped device.
func (s *identityService) GetProfile(ctx context.Context) (*entity.DeviceProfile, error) {
	identity, err := s.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindProfileByDeviceID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies a partial update to the device profile inside a
// transaction so a concurrent image upload cannot clobber the edit.
func (s *identityService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.DeviceProfile, error) {
	identity, err := s.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.DeviceProfile

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.NewDeviceProfileRepository()

		profile, err := profileRepo.FindProfileByDeviceID(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return ErrProfileNotFound
			}

			return fmt.Errorf("failed to find profile: %w", err)
		}

		applyProfileUpdates(profile, input)

		if err := profileRepo.UpdateProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyProfileUpdates applies the update input to a profile
func applyProfileUpdates(profile *entity.DeviceProfile, input *usecase.UpdateProfileInput) {
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.ProfileImage != nil {
		profile.ProfileImage = *input.ProfileImage
	}
	profile.UpdatedAt = time.Now()
}

// SaveProfileImage stores the image bytes under the device's namespace and
// records the resulting URL on the profile.
func (s *identityService) SaveProfileImage(ctx context.Context, fileName, contentType string, data []byte) (*entity.DeviceProfile, error) {
	identity, err := s.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(profileImagePathFmt, identity.ID, path.Base(fileName))

	imageURL, err := s.media.SaveProfileImage(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile image: %w", err)
	}

	return s.UpdateProfile(ctx, &usecase.UpdateProfileInput{ProfileImage: &imageURL})
}

// OnboardingStatus reports whether the profile has both a name and an image.
func (s *identityService) OnboardingStatus(ctx context.Context) (*usecase.OnboardingStatus, error) {
	identity, err := s.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindProfileByDeviceID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.OnboardingStatus{ProfilePersisted: identity.Persisted}, nil
		}

		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &usecase.OnboardingStatus{
		Complete:         profile.OnboardingComplete(),
		HasName:          strings.TrimSpace(profile.Name) != "",
		HasProfileImage:  profile.ProfileImage != "",
		ProfilePersisted: identity.Persisted,
	}, nil
}

// newDeviceID mints a device identifier from the bootstrap timestamp and
// a random base36 suffix, e.g. "device_1756425600000_k3j9x2mwq81fz".
func newDeviceID() string {
	suffix := make([]byte, deviceIDSuffixLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}

	return fmt.Sprintf("%s_%d_%s", deviceIDPrefix, time.Now().UnixMilli(), suffix)
}
