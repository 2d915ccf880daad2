package postgres

import (
	"context"

	"privy/internal/domain/entity"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/domain/repository"
	"privy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceProfileRepository implements the repository.DeviceProfileRepository interface.
type deviceProfileRepository struct {
	db *gorm.DB
}

// NewDeviceProfileRepository is the constructor for deviceProfileRepository.
func NewDeviceProfileRepository(db *gorm.DB) repository.DeviceProfileRepository {
	return &deviceProfileRepository{
		db: db,
	}
}

// CreateProfile persists a new device profile row.
// A unique violation on the device ID surfaces as ErrDuplicateProfile so
// that the identity bootstrap can treat a replayed insert as success.
func (repo *deviceProfileRepository) CreateProfile(ctx context.Context, profile *entity.DeviceProfile) error {
	profileM := fromDeviceProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByDeviceID retrieves the profile owned by a device identifier.
func (repo *deviceProfileRepository) FindProfileByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceProfile, error) {
	var profileM model.DeviceProfileModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by device ID")
	}

	return toDeviceProfileDomain(&profileM), nil
}

// UpdateProfile overwrites the mutable profile fields for a device.
func (repo *deviceProfileRepository) UpdateProfile(ctx context.Context, profile *entity.DeviceProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceProfileModel{}).
		Where("device_id = ?", profile.DeviceID).
		Updates(map[string]any{
			"name":          profile.Name,
			"location":      profile.Location,
			"profile_image": profile.ProfileImage,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceProfileDomain converts a GORM DeviceProfileModel to a domain DeviceProfile entity.
func toDeviceProfileDomain(data *model.DeviceProfileModel) *entity.DeviceProfile {
	if data == nil {
		return nil
	}

	return &entity.DeviceProfile{
		DeviceID:     data.DeviceID,
		Name:         data.Name,
		Location:     data.Location,
		ProfileImage: data.ProfileImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeviceProfileDomain converts a domain DeviceProfile entity to a GORM DeviceProfileModel.
func fromDeviceProfileDomain(data *entity.DeviceProfile) *model.DeviceProfileModel {
	if data == nil {
		return nil
	}

	return &model.DeviceProfileModel{
		DeviceID:     data.DeviceID,
		Name:         data.Name,
		Location:     data.Location,
		ProfileImage: data.ProfileImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
