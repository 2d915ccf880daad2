package postgres

import (
	"context"

	"privy/internal/domain/entity"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/domain/repository"
	"privy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// savedRestroomRepository implements the repository.SavedRestroomRepository interface.
type savedRestroomRepository struct {
	db *gorm.DB
}

// NewSavedRestroomRepository is the constructor for savedRestroomRepository.
func NewSavedRestroomRepository(db *gorm.DB) repository.SavedRestroomRepository {
	return &savedRestroomRepository{
		db: db,
	}
}

// CreateSavedRestroom persists a new save edge for a device.
// A concurrent double-save collides on the composite unique index and
// surfaces as ErrDuplicateSavedRestroom, which the toggle treats as success.
func (repo *savedRestroomRepository) CreateSavedRestroom(ctx context.Context, saved *entity.SavedRestroom) error {
	savedM := fromSavedRestroomDomain(saved)

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedRestroom
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestroomNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved restroom")
	}

	saved.ID = savedM.ID
	saved.CreatedAt = savedM.CreatedAt

	return nil
}

// FindSavedRestroom looks up the save edge between a device and a restroom.
func (repo *savedRestroomRepository) FindSavedRestroom(ctx context.Context, deviceID string, restroomID uuid.UUID) (*entity.SavedRestroom, error) {
	var savedM model.SavedRestroomModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND restroom_id = ?", deviceID, restroomID).
		First(&savedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedRestroomNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved restroom")
	}

	return toSavedRestroomDomain(&savedM), nil
}

// FindSavedRestroomsByDevice retrieves all save edges for a device, newest first.
func (repo *savedRestroomRepository) FindSavedRestroomsByDevice(ctx context.Context, deviceID string) ([]*entity.SavedRestroom, error) {
	var savedModels []*model.SavedRestroomModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order(listingOrder).
		Find(&savedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved restrooms by device")
	}

	savedRestrooms := make([]*entity.SavedRestroom, 0, len(savedModels))
	for _, savedM := range savedModels {
		savedRestrooms = append(savedRestrooms, toSavedRestroomDomain(savedM))
	}

	return savedRestrooms, nil
}

// DeleteSavedRestroom removes a save edge by its primary key.
func (repo *savedRestroomRepository) DeleteSavedRestroom(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedRestroomModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved restroom")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedRestroomNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSavedRestroomDomain converts a GORM SavedRestroomModel to a domain SavedRestroom entity.
func toSavedRestroomDomain(data *model.SavedRestroomModel) *entity.SavedRestroom {
	if data == nil {
		return nil
	}

	return &entity.SavedRestroom{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		RestroomID: data.RestroomID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromSavedRestroomDomain converts a domain SavedRestroom entity to a GORM SavedRestroomModel.
func fromSavedRestroomDomain(data *entity.SavedRestroom) *model.SavedRestroomModel {
	if data == nil {
		return nil
	}

	return &model.SavedRestroomModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		RestroomID: data.RestroomID,
		CreatedAt:  data.CreatedAt,
	}
}
