package postgres

import (
	"context"

	"privy/internal/domain/entity"
	domainerrors "privy/internal/domain/errors"
	"privy/internal/domain/repository"
	"privy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingOrder keeps every multi-row restroom query deterministic.
// The id tiebreak matters because created_at has only microsecond
// resolution and seeded fixtures collide on it.
const listingOrder = "created_at DESC, id DESC"

// restroomRepository implements the repository.RestroomRepository interface.
type restroomRepository struct {
	db *gorm.DB
}

// NewRestroomRepository is the constructor for restroomRepository.
func NewRestroomRepository(db *gorm.DB) repository.RestroomRepository {
	return &restroomRepository{
		db: db,
	}
}

// CreateRestroom persists a new restroom entry.
func (repo *restroomRepository) CreateRestroom(ctx context.Context, restroom *entity.Restroom) error {
	restroomM := fromRestroomDomain(restroom)

	if err := repo.db.WithContext(ctx).Create(restroomM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRestroomCreationFailed.WrapMessage("missing required restroom information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRestroomCreationFailed.WrapMessage("restroom fields out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restroom")
	}

	// Update the entity with generated values
	restroom.ID = restroomM.ID
	restroom.CreatedAt = restroomM.CreatedAt
	restroom.UpdatedAt = restroomM.UpdatedAt

	return nil
}

// FindRestroomByID retrieves a restroom by its unique ID.
func (repo *restroomRepository) FindRestroomByID(ctx context.Context, id uuid.UUID) (*entity.Restroom, error) {
	var restroomM model.RestroomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restroomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestroomNotFound
		}

		return nil, errors.Wrap(err, "failed to find restroom by ID")
	}

	return toRestroomDomain(&restroomM), nil
}

// FindAllRestrooms retrieves the full directory, newest first.
func (repo *restroomRepository) FindAllRestrooms(ctx context.Context) ([]*entity.Restroom, error) {
	var restroomModels []*model.RestroomModel

	if err := repo.db.WithContext(ctx).
		Order(listingOrder).
		Find(&restroomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restrooms")
	}

	return toRestroomDomainSlice(restroomModels), nil
}

// FindRestroomsWithinBound retrieves restrooms inside a geographic bounding box.
// This is a coarse prefilter; callers rank by exact haversine distance.
// orb stores points in lon/lat order, so index 0 is longitude.
func (repo *restroomRepository) FindRestroomsWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Restroom, error) {
	var restroomModels []*model.RestroomModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min[1], bound.Max[1]).
		Where("longitude BETWEEN ? AND ?", bound.Min[0], bound.Max[0]).
		Order(listingOrder).
		Find(&restroomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restrooms within bound")
	}

	return toRestroomDomainSlice(restroomModels), nil
}

// FindRestroomsByCreator retrieves restrooms added by a specific device, newest first.
func (repo *restroomRepository) FindRestroomsByCreator(ctx context.Context, deviceID string) ([]*entity.Restroom, error) {
	var restroomModels []*model.RestroomModel

	if err := repo.db.WithContext(ctx).
		Where("creator_device_id = ?", deviceID).
		Order(listingOrder).
		Find(&restroomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restrooms by creator")
	}

	return toRestroomDomainSlice(restroomModels), nil
}

// FindRestroomsByIDs retrieves the restrooms whose IDs appear in the given set.
// IDs with no matching row are silently skipped.
func (repo *restroomRepository) FindRestroomsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Restroom, error) {
	if len(ids) == 0 {
		return []*entity.Restroom{}, nil
	}

	var restroomModels []*model.RestroomModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order(listingOrder).
		Find(&restroomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restrooms by IDs")
	}

	return toRestroomDomainSlice(restroomModels), nil
}

// UpdateRestroomRating overwrites the denormalized rating aggregate.
func (repo *restroomRepository) UpdateRestroomRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestroomModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": reviewCount,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restroom rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestroomNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestroomDomain converts a GORM RestroomModel to a domain Restroom entity.
func toRestroomDomain(data *model.RestroomModel) *entity.Restroom {
	if data == nil {
		return nil
	}

	return &entity.Restroom{
		ID:              data.ID,
		Name:            data.Name,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		IsGendered:      data.IsGendered,
		IsAccessible:    data.IsAccessible,
		IsPublic:        data.IsPublic,
		BathroomCode:    data.BathroomCode,
		Rating:          data.Rating,
		ReviewCount:     data.ReviewCount,
		CreatorDeviceID: data.CreatorDeviceID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toRestroomDomainSlice(models []*model.RestroomModel) []*entity.Restroom {
	restrooms := make([]*entity.Restroom, 0, len(models))
	for _, restroomM := range models {
		restrooms = append(restrooms, toRestroomDomain(restroomM))
	}

	return restrooms
}

// fromRestroomDomain converts a domain Restroom entity to a GORM RestroomModel.
func fromRestroomDomain(data *entity.Restroom) *model.RestroomModel {
	if data == nil {
		return nil
	}

	return &model.RestroomModel{
		ID:              data.ID,
		Name:            data.Name,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		IsGendered:      data.IsGendered,
		IsAccessible:    data.IsAccessible,
		IsPublic:        data.IsPublic,
		BathroomCode:    data.BathroomCode,
		Rating:          data.Rating,
		ReviewCount:     data.ReviewCount,
		CreatorDeviceID: data.CreatorDeviceID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
