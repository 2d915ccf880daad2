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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestroomNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrReviewCreationFailed.WrapMessage("missing required review information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindReviewsByRestroom retrieves all reviews for a restroom, newest first.
func (repo *reviewRepository) FindReviewsByRestroom(ctx context.Context, restroomID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("restroom_id = ?", restroomID).
		Order(listingOrder).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by restroom")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		RestroomID: data.RestroomID,
		Rating:     data.Rating,
		Text:       data.Text,
		DeviceID:   data.DeviceID,
		DeviceName: data.DeviceName,
		CreatedAt:  data.CreatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		RestroomID: data.RestroomID,
		Rating:     data.Rating,
		Text:       data.Text,
		DeviceID:   data.DeviceID,
		DeviceName: data.DeviceName,
		CreatedAt:  data.CreatedAt,
	}
}
