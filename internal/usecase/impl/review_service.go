package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "privy/internal/delivery/context"
	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	"privy/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	restroomRepo repository.RestroomRepository
	profileRepo  repository.DeviceProfileRepository
	identityUC   usecase.IdentityUsecase
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	restroomRepo repository.RestroomRepository,
	profileRepo repository.DeviceProfileRepository,
	identityUC usecase.IdentityUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   reviewRepo,
		restroomRepo: restroomRepo,
		profileRepo:  profileRepo,
		identityUC:   identityUC,
		publisher:    publisher,
		logger:       logger,
	}
}

// SubmitReview records a review and recomputes the restroom's
// denormalized rating aggregate from the full review set.
func (s *reviewService) SubmitReview(ctx context.Context, restroomID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, ErrInvalidRating
	}

	restroom, err := s.restroomRepo.FindRestroomByID(ctx, restroomID)
	if err != nil {
		if errors.Is(err, repository.ErrRestroomNotFound) {
			return nil, ErrRestroomNotFound
		}

		return nil, fmt.Errorf("failed to find restroom: %w", err)
	}

	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		RestroomID: restroomID,
		Rating:     input.Rating,
		Text:       input.Text,
		DeviceID:   identity.ID,
		DeviceName: s.reviewerName(ctx, identity.ID),
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	// Recompute the aggregate from all stored reviews rather than
	// adjusting incrementally, so a lost seed review heals here.
	reviews, err := s.reviewRepo.FindReviewsByRestroom(ctx, restroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	rating := entity.AggregateRating(reviews)
	if err := s.restroomRepo.UpdateRestroomRating(ctx, restroomID, rating.Average, rating.Count); err != nil {
		return nil, fmt.Errorf("failed to update restroom rating: %w", err)
	}

	s.publishEvent(ctx, &service.RestroomEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  service.EventReviewSubmitted,
		RestroomID: restroomID.String(),
		DeviceID:   identity.ID,
		Name:       restroom.Name,
		Latitude:   restroom.Latitude,
		Longitude:  restroom.Longitude,
		Rating:     input.Rating,
	})

	return review, nil
}

// ListReviews returns all reviews for a restroom, newest first, together
// with the aggregate rating.
func (s *reviewService) ListReviews(ctx context.Context, restroomID uuid.UUID) (*usecase.ReviewFeed, error) {
	if _, err := s.restroomRepo.FindRestroomByID(ctx, restroomID); err != nil {
		if errors.Is(err, repository.ErrRestroomNotFound) {
			return nil, ErrRestroomNotFound
		}

		return nil, fmt.Errorf("failed to find restroom: %w", err)
	}

	reviews, err := s.reviewRepo.FindReviewsByRestroom(ctx, restroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return &usecase.ReviewFeed{
		Reviews: reviews,
		Rating:  entity.AggregateRating(reviews),
	}, nil
}

// reviewerName resolves the reviewer's public name, falling back to the
// anonymous placeholder.
func (s *reviewService) reviewerName(ctx context.Context, deviceID string) string {
	profile, err := s.profileRepo.FindProfileByDeviceID(ctx, deviceID)
	if err != nil {
		return entity.AnonymousDisplayName
	}

	return profile.DisplayName()
}

// publishEvent publishes a review event, best effort.
func (s *reviewService) publishEvent(ctx context.Context, event *service.RestroomEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishRestroomEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish review event",
			slog.String("event_type", event.EventType),
			slog.String("restroom_id", event.RestroomID),
			slog.String("error", err.Error()),
		)
	}
}
