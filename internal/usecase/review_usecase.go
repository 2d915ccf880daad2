package usecase

import (
	"context"

	"privy/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput represents the input for reviewing a restroom.
type SubmitReviewInput struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewFeed bundles a restroom's reviews with the recomputed aggregate.
type ReviewFeed struct {
	Reviews []*entity.Review `json:"reviews"`
	Rating  entity.Rating    `json:"rating"`
}

// ReviewUsecase defines the review submission and feed use cases.
type ReviewUsecase interface {
	// SubmitReview records a review for a restroom and recomputes the
	// restroom's denormalized rating aggregate.
	SubmitReview(ctx context.Context, restroomID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)

	// ListReviews returns all reviews for a restroom, newest first,
	// together with the aggregate rating.
	ListReviews(ctx context.Context, restroomID uuid.UUID) (*ReviewFeed, error)
}
