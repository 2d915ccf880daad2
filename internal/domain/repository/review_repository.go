// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"privy/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review-related database operations.
// Reviews are immutable once created; there is no update or delete.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByRestroom retrieves all reviews for a restroom, newest first.
	// The aggregate rating is recomputed from this set on every read; there is
	// no server-maintained running aggregate.
	FindReviewsByRestroom(ctx context.Context, restroomID uuid.UUID) ([]*entity.Review, error)
}
