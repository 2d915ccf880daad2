// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"privy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrRestroomNotFound is returned when a restroom is not found.
var ErrRestroomNotFound = errors.New("restroom not found")

// RestroomRepository defines the interface for restroom-related database operations.
type RestroomRepository interface {
	// CreateRestroom persists a newly submitted restroom.
	CreateRestroom(ctx context.Context, restroom *entity.Restroom) error

	// FindRestroomByID retrieves a restroom by its unique ID.
	FindRestroomByID(ctx context.Context, id uuid.UUID) (*entity.Restroom, error)

	// FindAllRestrooms retrieves every restroom, newest first.
	FindAllRestrooms(ctx context.Context) ([]*entity.Restroom, error)

	// FindRestroomsWithinBound retrieves restrooms whose position falls inside
	// the bounding box. Candidates for exact distance ranking.
	FindRestroomsWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Restroom, error)

	// FindRestroomsByCreator retrieves restrooms submitted by a device,
	// ordered by created_at descending with id as the tie-breaker so the
	// listing is deterministic across re-fetches.
	FindRestroomsByCreator(ctx context.Context, deviceID string) ([]*entity.Restroom, error)

	// FindRestroomsByIDs retrieves the restrooms with the given ids, ordered
	// the same way as FindRestroomsByCreator. Missing ids are skipped.
	FindRestroomsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Restroom, error)

	// UpdateRestroomRating overwrites the denormalized rating aggregate
	// after a review submission recomputes it.
	UpdateRestroomRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error
}
