// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"privy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for saved-restroom persistence.
var (
	// ErrSavedRestroomNotFound is returned when a bookmark is not found.
	ErrSavedRestroomNotFound = errors.New("saved restroom not found")
	// ErrDuplicateSavedRestroom is returned when a bookmark already exists for
	// the (device, restroom) pair. The save toggle treats this as already-saved.
	ErrDuplicateSavedRestroom = errors.New("restroom already saved")
)

// SavedRestroomRepository defines the interface for bookmark database operations.
type SavedRestroomRepository interface {
	// CreateSavedRestroom persists a new bookmark. Returns
	// ErrDuplicateSavedRestroom when the pair is already saved.
	CreateSavedRestroom(ctx context.Context, saved *entity.SavedRestroom) error

	// FindSavedRestroom retrieves the bookmark for a (device, restroom) pair.
	FindSavedRestroom(ctx context.Context, deviceID string, restroomID uuid.UUID) (*entity.SavedRestroom, error)

	// FindSavedRestroomsByDevice retrieves all bookmarks for a device, ordered
	// by created_at descending with id as the tie-breaker.
	FindSavedRestroomsByDevice(ctx context.Context, deviceID string) ([]*entity.SavedRestroom, error)

	// DeleteSavedRestroom removes a bookmark by its ID. Returns
	// ErrSavedRestroomNotFound when the bookmark is already gone.
	DeleteSavedRestroom(ctx context.Context, id uuid.UUID) error
}
