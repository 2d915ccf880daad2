package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SavedUsecase defines the save/bookmark toggle use case.
type SavedUsecase interface {
	// ToggleSave flips the saved state of a restroom for the calling
	// device and reports the resulting state. The toggle is idempotent:
	// saving an already-saved restroom or unsaving an absent one is not
	// an error.
	ToggleSave(ctx context.Context, restroomID uuid.UUID) (saved bool, err error)
}
