package impl

import (
	"context"
	"errors"
	"fmt"

	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	"privy/internal/usecase"

	"github.com/google/uuid"
)

type savedService struct {
	savedRepo  repository.SavedRestroomRepository
	identityUC usecase.IdentityUsecase
}

// NewSavedService creates a new saved-restroom service instance
func NewSavedService(
	savedRepo repository.SavedRestroomRepository,
	identityUC usecase.IdentityUsecase,
) usecase.SavedUsecase {
	return &savedService{
		savedRepo:  savedRepo,
		identityUC: identityUC,
	}
}

// ToggleSave flips the saved state of a restroom for the calling device.
// Races with another toggle resolve to the state the loser was trying to
// reach, so replays are harmless.
func (s *savedService) ToggleSave(ctx context.Context, restroomID uuid.UUID) (bool, error) {
	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return false, err
	}

	saved, err := s.savedRepo.FindSavedRestroom(ctx, identity.ID, restroomID)
	switch {
	case err == nil:
		return false, s.unsave(ctx, saved.ID)
	case errors.Is(err, repository.ErrSavedRestroomNotFound):
		return true, s.save(ctx, identity.ID, restroomID)
	default:
		return false, fmt.Errorf("failed to find saved restroom: %w", err)
	}
}

// save creates the save edge. A duplicate means a concurrent toggle
// already saved it, which is the state we wanted.
func (s *savedService) save(ctx context.Context, deviceID string, restroomID uuid.UUID) error {
	saved := &entity.SavedRestroom{
		DeviceID:   deviceID,
		RestroomID: restroomID,
	}

	if err := s.savedRepo.CreateSavedRestroom(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicateSavedRestroom) {
			return nil
		}
		if errors.Is(err, repository.ErrRestroomNotFound) {
			return ErrRestroomNotFound
		}

		return fmt.Errorf("failed to create saved restroom: %w", err)
	}

	return nil
}

// unsave deletes the save edge. A missing row means a concurrent toggle
// already removed it.
func (s *savedService) unsave(ctx context.Context, id uuid.UUID) error {
	if err := s.savedRepo.DeleteSavedRestroom(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSavedRestroomNotFound) {
			return nil
		}

		return fmt.Errorf("failed to delete saved restroom: %w", err)
	}

	return nil
}
