package impl

import (
	"context"
	"errors"
	"testing"

	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	mockRepo "privy/internal/mocks/repository"
	mockUsecase "privy/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavedService_ToggleSave_Saves(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(nil, repository.ErrSavedRestroomNotFound)
	mockSavedRepo.EXPECT().
		CreateSavedRestroom(ctx, mock.AnythingOfType("*entity.SavedRestroom")).
		Return(nil)

	saved, err := svc.ToggleSave(ctx, restroomID)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSavedService_ToggleSave_Unsaves(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	existing := &entity.SavedRestroom{ID: uuid.New(), DeviceID: identity.ID, RestroomID: restroomID}

	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(existing, nil)
	mockSavedRepo.EXPECT().DeleteSavedRestroom(ctx, existing.ID).Return(nil)

	saved, err := svc.ToggleSave(ctx, restroomID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSavedService_ToggleSave_DuplicateCreateIsSaved(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	// A concurrent toggle saved it between the lookup and the insert.
	// The state the caller wanted is the state we ended up with.
	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(nil, repository.ErrSavedRestroomNotFound)
	mockSavedRepo.EXPECT().
		CreateSavedRestroom(ctx, mock.AnythingOfType("*entity.SavedRestroom")).
		Return(repository.ErrDuplicateSavedRestroom)

	saved, err := svc.ToggleSave(ctx, restroomID)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSavedService_ToggleSave_DeleteAbsentIsUnsaved(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	existing := &entity.SavedRestroom{ID: uuid.New(), DeviceID: identity.ID, RestroomID: restroomID}

	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(existing, nil)
	mockSavedRepo.EXPECT().
		DeleteSavedRestroom(ctx, existing.ID).
		Return(repository.ErrSavedRestroomNotFound)

	saved, err := svc.ToggleSave(ctx, restroomID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSavedService_ToggleSave_RestroomMissing(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(nil, repository.ErrSavedRestroomNotFound)
	mockSavedRepo.EXPECT().
		CreateSavedRestroom(ctx, mock.AnythingOfType("*entity.SavedRestroom")).
		Return(repository.ErrRestroomNotFound)

	_, err := svc.ToggleSave(ctx, restroomID)
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}

func TestSavedService_ToggleSave_LookupFailure(t *testing.T) {
	mockSavedRepo := mockRepo.NewMockSavedRestroomRepository(t)
	mockIdentityUC := mockUsecase.NewMockIdentityUsecase(t)
	svc := NewSavedService(mockSavedRepo, mockIdentityUC)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	mockIdentityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mockSavedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(nil, errors.New("connection reset"))

	_, err := svc.ToggleSave(ctx, restroomID)
	assert.Error(t, err)
}
