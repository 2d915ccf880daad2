package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	mockRepo "privy/internal/mocks/repository"
	mockService "privy/internal/mocks/service"
	"privy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestIdentityService_Bootstrap_StoredID(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()

	mockStore.EXPECT().Read().Return("device_1756425600000_k3j9x2mwq81fz", nil).Once()

	identity, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device_1756425600000_k3j9x2mwq81fz", identity.ID)
	assert.True(t, identity.Persisted)

	// A stored id is returned as-is: no profile insert, no database
	// round trip at all on this path.
	mockProfileRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)

	// The second call serves the cached identity without touching the store.
	again, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Same(t, identity, again)
}

func TestIdentityService_Bootstrap_FirstLaunch(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()

	var written string
	mockStore.EXPECT().Read().Return("", service.ErrDeviceIDNotFound)
	mockStore.EXPECT().
		Write(mock.AnythingOfType("string")).
		Run(func(deviceID string) { written = deviceID }).
		Return(nil)
	mockProfileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(nil)

	identity, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, identity.Persisted)
	assert.Equal(t, written, identity.ID)
	assert.True(t, strings.HasPrefix(identity.ID, "device_"))
}

func TestIdentityService_Bootstrap_DuplicateProfileIsSuccess(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()

	// Another process bootstrapped the same installation first; its
	// profile row already winning the race counts as success.
	mockStore.EXPECT().Read().Return("", service.ErrDeviceIDNotFound)
	mockStore.EXPECT().Write(mock.AnythingOfType("string")).Return(nil)
	mockProfileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(repository.ErrDuplicateProfile)

	identity, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, identity.Persisted)
}

func TestIdentityService_Bootstrap_WriteFailureDegrades(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()

	mockStore.EXPECT().Read().Return("", service.ErrDeviceIDNotFound)
	mockStore.EXPECT().Write(mock.AnythingOfType("string")).Return(errors.New("disk full"))
	mockProfileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(nil)

	identity, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, identity.Persisted)
	assert.NotEmpty(t, identity.ID)
}

func TestIdentityService_Bootstrap_ReadFailureDegrades(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()

	mockStore.EXPECT().Read().Return("", errors.New("store corrupted"))
	mockProfileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(nil)

	identity, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, identity.Persisted)
	assert.NotEmpty(t, identity.ID)
}

func TestIdentityService_GetProfile(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()
	deviceID := "device_1756425600000_k3j9x2mwq81fz"
	expected := &entity.DeviceProfile{DeviceID: deviceID, Name: "Sam"}

	mockStore.EXPECT().Read().Return(deviceID, nil)
	mockProfileRepo.EXPECT().FindProfileByDeviceID(ctx, deviceID).Return(expected, nil)

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestIdentityService_GetProfile_NotFound(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()
	deviceID := "device_1756425600000_k3j9x2mwq81fz"

	mockStore.EXPECT().Read().Return(deviceID, nil)
	mockProfileRepo.EXPECT().
		FindProfileByDeviceID(ctx, deviceID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := svc.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()
	deviceID := "device_1756425600000_k3j9x2mwq81fz"

	mockStore.EXPECT().Read().Return(deviceID, nil)

	txProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	txProfileRepo.EXPECT().
		FindProfileByDeviceID(ctx, deviceID).
		Return(&entity.DeviceProfile{DeviceID: deviceID}, nil)
	txProfileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceProfileRepository().Return(txProfileRepo)

	mockTx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	name := "  Sam  "
	location := "San Francisco"
	profile, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		Name:     &name,
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
	assert.Equal(t, "San Francisco", profile.Location)
}

func TestIdentityService_SaveProfileImage(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()
	deviceID := "device_1756425600000_k3j9x2mwq81fz"
	imageURL := "https://cdn.example.com/profiles/avatar.png"
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	mockStore.EXPECT().Read().Return(deviceID, nil)
	mockMedia.EXPECT().
		SaveProfileImage(ctx, "profiles/"+deviceID+"/avatar.png", "image/png", data).
		Return(imageURL, nil)

	txProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	txProfileRepo.EXPECT().
		FindProfileByDeviceID(ctx, deviceID).
		Return(&entity.DeviceProfile{DeviceID: deviceID}, nil)
	txProfileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.DeviceProfile")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceProfileRepository().Return(txProfileRepo)

	mockTx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	// The path component is stripped so the caller cannot escape the
	// device's namespace.
	profile, err := svc.SaveProfileImage(ctx, "../../avatar.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, imageURL, profile.ProfileImage)
}

func TestIdentityService_OnboardingStatus(t *testing.T) {
	mockStore := mockService.NewMockDeviceIDStore(t)
	mockProfileRepo := mockRepo.NewMockDeviceProfileRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMedia := mockService.NewMockMediaStorage(t)
	svc := NewIdentityService(mockStore, mockProfileRepo, mockTx, mockMedia, newTestLogger())

	ctx := context.Background()
	deviceID := "device_1756425600000_k3j9x2mwq81fz"

	mockStore.EXPECT().Read().Return(deviceID, nil)
	mockProfileRepo.EXPECT().
		FindProfileByDeviceID(ctx, deviceID).
		Return(&entity.DeviceProfile{DeviceID: deviceID, Name: "Sam"}, nil)

	status, err := svc.OnboardingStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Complete)
	assert.True(t, status.HasName)
	assert.False(t, status.HasProfileImage)
	assert.True(t, status.ProfilePersisted)
}
