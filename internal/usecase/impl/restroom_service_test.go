package impl

import (
	"context"
	"errors"
	"testing"

	"privy/config"
	"privy/internal/domain/entity"
	"privy/internal/domain/geo"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	mockRepo "privy/internal/mocks/repository"
	mockService "privy/internal/mocks/service"
	mockUsecase "privy/internal/mocks/usecase"
	"privy/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type restroomServiceMocks struct {
	restroomRepo *mockRepo.MockRestroomRepository
	reviewRepo   *mockRepo.MockReviewRepository
	savedRepo    *mockRepo.MockSavedRestroomRepository
	profileRepo  *mockRepo.MockDeviceProfileRepository
	identityUC   *mockUsecase.MockIdentityUsecase
	qrService    *mockService.MockQRCodeService
	publisher    *mockService.MockEventPublisher
}

func newRestroomService(t *testing.T, cfg *config.Config) (usecase.RestroomUsecase, *restroomServiceMocks) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	mocks := &restroomServiceMocks{
		restroomRepo: mockRepo.NewMockRestroomRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		savedRepo:    mockRepo.NewMockSavedRestroomRepository(t),
		profileRepo:  mockRepo.NewMockDeviceProfileRepository(t),
		identityUC:   mockUsecase.NewMockIdentityUsecase(t),
		qrService:    mockService.NewMockQRCodeService(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	svc := NewRestroomService(
		mocks.restroomRepo,
		mocks.reviewRepo,
		mocks.savedRepo,
		mocks.profileRepo,
		mocks.identityUC,
		mocks.qrService,
		mocks.publisher,
		cfg,
		newTestLogger(),
	)

	return svc, mocks
}

func TestRestroomService_ListRestrooms(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restrooms := []*entity.Restroom{
		{ID: uuid.New(), Name: "Salesforce Floor 1", Latitude: 37.79, Longitude: -122.39},
		{ID: uuid.New(), Name: "Ferry Building", Latitude: 37.7955, Longitude: -122.3937},
	}

	mocks.restroomRepo.EXPECT().FindAllRestrooms(ctx).Return(restrooms, nil)

	listings, err := svc.ListRestrooms(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, restrooms[0], listings[0].Restroom)
	assert.False(t, listings[0].Distance.Available)
}

func TestRestroomService_ListRestrooms_WithOrigin(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	origin := &geo.Coordinates{Lat: 37.79, Lon: -122.39}
	restrooms := []*entity.Restroom{
		{ID: uuid.New(), Name: "Salesforce Floor 1", Latitude: 37.79, Longitude: -122.39},
	}

	mocks.restroomRepo.EXPECT().FindAllRestrooms(ctx).Return(restrooms, nil)

	listings, err := svc.ListRestrooms(ctx, origin)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.True(t, listings[0].Distance.Available)
	assert.InDelta(t, 0, listings[0].Distance.Miles, 1e-9)
}

func TestRestroomService_Nearby_RanksByDistance(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	origin := geo.Coordinates{Lat: 37.4275, Lon: -122.1697}

	near := &entity.Restroom{ID: uuid.New(), Name: "near", Latitude: origin.Lat + 0.005, Longitude: origin.Lon}
	mid := &entity.Restroom{ID: uuid.New(), Name: "mid", Latitude: origin.Lat + 0.02, Longitude: origin.Lon}
	far := &entity.Restroom{ID: uuid.New(), Name: "far", Latitude: origin.Lat + 0.1, Longitude: origin.Lon}

	// The bound prefilter may return corner candidates past the radius;
	// the exact distance pass must drop them.
	mocks.restroomRepo.EXPECT().
		FindRestroomsWithinBound(ctx, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Restroom{mid, far, near}, nil)

	listings, err := svc.Nearby(ctx, origin, 2)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "near", listings[0].Restroom.Name)
	assert.Equal(t, "mid", listings[1].Restroom.Name)
	assert.Less(t, listings[0].Distance.Miles, listings[1].Distance.Miles)
}

func TestRestroomService_Nearby_InvalidOrigin(t *testing.T) {
	svc, _ := newRestroomService(t, nil)

	_, err := svc.Nearby(context.Background(), geo.Coordinates{Lat: 91, Lon: 0}, 2)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestRestroomService_Nearby_DefaultAndClampedRadius(t *testing.T) {
	cfg := &config.Config{
		Nearby: &config.NearbyConfig{
			DefaultRadiusMiles: 2,
			MaxRadiusMiles:     25,
			MaxResults:         100,
		},
	}
	svc, mocks := newRestroomService(t, cfg)

	ctx := context.Background()
	origin := geo.Coordinates{Lat: 37.4275, Lon: -122.1697}

	var bounds []orb.Bound
	mocks.restroomRepo.EXPECT().
		FindRestroomsWithinBound(ctx, mock.AnythingOfType("orb.Bound")).
		Run(func(_ context.Context, bound orb.Bound) { bounds = append(bounds, bound) }).
		Return(nil, nil)

	_, err := svc.Nearby(ctx, origin, 0)
	require.NoError(t, err)

	_, err = svc.Nearby(ctx, origin, 500)
	require.NoError(t, err)

	require.Len(t, bounds, 2)
	// A 500 mile request clamps to 25, so its bound is wider than the
	// 2 mile default but far narrower than 500 miles would produce.
	defaultSpan := bounds[0].Max[1] - bounds[0].Min[1]
	clampedSpan := bounds[1].Max[1] - bounds[1].Min[1]
	assert.Greater(t, clampedSpan, defaultSpan)
	assert.Less(t, clampedSpan, defaultSpan*20)
}

func TestRestroomService_Nearby_CapsResults(t *testing.T) {
	cfg := &config.Config{
		Nearby: &config.NearbyConfig{
			DefaultRadiusMiles: 2,
			MaxRadiusMiles:     25,
			MaxResults:         1,
		},
	}
	svc, mocks := newRestroomService(t, cfg)

	ctx := context.Background()
	origin := geo.Coordinates{Lat: 37.4275, Lon: -122.1697}

	mocks.restroomRepo.EXPECT().
		FindRestroomsWithinBound(ctx, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Restroom{
			{ID: uuid.New(), Name: "near", Latitude: origin.Lat + 0.005, Longitude: origin.Lon},
			{ID: uuid.New(), Name: "mid", Latitude: origin.Lat + 0.02, Longitude: origin.Lon},
		}, nil)

	listings, err := svc.Nearby(ctx, origin, 2)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "near", listings[0].Restroom.Name)
}

func TestRestroomService_GetRestroom(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restroomID := uuid.New()
	restroom := &entity.Restroom{ID: restroomID, Name: "Ferry Building", Latitude: 37.7955, Longitude: -122.3937}
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	mocks.restroomRepo.EXPECT().FindRestroomByID(ctx, restroomID).Return(restroom, nil)
	mocks.reviewRepo.EXPECT().FindReviewsByRestroom(ctx, restroomID).Return([]*entity.Review{
		{Rating: 5},
		{Rating: 4},
	}, nil)
	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.savedRepo.EXPECT().
		FindSavedRestroom(ctx, identity.ID, restroomID).
		Return(nil, repository.ErrSavedRestroomNotFound)

	detail, err := svc.GetRestroom(ctx, restroomID, nil)
	require.NoError(t, err)
	assert.Equal(t, restroom, detail.Restroom)
	assert.Equal(t, 4.5, detail.Rating.Average)
	assert.Equal(t, 2, detail.Rating.Count)
	assert.False(t, detail.Saved)
	assert.False(t, detail.Distance.Available)
}

func TestRestroomService_GetRestroom_NotFound(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restroomID := uuid.New()

	mocks.restroomRepo.EXPECT().
		FindRestroomByID(ctx, restroomID).
		Return(nil, repository.ErrRestroomNotFound)

	_, err := svc.GetRestroom(ctx, restroomID, nil)
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}

func TestRestroomService_SubmitRestroom(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restroomID := uuid.New()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	input := &usecase.SubmitRestroomInput{
		Name:       "Salesforce Floor 1",
		Latitude:   37.79,
		Longitude:  -122.39,
		IsPublic:   true,
		Rating:     4,
		ReviewText: "Clean and quiet",
	}

	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.restroomRepo.EXPECT().
		CreateRestroom(ctx, mock.AnythingOfType("*entity.Restroom")).
		Run(func(_ context.Context, restroom *entity.Restroom) { restroom.ID = restroomID }).
		Return(nil)
	mocks.profileRepo.EXPECT().
		FindProfileByDeviceID(ctx, identity.ID).
		Return(&entity.DeviceProfile{DeviceID: identity.ID, Name: "Sam"}, nil)

	var seedReview *entity.Review
	mocks.reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) { seedReview = review }).
		Return(nil)

	var event *service.RestroomEvent
	mocks.publisher.EXPECT().
		PublishRestroomEvent(ctx, mock.AnythingOfType("*service.RestroomEvent")).
		Run(func(_ context.Context, e *service.RestroomEvent) { event = e }).
		Return(nil)

	restroom, err := svc.SubmitRestroom(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, restroomID, restroom.ID)
	assert.Equal(t, identity.ID, restroom.CreatorDeviceID)
	assert.Equal(t, 4.0, restroom.Rating)
	assert.Equal(t, 1, restroom.ReviewCount)

	require.NotNil(t, seedReview)
	assert.Equal(t, restroomID, seedReview.RestroomID)
	assert.Equal(t, 4, seedReview.Rating)
	assert.Equal(t, "Clean and quiet", seedReview.Text)
	assert.Equal(t, "Sam", seedReview.DeviceName)

	require.NotNil(t, event)
	assert.Equal(t, service.EventRestroomCreated, event.EventType)
	assert.Equal(t, restroomID.String(), event.RestroomID)
}

func TestRestroomService_SubmitRestroom_AnonymousFallback(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	input := &usecase.SubmitRestroomInput{
		Name:      "Ferry Building",
		Latitude:  37.7955,
		Longitude: -122.3937,
		Rating:    5,
	}

	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.restroomRepo.EXPECT().
		CreateRestroom(ctx, mock.AnythingOfType("*entity.Restroom")).
		Return(nil)
	mocks.profileRepo.EXPECT().
		FindProfileByDeviceID(ctx, identity.ID).
		Return(nil, repository.ErrProfileNotFound)

	var seedReview *entity.Review
	mocks.reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) { seedReview = review }).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishRestroomEvent(ctx, mock.AnythingOfType("*service.RestroomEvent")).
		Return(nil)

	_, err := svc.SubmitRestroom(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, seedReview)
	assert.Equal(t, entity.AnonymousDisplayName, seedReview.DeviceName)
}

func TestRestroomService_SubmitRestroom_SeedReviewFailureIsNotFatal(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	input := &usecase.SubmitRestroomInput{
		Name:      "Ferry Building",
		Latitude:  37.7955,
		Longitude: -122.3937,
		Rating:    5,
	}

	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.restroomRepo.EXPECT().
		CreateRestroom(ctx, mock.AnythingOfType("*entity.Restroom")).
		Return(nil)
	mocks.profileRepo.EXPECT().
		FindProfileByDeviceID(ctx, identity.ID).
		Return(nil, repository.ErrProfileNotFound)
	mocks.reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(errors.New("connection reset"))
	mocks.publisher.EXPECT().
		PublishRestroomEvent(ctx, mock.AnythingOfType("*service.RestroomEvent")).
		Return(nil)

	restroom, err := svc.SubmitRestroom(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, restroom)
}

func TestRestroomService_SubmitRestroom_Validation(t *testing.T) {
	svc, _ := newRestroomService(t, nil)

	ctx := context.Background()

	_, err := svc.SubmitRestroom(ctx, &usecase.SubmitRestroomInput{
		Name:     "bad position",
		Latitude: 91,
		Rating:   3,
	})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = svc.SubmitRestroom(ctx, &usecase.SubmitRestroomInput{
		Name:      "bad rating",
		Latitude:  37.79,
		Longitude: -122.39,
		Rating:    6,
	})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestRestroomService_ListAdded(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	restrooms := []*entity.Restroom{
		{ID: uuid.New(), Name: "Salesforce Floor 1", CreatorDeviceID: identity.ID},
	}

	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.restroomRepo.EXPECT().FindRestroomsByCreator(ctx, identity.ID).Return(restrooms, nil)

	listings, err := svc.ListAdded(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, restrooms[0], listings[0].Restroom)
}

func TestRestroomService_ListSaved(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}
	restroomID := uuid.New()
	saved := []*entity.SavedRestroom{
		{ID: uuid.New(), DeviceID: identity.ID, RestroomID: restroomID},
	}
	restrooms := []*entity.Restroom{
		{ID: restroomID, Name: "Ferry Building"},
	}

	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.savedRepo.EXPECT().FindSavedRestroomsByDevice(ctx, identity.ID).Return(saved, nil)
	mocks.restroomRepo.EXPECT().FindRestroomsByIDs(ctx, []uuid.UUID{restroomID}).Return(restrooms, nil)

	listings, err := svc.ListSaved(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, restroomID, listings[0].Restroom.ID)
}

func TestRestroomService_DirectionsQR(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restroomID := uuid.New()
	restroom := &entity.Restroom{ID: restroomID, Name: "Ferry Building", Latitude: 37.7955, Longitude: -122.3937}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	mocks.restroomRepo.EXPECT().FindRestroomByID(ctx, restroomID).Return(restroom, nil)
	mocks.qrService.EXPECT().
		GenerateDirectionsQR(restroom.Name, restroom.Latitude, restroom.Longitude).
		Return(png, nil)

	got, err := svc.DirectionsQR(ctx, restroomID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestRestroomService_DirectionsQR_NotFound(t *testing.T) {
	svc, mocks := newRestroomService(t, nil)

	ctx := context.Background()
	restroomID := uuid.New()

	mocks.restroomRepo.EXPECT().
		FindRestroomByID(ctx, restroomID).
		Return(nil, repository.ErrRestroomNotFound)

	_, err := svc.DirectionsQR(ctx, restroomID)
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}
