package impl

import (
	"context"
	"testing"

	"privy/internal/domain/entity"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	mockRepo "privy/internal/mocks/repository"
	mockService "privy/internal/mocks/service"
	mockUsecase "privy/internal/mocks/usecase"
	"privy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceMocks struct {
	reviewRepo   *mockRepo.MockReviewRepository
	restroomRepo *mockRepo.MockRestroomRepository
	profileRepo  *mockRepo.MockDeviceProfileRepository
	identityUC   *mockUsecase.MockIdentityUsecase
	publisher    *mockService.MockEventPublisher
}

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *reviewServiceMocks) {
	t.Helper()

	mocks := &reviewServiceMocks{
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		restroomRepo: mockRepo.NewMockRestroomRepository(t),
		profileRepo:  mockRepo.NewMockDeviceProfileRepository(t),
		identityUC:   mockUsecase.NewMockIdentityUsecase(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	svc := NewReviewService(
		mocks.reviewRepo,
		mocks.restroomRepo,
		mocks.profileRepo,
		mocks.identityUC,
		mocks.publisher,
		newTestLogger(),
	)

	return svc, mocks
}

func TestReviewService_SubmitReview(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	restroomID := uuid.New()
	restroom := &entity.Restroom{ID: restroomID, Name: "Ferry Building", Latitude: 37.7955, Longitude: -122.3937}
	identity := &entity.DeviceIdentity{ID: "device_1756425600000_k3j9x2mwq81fz", Persisted: true}

	mocks.restroomRepo.EXPECT().FindRestroomByID(ctx, restroomID).Return(restroom, nil)
	mocks.identityUC.EXPECT().Bootstrap(ctx).Return(identity, nil)
	mocks.profileRepo.EXPECT().
		FindProfileByDeviceID(ctx, identity.ID).
		Return(&entity.DeviceProfile{DeviceID: identity.ID, Name: "Sam"}, nil)
	mocks.reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	// The stored set already contains a 5-star seed; adding a 1-star
	// review recomputes the aggregate to 3.0 over 2 reviews.
	mocks.reviewRepo.EXPECT().
		FindReviewsByRestroom(ctx, restroomID).
		Return([]*entity.Review{
			{Rating: 1},
			{Rating: 5},
		}, nil)
	mocks.restroomRepo.EXPECT().
		UpdateRestroomRating(ctx, restroomID, 3.0, 2).
		Return(nil)

	var event *service.RestroomEvent
	mocks.publisher.EXPECT().
		PublishRestroomEvent(ctx, mock.AnythingOfType("*service.RestroomEvent")).
		Run(func(_ context.Context, e *service.RestroomEvent) { event = e }).
		Return(nil)

	review, err := svc.SubmitReview(ctx, restroomID, &usecase.SubmitReviewInput{
		Rating: 1,
		Text:   "Out of paper",
	})
	require.NoError(t, err)
	assert.Equal(t, restroomID, review.RestroomID)
	assert.Equal(t, 1, review.Rating)
	assert.Equal(t, "Sam", review.DeviceName)

	require.NotNil(t, event)
	assert.Equal(t, service.EventReviewSubmitted, event.EventType)
	assert.Equal(t, identity.ID, event.DeviceID)
}

func TestReviewService_SubmitReview_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.SubmitReview(context.Background(), uuid.New(), &usecase.SubmitReviewInput{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestReviewService_SubmitReview_RestroomNotFound(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	restroomID := uuid.New()

	mocks.restroomRepo.EXPECT().
		FindRestroomByID(ctx, restroomID).
		Return(nil, repository.ErrRestroomNotFound)

	_, err := svc.SubmitReview(ctx, restroomID, &usecase.SubmitReviewInput{Rating: 4})
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	restroomID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), RestroomID: restroomID, Rating: 5, DeviceName: "Sam"},
		{ID: uuid.New(), RestroomID: restroomID, Rating: 4, DeviceName: entity.AnonymousDisplayName},
	}

	mocks.restroomRepo.EXPECT().
		FindRestroomByID(ctx, restroomID).
		Return(&entity.Restroom{ID: restroomID}, nil)
	mocks.reviewRepo.EXPECT().FindReviewsByRestroom(ctx, restroomID).Return(reviews, nil)

	feed, err := svc.ListReviews(ctx, restroomID)
	require.NoError(t, err)
	assert.Equal(t, reviews, feed.Reviews)
	assert.Equal(t, 4.5, feed.Rating.Average)
	assert.Equal(t, 2, feed.Rating.Count)
}

func TestReviewService_ListReviews_RestroomNotFound(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	restroomID := uuid.New()

	mocks.restroomRepo.EXPECT().
		FindRestroomByID(ctx, restroomID).
		Return(nil, repository.ErrRestroomNotFound)

	_, err := svc.ListReviews(ctx, restroomID)
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}
