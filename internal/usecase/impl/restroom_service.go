package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"privy/config"
	deliverycontext "privy/internal/delivery/context"
	"privy/internal/domain/entity"
	"privy/internal/domain/geo"
	"privy/internal/domain/repository"
	"privy/internal/domain/service"
	"privy/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrRestroomNotFound is returned when a restroom is not found
	ErrRestroomNotFound = errors.New("restroom not found")
	// ErrInvalidCoordinates is returned when a position is outside valid ranges
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrInvalidRating is returned when a rating is outside the 1..5 scale
	ErrInvalidRating = errors.New("invalid rating")
)

type restroomService struct {
	restroomRepo repository.RestroomRepository
	reviewRepo   repository.ReviewRepository
	savedRepo    repository.SavedRestroomRepository
	profileRepo  repository.DeviceProfileRepository
	identityUC   usecase.IdentityUsecase
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	config       *config.Config
	logger       *slog.Logger
}

// NewRestroomService creates a new restroom directory service instance
func NewRestroomService(
	restroomRepo repository.RestroomRepository,
	reviewRepo repository.ReviewRepository,
	savedRepo repository.SavedRestroomRepository,
	profileRepo repository.DeviceProfileRepository,
	identityUC usecase.IdentityUsecase,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RestroomUsecase {
	// If Nearby is not configured, provide a default configuration
	if cfg.Nearby == nil {
		cfg.Nearby = &config.NearbyConfig{
			DefaultRadiusMiles: 2,   // Default to a walkable 2 miles
			MaxRadiusMiles:     25,  // Default to 25 miles
			MaxResults:         100, // Default to 100 results
		}
	}

	return &restroomService{
		restroomRepo: restroomRepo,
		reviewRepo:   reviewRepo,
		savedRepo:    savedRepo,
		profileRepo:  profileRepo,
		identityUC:   identityUC,
		qrService:    qrService,
		publisher:    publisher,
		config:       cfg,
		logger:       logger,
	}
}

// ListRestrooms returns the whole directory annotated with distance from
// the optional origin, newest first.
func (s *restroomService) ListRestrooms(ctx context.Context, origin *geo.Coordinates) ([]*usecase.RestroomListing, error) {
	restrooms, err := s.restroomRepo.FindAllRestrooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find restrooms: %w", err)
	}

	return toListings(restrooms, origin), nil
}

// Nearby returns restrooms within radiusMiles of origin, ranked by
// ascending distance. A bounding box prefilters candidates in the
// database; exact haversine distance does the final filter and ranking.
func (s *restroomService) Nearby(ctx context.Context, origin geo.Coordinates, radiusMiles float64) ([]*usecase.RestroomListing, error) {
	if !origin.Valid() {
		return nil, ErrInvalidCoordinates
	}

	if radiusMiles <= 0 {
		radiusMiles = s.config.Nearby.DefaultRadiusMiles
	}
	if max := s.config.Nearby.MaxRadiusMiles; max > 0 && radiusMiles > max {
		radiusMiles = max
	}

	candidates, err := s.restroomRepo.FindRestroomsWithinBound(ctx, origin.BoundAround(radiusMiles))
	if err != nil {
		return nil, fmt.Errorf("failed to find restrooms within bound: %w", err)
	}

	listings := make([]*usecase.RestroomListing, 0, len(candidates))
	for _, restroom := range candidates {
		distance := geo.MilesBetween(&origin, geo.Coordinates{
			Lat: restroom.Latitude,
			Lon: restroom.Longitude,
		})
		// The bounding box corners stick out past the radius, so re-check
		// the exact distance.
		if distance.Miles > radiusMiles {
			continue
		}

		listings = append(listings, &usecase.RestroomListing{
			Restroom: restroom,
			Distance: distance,
		})
	}

	// SliceStable keeps the repository's newest-first order for ties.
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Distance.Miles < listings[j].Distance.Miles
	})

	if max := s.config.Nearby.MaxResults; max > 0 && len(listings) > max {
		listings = listings[:max]
	}

	return listings, nil
}

// GetRestroom returns the detail view for one restroom, including whether
// the calling device has saved it.
func (s *restroomService) GetRestroom(ctx context.Context, id uuid.UUID, origin *geo.Coordinates) (*usecase.RestroomDetail, error) {
	restroom, err := s.restroomRepo.FindRestroomByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestroomNotFound) {
			return nil, ErrRestroomNotFound
		}

		return nil, fmt.Errorf("failed to find restroom: %w", err)
	}

	reviews, err := s.reviewRepo.FindReviewsByRestroom(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	saved, err := s.isSaved(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.RestroomDetail{
		Restroom: restroom,
		Distance: geo.MilesBetween(origin, geo.Coordinates{
			Lat: restroom.Latitude,
			Lon: restroom.Longitude,
		}),
		Rating: entity.AggregateRating(reviews),
		Saved:  saved,
	}, nil
}

// isSaved reports whether the calling device has saved the restroom.
func (s *restroomService) isSaved(ctx context.Context, restroomID uuid.UUID) (bool, error) {
	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return false, err
	}

	if _, err := s.savedRepo.FindSavedRestroom(ctx, identity.ID, restroomID); err != nil {
		if errors.Is(err, repository.ErrSavedRestroomNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to find saved restroom: %w", err)
	}

	return true, nil
}

// SubmitRestroom adds a restroom to the directory and seeds its first
// review from the submitter's rating. The two writes are deliberately
// not transactional: a failed seed review leaves a valid restroom whose
// aggregate self-heals on the next review submission.
func (s *restroomService) SubmitRestroom(ctx context.Context, input *usecase.SubmitRestroomInput) (*entity.Restroom, error) {
	position := geo.Coordinates{Lat: input.Latitude, Lon: input.Longitude}
	if !position.Valid() {
		return nil, ErrInvalidCoordinates
	}
	if !entity.ValidRating(input.Rating) {
		return nil, ErrInvalidRating
	}

	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	restroom := &entity.Restroom{
		Name:            input.Name,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		IsGendered:      input.IsGendered,
		IsAccessible:    input.IsAccessible,
		IsPublic:        input.IsPublic,
		BathroomCode:    input.BathroomCode,
		Rating:          float64(input.Rating),
		ReviewCount:     1,
		CreatorDeviceID: identity.ID,
	}

	if err := s.restroomRepo.CreateRestroom(ctx, restroom); err != nil {
		return nil, err
	}

	seedReview := &entity.Review{
		RestroomID: restroom.ID,
		Rating:     input.Rating,
		Text:       input.ReviewText,
		DeviceID:   identity.ID,
		DeviceName: s.displayName(ctx, identity.ID),
	}
	if err := s.reviewRepo.CreateReview(ctx, seedReview); err != nil {
		s.logger.Warn("seed review creation failed",
			slog.String("restroom_id", restroom.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.publishEvent(ctx, &service.RestroomEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  service.EventRestroomCreated,
		RestroomID: restroom.ID.String(),
		DeviceID:   identity.ID,
		Name:       restroom.Name,
		Latitude:   restroom.Latitude,
		Longitude:  restroom.Longitude,
		Rating:     input.Rating,
	})

	return restroom, nil
}

// displayName resolves the submitter's public name, falling back to the
// anonymous placeholder when the profile is missing or unnamed.
func (s *restroomService) displayName(ctx context.Context, deviceID string) string {
	profile, err := s.profileRepo.FindProfileByDeviceID(ctx, deviceID)
	if err != nil {
		return entity.AnonymousDisplayName
	}

	return profile.DisplayName()
}

// publishEvent publishes a directory event, best effort.
func (s *restroomService) publishEvent(ctx context.Context, event *service.RestroomEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishRestroomEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish directory event",
			slog.String("event_type", event.EventType),
			slog.String("restroom_id", event.RestroomID),
			slog.String("error", err.Error()),
		)
	}
}

// ListAdded returns the restrooms submitted by the calling device.
func (s *restroomService) ListAdded(ctx context.Context, origin *geo.Coordinates) ([]*usecase.RestroomListing, error) {
	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	restrooms, err := s.restroomRepo.FindRestroomsByCreator(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find restrooms by creator: %w", err)
	}

	return toListings(restrooms, origin), nil
}

// ListSaved returns the restrooms the calling device has saved.
func (s *restroomService) ListSaved(ctx context.Context, origin *geo.Coordinates) ([]*usecase.RestroomListing, error) {
	identity, err := s.identityUC.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	savedRestrooms, err := s.savedRepo.FindSavedRestroomsByDevice(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved restrooms: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(savedRestrooms))
	for _, saved := range savedRestrooms {
		ids = append(ids, saved.RestroomID)
	}

	restrooms, err := s.restroomRepo.FindRestroomsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find restrooms by IDs: %w", err)
	}

	return toListings(restrooms, origin), nil
}

// DirectionsQR renders a QR code that opens walking directions to the
// restroom in a maps application.
func (s *restroomService) DirectionsQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	restroom, err := s.restroomRepo.FindRestroomByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestroomNotFound) {
			return nil, ErrRestroomNotFound
		}

		return nil, fmt.Errorf("failed to find restroom: %w", err)
	}

	png, err := s.qrService.GenerateDirectionsQR(restroom.Name, restroom.Latitude, restroom.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to generate directions QR: %w", err)
	}

	return png, nil
}

// toListings annotates restrooms with their distance from the origin.
func toListings(restrooms []*entity.Restroom, origin *geo.Coordinates) []*usecase.RestroomListing {
	listings := make([]*usecase.RestroomListing, 0, len(restrooms))
	for _, restroom := range restrooms {
		listings = append(listings, &usecase.RestroomListing{
			Restroom: restroom,
			Distance: geo.MilesBetween(origin, geo.Coordinates{
				Lat: restroom.Latitude,
				Lon: restroom.Longitude,
			}),
		})
	}

	return listings
}
