package usecase

import (
	"context"

	"privy/internal/domain/entity"
	"privy/internal/domain/geo"

	"github.com/google/uuid"
)

// SubmitRestroomInput represents the input for adding a restroom to the
// directory, including the submitter's first-hand rating.
type SubmitRestroomInput struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsGendered   bool    `json:"is_gendered"`
	IsAccessible bool    `json:"is_accessible"`
	IsPublic     bool    `json:"is_public"`
	BathroomCode string  `json:"bathroom_code"`
	Rating       int     `json:"rating"`
	ReviewText   string  `json:"review_text"`
}

// RestroomListing pairs a restroom with its distance from the caller's
// position. Distance is unavailable when no origin was supplied.
type RestroomListing struct {
	Restroom *entity.Restroom `json:"restroom"`
	Distance geo.Distance     `json:"distance"`
}

// RestroomDetail is the full detail view for a single restroom.
type RestroomDetail struct {
	Restroom *entity.Restroom `json:"restroom"`
	Distance geo.Distance     `json:"distance"`
	Rating   entity.Rating    `json:"rating"`
	Saved    bool             `json:"saved"`
}

// RestroomUsecase defines the directory use cases: listing, proximity
// ranking, submission and per-device collections.
type RestroomUsecase interface {
	// ListRestrooms returns the whole directory annotated with distance
	// from the optional origin, newest first.
	ListRestrooms(ctx context.Context, origin *geo.Coordinates) ([]*RestroomListing, error)

	// Nearby returns restrooms within radiusMiles of origin, ranked by
	// ascending distance. A non-positive radius falls back to the
	// configured default.
	Nearby(ctx context.Context, origin geo.Coordinates, radiusMiles float64) ([]*RestroomListing, error)

	// GetRestroom returns the detail view for one restroom, including
	// whether the calling device has saved it.
	GetRestroom(ctx context.Context, id uuid.UUID, origin *geo.Coordinates) (*RestroomDetail, error)

	// SubmitRestroom adds a restroom and seeds its first review from the
	// submitter's rating.
	SubmitRestroom(ctx context.Context, input *SubmitRestroomInput) (*entity.Restroom, error)

	// ListAdded returns the restrooms submitted by the calling device.
	ListAdded(ctx context.Context, origin *geo.Coordinates) ([]*RestroomListing, error)

	// ListSaved returns the restrooms the calling device has saved.
	ListSaved(ctx context.Context, origin *geo.Coordinates) ([]*RestroomListing, error)

	// DirectionsQR renders a QR code that opens walking directions to the
	// restroom in a maps application.
	DirectionsQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
