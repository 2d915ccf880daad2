// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a single review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single immutable rating (plus optional text) for a restroom.
type Review struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the review.
	RestroomID uuid.UUID `json:"restroom_id"` // The restroom this review belongs to.
	Rating     int       `json:"rating"`      // Star rating, 1-5.
	Text       string    `json:"text"`        // Optional review text.
	DeviceID   string    `json:"device_id"`   // The device identity that submitted this review.
	DeviceName string    `json:"device_name"` // Display name at submission time, denormalized.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this review was submitted.
}

// ValidRating reports whether a rating value is within the allowed range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// Rating is the aggregate score of a restroom's review set. A restroom
// with no reviews has no score at all; zero would look like a valid but
// terrible rating, so the absence is carried explicitly in HasRatings.
type Rating struct {
	Average    float64 `json:"average"`     // Mean of all review ratings, rounded to one decimal.
	Count      int     `json:"count"`       // Number of reviews in the set.
	HasRatings bool    `json:"has_ratings"` // False when the review set is empty.
}

// AggregateRating computes the mean rating over a review set, rounded to
// one decimal place. An empty set yields the no-ratings sentinel.
func AggregateRating(reviews []*Review) Rating {
	if len(reviews) == 0 {
		return Rating{}
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	average := float64(sum) / float64(len(reviews))

	return Rating{
		Average:    math.Round(average*10) / 10,
		Count:      len(reviews),
		HasRatings: true,
	}
}
