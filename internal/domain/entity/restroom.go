// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Restroom is the point-of-interest entity users discover, rate and review.
type Restroom struct {
	ID              uuid.UUID `json:"id"`                      // The Global Unique Identifier (GUID) for the restroom.
	Name            string    `json:"name"`                    // Restroom name/location, e.g. "Salesforce Floor 1".
	Latitude        float64   `json:"latitude"`                // The geographic latitude.
	Longitude       float64   `json:"longitude"`               // The geographic longitude.
	IsGendered      bool      `json:"is_gendered"`             // Separate men's/women's rooms.
	IsAccessible    bool      `json:"is_accessible"`           // Wheelchair accessible.
	IsPublic        bool      `json:"is_public"`               // Public vs. customers-only.
	BathroomCode    string    `json:"bathroom_code,omitempty"` // Optional door access code.
	Rating          float64   `json:"rating"`                  // Seeded aggregate score; recomputed from reviews on read.
	ReviewCount     int       `json:"review_count"`            // Seeded review count; recomputed from reviews on read.
	CreatorDeviceID string    `json:"creator_device_id"`       // The device identity that submitted this restroom.
	CreatedAt       time.Time `json:"created_at"`              // Timestamp of when this restroom was submitted.
	UpdatedAt       time.Time `json:"updated_at"`              // Timestamp of the last modification.
}

// Point returns the restroom position as an orb point (lon/lat order).
func (r *Restroom) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}
