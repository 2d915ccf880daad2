// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedRestroom is the join entity expressing that a device has
// bookmarked a restroom. At most one row exists per (device, restroom)
// pair; saving is a toggle, not a counter.
type SavedRestroom struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the bookmark.
	DeviceID   string    `json:"device_id"`   // The device identity that saved the restroom.
	RestroomID uuid.UUID `json:"restroom_id"` // The restroom being saved.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the bookmark was created.
}
