package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedRestroomModel is the GORM-specific struct for the 'saved_restrooms' table.
// The composite unique index makes the save toggle idempotent at the
// storage level: a concurrent double-save collides instead of duplicating.
type SavedRestroomModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_saved_device_restroom,priority:1"`
	RestroomID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_device_restroom,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedRestroomModel) TableName() string {
	return "saved_restrooms"
}
