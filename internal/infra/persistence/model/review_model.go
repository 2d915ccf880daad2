package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// DeviceName is denormalized at submission time so the review feed
// never needs a join against device_profiles.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestroomID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Text       string    `gorm:"type:text"`
	DeviceID   string    `gorm:"type:varchar(255);not null"`
	DeviceName string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
