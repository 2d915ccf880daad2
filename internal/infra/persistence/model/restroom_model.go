package model

import (
	"time"

	"github.com/google/uuid"
)

// RestroomModel is the GORM-specific struct for the 'restrooms' table.
// Latitude and longitude are stored as plain double precision columns so
// the bounding-box prefilter can use a composite btree index.
type RestroomModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Latitude        float64   `gorm:"type:double precision;not null;index:idx_restrooms_lat_lon,priority:1"`
	Longitude       float64   `gorm:"type:double precision;not null;index:idx_restrooms_lat_lon,priority:2"`
	IsGendered      bool      `gorm:"not null;default:false"`
	IsAccessible    bool      `gorm:"not null;default:false"`
	IsPublic        bool      `gorm:"not null;default:true"`
	BathroomCode    string    `gorm:"type:varchar(100)"`
	Rating          float64   `gorm:"type:double precision;not null;default:0"`
	ReviewCount     int       `gorm:"not null;default:0"`
	CreatorDeviceID string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestroomModel) TableName() string {
	return "restrooms"
}
