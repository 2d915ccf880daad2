// Package model holds the GORM-specific persistence structs mapped to
// PostgreSQL tables. Domain entities never carry GORM tags; the
// repositories translate between the two.
package model

import (
	"time"
)

// DeviceProfileModel is the GORM-specific struct for the 'device_profiles' table.
// The primary key is the client-generated anonymous device identifier,
// not a server-side UUID, so duplicate bootstraps collide on it.
type DeviceProfileModel struct {
	DeviceID     string `gorm:"type:varchar(255);primary_key"`
	Name         string `gorm:"type:varchar(255)"`
	Location     string `gorm:"type:varchar(255)"`
	ProfileImage string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceProfileModel) TableName() string {
	return "device_profiles"
}
