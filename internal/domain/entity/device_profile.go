// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// AnonymousDisplayName is the display name used when a device has not set one.
const AnonymousDisplayName = "Anonymous"

// DeviceIdentity is the pseudo-anonymous identity of one app installation.
// The ID is generated once per installation and never reassigned.
type DeviceIdentity struct {
	ID        string `json:"id"`        // Opaque token identifying this installation.
	Persisted bool   `json:"persisted"` // False when the durable slot was unavailable and the id only lives for this process.
}

// DeviceProfile holds the profile data keyed 1:1 with a DeviceIdentity.
// A row may exist with empty fields; onboarding fills them in later.
type DeviceProfile struct {
	DeviceID     string    `json:"device_id"`     // The identity token this profile belongs to.
	Name         string    `json:"name"`          // Optional display name.
	Location     string    `json:"location"`      // Optional free-text city/region string.
	ProfileImage string    `json:"profile_image"` // Optional URL of the stored profile image.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this profile was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// OnboardingComplete reports whether the profile gates the user into the
// main application: both a display name and a profile image must be set.
func (p *DeviceProfile) OnboardingComplete() bool {
	if p == nil {
		return false
	}

	return strings.TrimSpace(p.Name) != "" && p.ProfileImage != ""
}

// DisplayName returns the profile's name, falling back to the anonymous
// placeholder when no name has been set.
func (p *DeviceProfile) DisplayName() string {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return AnonymousDisplayName
	}

	return p.Name
}
