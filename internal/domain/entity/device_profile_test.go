package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceProfile_OnboardingComplete(t *testing.T) {
	var nilProfile *DeviceProfile
	assert.False(t, nilProfile.OnboardingComplete())

	assert.False(t, (&DeviceProfile{}).OnboardingComplete())
	assert.False(t, (&DeviceProfile{Name: "Sam"}).OnboardingComplete())
	assert.False(t, (&DeviceProfile{Name: "   ", ProfileImage: "https://cdn.example.com/a.png"}).OnboardingComplete())
	assert.True(t, (&DeviceProfile{Name: "Sam", ProfileImage: "https://cdn.example.com/a.png"}).OnboardingComplete())
}

func TestDeviceProfile_DisplayName(t *testing.T) {
	var nilProfile *DeviceProfile
	assert.Equal(t, AnonymousDisplayName, nilProfile.DisplayName())

	assert.Equal(t, AnonymousDisplayName, (&DeviceProfile{}).DisplayName())
	assert.Equal(t, AnonymousDisplayName, (&DeviceProfile{Name: "  "}).DisplayName())
	assert.Equal(t, "Sam", (&DeviceProfile{Name: "Sam"}).DisplayName())
}
