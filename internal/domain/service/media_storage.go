package service

import "context"

// MediaStorage defines the interface for storing uploaded media and
// resolving a public URL for it. Profile images are the only media the
// directory stores.
type MediaStorage interface {
	// SaveProfileImage stores the image bytes under fileName and returns the
	// public URL to stamp on the device profile.
	SaveProfileImage(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}
