package service

import (
	"context"
)

// Event types published by the directory.
const (
	EventRestroomCreated = "restroom.created"
	EventReviewSubmitted = "review.submitted"
)

// RestroomEvent represents a directory change published for async consumers
// (e.g. a moderation or analytics worker).
type RestroomEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	EventType  string  `json:"event_type"`
	RestroomID string  `json:"restroom_id"`
	DeviceID   string  `json:"device_id"`
	Name       string  `json:"name,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	Rating     int     `json:"rating,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRestroomEvent publishes a directory event for async processing
	PublishRestroomEvent(ctx context.Context, event *RestroomEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
