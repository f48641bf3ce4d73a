package service

import (
	"context"
	"time"
)

// Device event types published after successful state transitions.
const (
	EventDeviceEnrolled = "device.enrolled"
	EventDeviceUpdated  = "device.updated"
	EventDeviceRemoved  = "device.removed"
)

// DeviceEvent describes a completed enrollment state transition. Publishing
// is best-effort: a publish failure never fails the operation that caused it.
type DeviceEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	Type             string    `json:"type"`
	DeviceIdentifier string    `json:"device_identifier"`
	Tenant           string    `json:"tenant"`
	Owner            string    `json:"owner,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing device lifecycle events.
type EventPublisher interface {
	// PublishDeviceEvent publishes a device lifecycle event.
	PublishDeviceEvent(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
