// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DeviceType is the fixed device category managed by this backend.
const DeviceTypeDisplay = "digital_display"

// EnrollmentStatus describes the lifecycle state of an enrolled device.
type EnrollmentStatus string

const (
	// StatusActive means the device is currently enrolled.
	StatusActive EnrollmentStatus = "ACTIVE"
	// StatusRemoved means the device has been de-enrolled. A record in this
	// state never appears in the registry; the constant exists so callers
	// can label removal events.
	StatusRemoved EnrollmentStatus = "REMOVED"
)

// OwnershipMode classifies who owns the physical device relative to the
// managing organization.
type OwnershipMode string

// OwnershipBYOD is the only ownership mode for this device category.
const OwnershipBYOD OwnershipMode = "BYOD"

// Device represents an enrolled device record. A record exists in the
// registry iff the device is currently enrolled.
type Device struct {
	Identifier    string           `json:"identifier"`      // Unique device identifier, immutable after creation.
	Name          string           `json:"name"`            // Human-readable display name, mutable.
	Type          string           `json:"type"`            // Fixed device category.
	Owner         string           `json:"owner"`           // Principal that requested enrollment, set at creation.
	Status        EnrollmentStatus `json:"status"`          // Enrollment status.
	Ownership     OwnershipMode    `json:"ownership"`       // Ownership mode, fixed to BYOD.
	EnrolledAt    time.Time        `json:"enrolled_at"`     // When the device was enrolled.
	LastUpdatedAt time.Time        `json:"last_updated_at"` // Refreshed on every successful update.
}
