// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no record exists for an identifier.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when an insert hits the uniqueness
	// constraint on the device identifier.
	ErrDuplicateDevice = errors.New("device already enrolled")
)

// DeviceRepository is the registry contract consumed by the enrollment
// state machine. Every operation is scoped to the tenant label carried in
// the context (see the tenant package). The underlying store is responsible
// for enforcing identifier uniqueness atomically; Exists is a best-effort
// pre-check, not a correctness guarantee.
type DeviceRepository interface {
	// Exists reports whether a record exists for the identifier.
	Exists(ctx context.Context, identifier string) (bool, error)

	// FindByIdentifier retrieves a device record by its identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Device, error)

	// Create persists a new device record.
	Create(ctx context.Context, device *entity.Device) error

	// Update persists mutable fields of an existing record.
	Update(ctx context.Context, device *entity.Device) error

	// Delete removes the record for the identifier.
	Delete(ctx context.Context, identifier string) error
}
