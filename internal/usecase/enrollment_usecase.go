// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"fleet/internal/domain/entity"
)

// EnrollmentUsecase governs the lifecycle of a single device record. A
// record exists iff the device is enrolled; there is no pending state.
type EnrollmentUsecase interface {
	// Register enrolls a new device. Registering an identifier that is
	// already enrolled always fails with a conflict; re-provisioning
	// requires an explicit Remove first.
	Register(ctx context.Context, identifier, name, owner string) (*entity.Device, error)

	// Remove de-enrolls a device, freeing its identifier for reuse.
	Remove(ctx context.Context, identifier string) error

	// Update renames an enrolled device. Identifier, owner, type and
	// enrollment timestamp are never changed.
	Update(ctx context.Context, identifier, newName string) (*entity.Device, error)

	// Get looks up an enrolled device.
	Get(ctx context.Context, identifier string) (*entity.Device, error)
}
