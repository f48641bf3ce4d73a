// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fleet/internal/delivery/context"
	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/domain/tenant"
	"fleet/internal/errors"
	"fleet/internal/usecase"
)

// enrollmentService is the state machine over device records: UNENROLLED ->
// ENROLLED -> UNENROLLED. It performs no retries and no rollback; every
// storage failure is surfaced as exactly one outcome.
type enrollmentService struct {
	deviceRepo repository.DeviceRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	deviceRepo repository.DeviceRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.EnrollmentUsecase {
	return &enrollmentService{
		deviceRepo: deviceRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Register enrolls a new device with an ACTIVE status.
func (s *enrollmentService) Register(ctx context.Context, identifier, name, owner string) (*entity.Device, error) {
	// Best-effort pre-check; the storage layer's uniqueness constraint is
	// the real guard against concurrent duplicate enrollment.
	exists, err := s.deviceRepo.Exists(ctx, identifier)
	if err != nil {
		return nil, domainerrors.ErrRegistryUnavailable.WrapMessage("check enrollment state")
	}
	if exists {
		return nil, domainerrors.ErrDeviceAlreadyEnrolled
	}

	now := time.Now()
	device := &entity.Device{
		Identifier:    identifier,
		Name:          name,
		Type:          entity.DeviceTypeDisplay,
		Owner:         owner,
		Status:        entity.StatusActive,
		Ownership:     entity.OwnershipBYOD,
		EnrolledAt:    now,
		LastUpdatedAt: now,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceAlreadyEnrolled
		}

		return nil, domainerrors.ErrRegistryUnavailable.WrapMessage("insert device record")
	}

	s.publishEvent(ctx, service.EventDeviceEnrolled, device)

	return device, nil
}

// Remove de-enrolls a device.
func (s *enrollmentService) Remove(ctx context.Context, identifier string) error {
	if err := s.deviceRepo.Delete(ctx, identifier); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return domainerrors.ErrRegistryUnavailable.WrapMessage("delete device record")
	}

	s.publishEvent(ctx, service.EventDeviceRemoved, &entity.Device{Identifier: identifier})

	return nil
}

// Update renames an enrolled device and refreshes its last-update timestamp.
func (s *enrollmentService) Update(ctx context.Context, identifier, newName string) (*entity.Device, error) {
	// Explicit absence check: never mutate a record we have not seen.
	device, err := s.deviceRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.ErrRegistryUnavailable.WrapMessage("load device record")
	}

	device.Name = newName
	device.LastUpdatedAt = time.Now()

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.ErrRegistryUnavailable.WrapMessage("update device record")
	}

	s.publishEvent(ctx, service.EventDeviceUpdated, device)

	return device, nil
}

// Get looks up an enrolled device.
func (s *enrollmentService) Get(ctx context.Context, identifier string) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, domainerrors.ErrRegistryUnavailable.WrapMessage("load device record")
	}

	return device, nil
}

// publishEvent emits a lifecycle event. Publishing is best-effort; failures
// are logged and never fail the operation that caused them.
func (s *enrollmentService) publishEvent(ctx context.Context, eventType string, device *entity.Device) {
	event := &service.DeviceEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		Type:             eventType,
		DeviceIdentifier: device.Identifier,
		Tenant:           tenant.FromContext(ctx),
		Owner:            device.Owner,
		OccurredAt:       time.Now(),
	}

	if err := s.publisher.PublishDeviceEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish device event",
			slog.String("type", eventType),
			slog.String("device_identifier", device.Identifier),
			slog.Any("error", err),
		)
	}
}
