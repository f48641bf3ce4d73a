// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/tenant"
	"fleet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Exists reports whether a record exists for the identifier.
func (repo *deviceRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("tenant = ? AND identifier = ?", tenant.FromContext(ctx), identifier).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check device existence")
	}

	return count > 0, nil
}

// FindByIdentifier retrieves a device record by its identifier.
func (repo *deviceRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant = ? AND identifier = ?", tenant.FromContext(ctx), identifier).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identifier")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a new device record.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(tenant.FromContext(ctx), device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// Update persists mutable fields of an existing record.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("tenant = ? AND identifier = ?", tenant.FromContext(ctx), device.Identifier).
		Updates(map[string]any{
			"name":            device.Name,
			"last_updated_at": device.LastUpdatedAt.UnixMilli(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Delete removes the record for the identifier.
func (repo *deviceRepository) Delete(ctx context.Context, identifier string) error {
	result := repo.db.WithContext(ctx).
		Where("tenant = ? AND identifier = ?", tenant.FromContext(ctx), identifier).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		Identifier:    data.Identifier,
		Name:          data.Name,
		Type:          data.Type,
		Owner:         data.Owner,
		Status:        entity.EnrollmentStatus(data.Status),
		Ownership:     entity.OwnershipMode(data.Ownership),
		EnrolledAt:    time.UnixMilli(data.EnrolledAt),
		LastUpdatedAt: time.UnixMilli(data.UpdatedAt),
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(tenantLabel string, data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		Tenant:     tenantLabel,
		Identifier: data.Identifier,
		Name:       data.Name,
		Type:       data.Type,
		Owner:      data.Owner,
		Status:     string(data.Status),
		Ownership:  string(data.Ownership),
		EnrolledAt: data.EnrolledAt.UnixMilli(),
		UpdatedAt:  data.LastUpdatedAt.UnixMilli(),
	}
}
