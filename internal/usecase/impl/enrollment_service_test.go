package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/tenant"
	mockRepo "fleet/internal/mocks/repository"
	mockService "fleet/internal/mocks/service"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// enrollmentServiceFixtures holds all test dependencies for enrollment service tests.
type enrollmentServiceFixtures struct {
	service    usecase.EnrollmentUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	publisher  *mockService.MockEventPublisher
}

func createTestEnrollmentService(t *testing.T) enrollmentServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewEnrollmentService(deviceRepo, publisher, logger)

	return enrollmentServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		publisher:  publisher,
	}
}

func TestEnrollmentService_Register_NewDevice(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	before := time.Now()
	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "abc123", device.Identifier)
	assert.Equal(t, "lobby-display", device.Name)
	assert.Equal(t, "alice", device.Owner)
	assert.Equal(t, entity.DeviceTypeDisplay, device.Type)
	assert.Equal(t, entity.StatusActive, device.Status)
	assert.Equal(t, entity.OwnershipBYOD, device.Ownership)
	assert.False(t, device.EnrolledAt.Before(before))
	assert.Equal(t, device.EnrolledAt, device.LastUpdatedAt)
}

func TestEnrollmentService_Register_PublishesEnrolledEvent(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := tenant.WithLabel(context.Background(), "acme")

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	var published *service.DeviceEvent
	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Run(func(_ context.Context, event *service.DeviceEvent) {
			published = event
		}).
		Return(nil)

	_, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventDeviceEnrolled, published.Type)
	assert.Equal(t, "abc123", published.DeviceIdentifier)
	assert.Equal(t, "acme", published.Tenant)
	assert.Equal(t, "alice", published.Owner)
	assert.False(t, published.OccurredAt.IsZero())
}

func TestEnrollmentService_Register_AlreadyEnrolled(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(true, nil)

	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyEnrolled)
	fx.deviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnrollmentService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	// The pre-check misses the concurrent writer; the uniqueness constraint
	// catches it on insert.
	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyEnrolled)
}

func TestEnrollmentService_Register_ExistsCheckFails(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, errors.New("connection refused"))

	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrRegistryUnavailable)
}

func TestEnrollmentService_Register_InsertFails(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(errors.New("connection refused"))

	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrRegistryUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrDeviceAlreadyEnrolled)
}

func TestEnrollmentService_Register_PublishFailureDoesNotFailRegistration(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(errors.New("broker unreachable"))

	device, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.NoError(t, err)
	assert.NotNil(t, device)
}

func TestEnrollmentService_Remove_Success(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Delete(ctx, "abc123").
		Return(nil)

	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	err := fx.service.Remove(ctx, "abc123")
	require.NoError(t, err)
}

func TestEnrollmentService_Remove_NotEnrolled(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Delete(ctx, "missing").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.Remove(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 406, appErr.HTTPCode())
}

func TestEnrollmentService_Remove_StoreFailure(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Delete(ctx, "abc123").
		Return(errors.New("connection refused"))

	err := fx.service.Remove(ctx, "abc123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistryUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestEnrollmentService_Update_Success(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()
	enrolledAt := time.Now().Add(-time.Hour)
	existing := &entity.Device{
		Identifier:    "abc123",
		Name:          "old-name",
		Type:          entity.DeviceTypeDisplay,
		Owner:         "alice",
		Status:        entity.StatusActive,
		Ownership:     entity.OwnershipBYOD,
		EnrolledAt:    enrolledAt,
		LastUpdatedAt: enrolledAt,
	}

	fx.deviceRepo.EXPECT().
		FindByIdentifier(ctx, "abc123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil)

	device, err := fx.service.Update(ctx, "abc123", "new-name")
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "new-name", device.Name)
	assert.Equal(t, "abc123", device.Identifier)
	assert.Equal(t, "alice", device.Owner)
	assert.Equal(t, enrolledAt, device.EnrolledAt)
	assert.True(t, device.LastUpdatedAt.After(enrolledAt))
}

func TestEnrollmentService_Update_NotEnrolled(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByIdentifier(ctx, "missing").
		Return(nil, repository.ErrDeviceNotFound)

	device, err := fx.service.Update(ctx, "missing", "new-name")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	fx.deviceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEnrollmentService_Update_RemovedBetweenReadAndWrite(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()
	existing := &entity.Device{
		Identifier: "abc123",
		Name:       "old-name",
		Status:     entity.StatusActive,
	}

	fx.deviceRepo.EXPECT().
		FindByIdentifier(ctx, "abc123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDeviceNotFound)

	device, err := fx.service.Update(ctx, "abc123", "new-name")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestEnrollmentService_Get_Success(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()
	existing := &entity.Device{
		Identifier: "abc123",
		Name:       "lobby-display",
		Owner:      "alice",
		Status:     entity.StatusActive,
	}

	fx.deviceRepo.EXPECT().
		FindByIdentifier(ctx, "abc123").
		Return(existing, nil)

	device, err := fx.service.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, existing, device)
}

func TestEnrollmentService_Get_NotEnrolled(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByIdentifier(ctx, "missing").
		Return(nil, repository.ErrDeviceNotFound)

	device, err := fx.service.Get(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestEnrollmentService_IdentifierReusableAfterRemove(t *testing.T) {
	fx := createTestEnrollmentService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Exists(ctx, "abc123").
		Return(false, nil).
		Twice()

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil).
		Twice()

	fx.deviceRepo.EXPECT().
		Delete(ctx, "abc123").
		Return(nil)

	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.AnythingOfType("*service.DeviceEvent")).
		Return(nil).
		Times(3)

	first, err := fx.service.Register(ctx, "abc123", "lobby-display", "alice")
	require.NoError(t, err)

	require.NoError(t, fx.service.Remove(ctx, "abc123"))

	second, err := fx.service.Register(ctx, "abc123", "lobby-display-2", "bob")
	require.NoError(t, err)
	assert.Equal(t, first.Identifier, second.Identifier)
	assert.Equal(t, "bob", second.Owner)
	assert.False(t, second.EnrolledAt.Before(first.EnrolledAt))
}
