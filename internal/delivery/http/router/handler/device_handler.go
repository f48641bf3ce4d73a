// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"

	"fleet/internal/delivery/http/response"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	EnrollmentUC usecase.EnrollmentUsecase
	Logger       *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	enrollmentUC usecase.EnrollmentUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		enrollmentUC: params.EnrollmentUC,
		logger:       params.Logger,
	}
}

// RegisterDeviceRequest represents the query parameters for registering a device
type RegisterDeviceRequest struct {
	DeviceID string `query:"deviceId" validate:"required"`
	Name     string `query:"name" validate:"required"`
	Owner    string `query:"owner" validate:"required"`
}

// UpdateDeviceRequest represents the query parameters for renaming a device
type UpdateDeviceRequest struct {
	Name string `query:"name" validate:"required"`
}

// Register handles device enrollment
func (h *DeviceHandler) Register(c echo.Context) error {
	req := RegisterDeviceRequest{
		DeviceID: c.QueryParam("deviceId"),
		Name:     c.QueryParam("name"),
		Owner:    c.QueryParam("owner"),
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.logger.Info("Register call",
		slog.String("device_id", req.DeviceID),
		slog.String("owner", req.Owner),
	)

	if _, err := h.enrollmentUC.Register(c.Request().Context(), req.DeviceID, req.Name, req.Owner); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, true, "Device enrolled successfully")
}

// Remove handles device de-enrollment
func (h *DeviceHandler) Remove(c echo.Context) error {
	deviceID := c.Param("device_id")

	if err := h.enrollmentUC.Remove(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, true, "Device removed successfully")
}

// Update handles renaming an enrolled device
func (h *DeviceHandler) Update(c echo.Context) error {
	deviceID := c.Param("device_id")

	req := UpdateDeviceRequest{
		Name: c.QueryParam("name"),
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if _, err := h.enrollmentUC.Update(c.Request().Context(), deviceID, req.Name); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, true, "Device updated successfully")
}

// Get handles retrieving a device record
func (h *DeviceHandler) Get(c echo.Context) error {
	deviceID := c.Param("device_id")

	device, err := h.enrollmentUC.Get(c.Request().Context(), deviceID)
	if err != nil {
		// An absent record is not an error on the read path: respond with
		// an empty body so callers can probe without tripping alerting.
		if errors.Is(err, domainerrors.ErrDeviceNotFound) {
			return response.Success(c, http.StatusOK, nil, "Device not enrolled")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}
