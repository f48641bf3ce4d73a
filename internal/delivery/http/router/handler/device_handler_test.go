package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet/internal/delivery/http/response"
	"fleet/internal/delivery/http/validator"
	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	mockUsecase "fleet/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deviceHandlerFixtures holds all test dependencies for device handler tests.
type deviceHandlerFixtures struct {
	handler      *DeviceHandler
	enrollmentUC *mockUsecase.MockEnrollmentUsecase
	echo         *echo.Echo
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	enrollmentUC := mockUsecase.NewMockEnrollmentUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewDeviceHandler(DeviceHandlerParams{
		EnrollmentUC: enrollmentUC,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return deviceHandlerFixtures{
		handler:      h,
		enrollmentUC: enrollmentUC,
		echo:         e,
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestDeviceHandler_Register_Success(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/device/register?deviceId=abc123&name=lobby-display&owner=alice", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.enrollmentUC.EXPECT().
		Register(req.Context(), "abc123", "lobby-display", "alice").
		Return(&entity.Device{Identifier: "abc123"}, nil)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, true, body.Data)
}

func TestDeviceHandler_Register_Conflict(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/device/register?deviceId=abc123&name=lobby-display&owner=alice", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.enrollmentUC.EXPECT().
		Register(req.Context(), "abc123", "lobby-display", "alice").
		Return(nil, domainerrors.ErrDeviceAlreadyEnrolled)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DEVICE_ALREADY_ENROLLED", body.Error.Code)
}

func TestDeviceHandler_Register_MissingParams(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/device/register?deviceId=abc123", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_Remove_Success(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/device/remove/abc123", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("abc123")

	fx.enrollmentUC.EXPECT().
		Remove(req.Context(), "abc123").
		Return(nil)

	require.NoError(t, fx.handler.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_Remove_NotEnrolled(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/device/remove/missing", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("missing")

	fx.enrollmentUC.EXPECT().
		Remove(req.Context(), "missing").
		Return(domainerrors.ErrDeviceNotFound)

	require.NoError(t, fx.handler.Remove(c))
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)

	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", body.Error.Code)
}

func TestDeviceHandler_Update_Success(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/device/update/abc123?name=new-name", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("abc123")

	fx.enrollmentUC.EXPECT().
		Update(req.Context(), "abc123", "new-name").
		Return(&entity.Device{Identifier: "abc123", Name: "new-name"}, nil)

	require.NoError(t, fx.handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_Update_MissingName(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/device/update/abc123", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("abc123")

	require.NoError(t, fx.handler.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_Get_Success(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/device/abc123", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("abc123")

	fx.enrollmentUC.EXPECT().
		Get(req.Context(), "abc123").
		Return(&entity.Device{Identifier: "abc123", Name: "lobby-display"}, nil)

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
}

func TestDeviceHandler_Get_NotEnrolledReturnsEmptyBody(t *testing.T) {
	fx := createTestDeviceHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/device/missing", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("device_id")
	c.SetParamValues("missing")

	fx.enrollmentUC.EXPECT().
		Get(req.Context(), "missing").
		Return(nil, domainerrors.ErrDeviceNotFound)

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Data)
	assert.Nil(t, body.Error)
}
