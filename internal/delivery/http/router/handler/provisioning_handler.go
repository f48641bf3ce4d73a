package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/usecase"
	"fleet/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProvisioningHandlerParams holds dependencies for ProvisioningHandler, injected by Fx.
type ProvisioningHandlerParams struct {
	fx.In

	ProvisioningUC usecase.ProvisioningUsecase
	Logger         *slog.Logger
}

// ProvisioningHandler holds dependencies for bundle download handlers
type ProvisioningHandler struct {
	provisioningUC usecase.ProvisioningUsecase
	logger         *slog.Logger
}

// NewProvisioningHandler is the constructor for ProvisioningHandler
func NewProvisioningHandler(params ProvisioningHandlerParams) *ProvisioningHandler {
	return &ProvisioningHandler{
		provisioningUC: params.ProvisioningUC,
		logger:         params.Logger,
	}
}

// DownloadBundle enrolls a fresh device and streams its provisioning bundle.
// Owner validation is owned by the use case so the "no device created"
// guarantee holds for every caller, not just this transport.
func (h *ProvisioningHandler) DownloadBundle(c echo.Context) error {
	owner := c.QueryParam("owner")
	deviceName := c.QueryParam("deviceName")
	category := c.Param("category")

	bundle, err := h.provisioningUC.DownloadBundle(c.Request().Context(), owner, deviceName, category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	checksum := util.ChecksumBytes(bundle.Payload)

	h.logger.Info("Provisioning bundle assembled",
		slog.String("file_name", bundle.FileName),
		slog.String("owner", owner),
		slog.String("category", category),
		slog.String("size", util.FormatBytes(int64(len(bundle.Payload)))),
		slog.String("sha256", checksum),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", bundle.FileName))
	c.Response().Header().Set("X-Checksum-SHA256", checksum)

	return c.Blob(http.StatusOK, "application/octet-stream", bundle.Payload)
}
