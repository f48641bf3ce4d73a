package middleware

import (
	"log/slog"

	"fleet/config"
	deliverycontext "fleet/internal/delivery/context"
	"fleet/internal/domain/tenant"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScopeMiddleware stamps every request with a request ID, a
// request-scoped logger and the tenant label the operation runs under.
type RequestScopeMiddleware struct {
	logger *slog.Logger
	tenant string
}

// NewRequestScopeMiddleware creates a new request scope middleware
func NewRequestScopeMiddleware(logger *slog.Logger, cfg *config.Config) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger: logger,
		tenant: cfg.Env.Tenant,
	}
}

// Process attaches the request ID, logger and tenant to the request context
func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Honor a client-supplied request ID, generate one otherwise
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		ctx = tenant.WithLabel(ctx, m.tenant)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
