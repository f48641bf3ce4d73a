// Package pubsub publishes device lifecycle events.
package pubsub

import (
	"context"
	"log/slog"

	"fleet/config"
	"fleet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const providerLocal = "local"

// noopPublisher is a no-op implementation when event publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDeviceEvent(_ context.Context, event *service.DeviceEvent) error {
	p.logger.Debug("[NoopPublisher] Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("device_identifier", event.DeviceIdentifier),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Publisher
	logger := params.Logger

	// If publishing is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event publishing not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case providerLocal:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for the local publisher")
		}
		logger.Info("Using local HTTP publisher for device events",
			slog.String("endpoint", cfg.Endpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.Endpoint, logger)

	default:
		return nil, errors.Errorf("unknown publisher provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
