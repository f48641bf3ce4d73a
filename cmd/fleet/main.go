package main

import (
	"context"
	"log/slog"
	"os"

	"fleet/config"
	"fleet/internal/delivery"
	"fleet/internal/domain/service"
	"fleet/internal/delivery/http"
	"fleet/internal/delivery/http/middleware"
	"fleet/internal/delivery/http/router/handler"
	"fleet/internal/infra/bundle"
	"fleet/internal/infra/identity"
	logs "fleet/internal/infra/log"
	"fleet/internal/infra/persistence/postgres"
	"fleet/internal/infra/pubsub"
	"fleet/internal/infra/qrcode"
	"fleet/internal/infra/token"
	"fleet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewGenerator,
			token.NewJWTService,
			newQRCodeService,
			bundle.NewBuilder,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service from configuration
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.Bundle == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Bundle.QRSize, cfg.Bundle.QRErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEnrollmentService,
			impl.NewProvisioningService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestScopeMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewProvisioningHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
