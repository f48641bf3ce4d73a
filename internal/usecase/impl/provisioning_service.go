package impl

import (
	"context"
	"log/slog"
	"strings"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/service"
	"fleet/internal/domain/tenant"
	"fleet/internal/usecase"
)

// provisioningService sequences the download-bundle flow: identifier,
// enrollment, credentials, archive. Enrollment and packaging are not
// transactional with each other; a device enrolled in step two stays
// enrolled even when packaging fails afterwards.
type provisioningService struct {
	enrollment usecase.EnrollmentUsecase
	identity   service.IdentityGenerator
	tokens     service.TokenService
	bundles    service.BundleBuilder
	logger     *slog.Logger
}

// NewProvisioningService creates a new provisioning service instance
func NewProvisioningService(
	enrollment usecase.EnrollmentUsecase,
	identity service.IdentityGenerator,
	tokens service.TokenService,
	bundles service.BundleBuilder,
	logger *slog.Logger,
) usecase.ProvisioningUsecase {
	return &provisioningService{
		enrollment: enrollment,
		identity:   identity,
		tokens:     tokens,
		bundles:    bundles,
		logger:     logger,
	}
}

// DownloadBundle enrolls a fresh device and returns its provisioning bundle.
func (s *provisioningService) DownloadBundle(ctx context.Context, owner, deviceName, category string) (*entity.ProvisioningBundle, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, domainerrors.ErrOwnerRequired
	}

	identifier := s.identity.NewDeviceIdentifier()

	// Enrollment failures propagate unchanged: a bundle is never built for
	// a device that could not be enrolled.
	if _, err := s.enrollment.Register(ctx, identifier, deviceName, owner); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.tokens.GenerateDeviceTokens(identifier)
	if err != nil {
		s.logger.Error("Failed to mint device credentials after enrollment",
			slog.String("device_identifier", identifier),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBundlePackaging.WithDetails("device " + identifier + " is enrolled but credentials could not be minted")
	}

	bundle, err := s.bundles.Build(ctx, service.BundleSpec{
		Category:         category,
		DeviceIdentifier: identifier,
		DeviceName:       deviceName + "_" + identifier,
		Owner:            owner,
		Tenant:           tenant.FromContext(ctx),
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
	})
	if err != nil {
		// The enrollment from above is deliberately kept.
		s.logger.Error("Failed to assemble provisioning bundle",
			slog.String("device_identifier", identifier),
			slog.String("category", category),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBundlePackaging.WithDetails("device " + identifier + " is enrolled but the bundle could not be assembled: " + err.Error())
	}

	return bundle, nil
}
