package usecase

import (
	"context"

	"fleet/internal/domain/entity"
)

// ProvisioningUsecase produces ready-to-flash bundles for new devices. The
// flow enrolls the device first and only then packages the artifact; there
// is no download-without-registering path.
type ProvisioningUsecase interface {
	// DownloadBundle mints a fresh identifier and credential pair, enrolls
	// the device under the given owner, and returns the packaged bundle.
	// If packaging fails after enrollment succeeded, the enrollment is
	// kept; no compensating de-registration is performed.
	DownloadBundle(ctx context.Context, owner, deviceName, category string) (*entity.ProvisioningBundle, error)
}
