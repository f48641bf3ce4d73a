package service

import (
	"context"

	"fleet/internal/domain/entity"
)

// BundleSpec carries everything the builder injects into a provisioning
// bundle. DeviceName already includes the generated identifier suffix.
type BundleSpec struct {
	Category         string
	DeviceIdentifier string
	DeviceName       string
	Owner            string
	Tenant           string
	AccessToken      string
	RefreshToken     string
}

// BundleBuilder assembles the downloadable, per-device-customized archive.
type BundleBuilder interface {
	// Build renders the category template set with the spec values and
	// returns the packaged archive. An unknown category or any assembly
	// failure is returned as an error; the caller decides whether the
	// enrollment created beforehand is kept (it is).
	Build(ctx context.Context, spec BundleSpec) (*entity.ProvisioningBundle, error)
}
