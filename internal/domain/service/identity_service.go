// Package service defines interfaces for domain services whose concrete
// implementations live under internal/infra.
package service

// IdentityGenerator mints collision-resistant device identifiers. Uniqueness
// is probabilistic; it is never re-verified against the registry before use.
// Generation is pure apart from consuming entropy.
type IdentityGenerator interface {
	// NewDeviceIdentifier returns a short, URL and filename safe identifier.
	NewDeviceIdentifier() string
}
