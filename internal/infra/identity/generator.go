// Package identity implements device identifier generation.
package identity

import (
	"math/big"
	"strings"

	"fleet/internal/domain/service"

	"github.com/google/uuid"
)

// generator compresses a random 128-bit UUID into a base-36 short string.
// At the registry's expected scale the collision probability is negligible,
// so uniqueness is not re-checked against the store; the storage layer's
// unique constraint is the backstop.
type generator struct{}

// NewGenerator creates an IdentityGenerator.
func NewGenerator() service.IdentityGenerator {
	return &generator{}
}

// NewDeviceIdentifier returns a short, URL and filename safe identifier.
func (g *generator) NewDeviceIdentifier() string {
	id := uuid.New()

	var n big.Int
	n.SetBytes(id[:])

	return strings.ToLower(n.Text(36))
}
