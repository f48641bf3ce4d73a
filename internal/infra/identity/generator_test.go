package identity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identifierPattern = regexp.MustCompile(`^[0-9a-z]+$`)

func TestGenerator_NewDeviceIdentifier_Format(t *testing.T) {
	gen := NewGenerator()

	id := gen.NewDeviceIdentifier()
	require.NotEmpty(t, id)
	assert.Regexp(t, identifierPattern, id)
	// 128 bits in base 36 never exceeds 25 digits.
	assert.LessOrEqual(t, len(id), 25)
}

func TestGenerator_NewDeviceIdentifier_Unique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.NewDeviceIdentifier()
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %q", id)
		seen[id] = struct{}{}
	}
}
