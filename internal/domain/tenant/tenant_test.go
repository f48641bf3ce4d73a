package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Default(t *testing.T) {
	assert.Equal(t, DefaultLabel, FromContext(context.Background()))
}

func TestFromContext_WithLabel(t *testing.T) {
	ctx := WithLabel(context.Background(), "acme")
	assert.Equal(t, "acme", FromContext(ctx))
}

func TestFromContext_EmptyLabelFallsBack(t *testing.T) {
	ctx := WithLabel(context.Background(), "")
	assert.Equal(t, DefaultLabel, FromContext(ctx))
}
