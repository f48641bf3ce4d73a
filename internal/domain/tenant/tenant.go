// Package tenant carries the execution-context tenant label as an explicit
// context value. Every registry call is scoped to exactly one tenant; this
// service runs with a single configurable default, but nothing below the
// delivery layer assumes process-wide tenant state.
package tenant

import (
	"context"
)

type contextKey struct{}

// DefaultLabel is the tenant used when the context carries none.
const DefaultLabel = "default"

// WithLabel returns a new context scoped to the given tenant label.
func WithLabel(ctx context.Context, label string) context.Context {
	if label == "" {
		label = DefaultLabel
	}

	return context.WithValue(ctx, contextKey{}, label)
}

// FromContext extracts the tenant label from the context, falling back to
// DefaultLabel.
func FromContext(ctx context.Context) string {
	if label, ok := ctx.Value(contextKey{}).(string); ok && label != "" {
		return label
	}

	return DefaultLabel
}
