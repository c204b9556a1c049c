// Package correlation generates and carries the per-request correlation id.
// The id lives exactly as long as its request: assigned when the request is
// received, attached to every log line and the outbound remote call, and
// discarded when the response is sent. It is never part of a success payload.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh correlation id.
func New() string {
	return uuid.NewString()
}

// WithContext attaches id to ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id carried by ctx, or "" if none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
