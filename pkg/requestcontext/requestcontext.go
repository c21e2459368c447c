// Package requestcontext stores request-scoped values shared by middleware,
// handlers, and services: the correlation id and the request's "now".
package requestcontext

import (
	"context"
	"time"
)

type (
	requestIDKey struct{}
	nowKey       struct{}
)

// WithRequestID stores the correlation id for the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the correlation id, or "" outside a request.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithTime pins "now" for everything downstream of ctx.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, t)
}

// Now returns the pinned request time, falling back to the wall clock for
// workers, the seeder, and tests that do not pin a time.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
