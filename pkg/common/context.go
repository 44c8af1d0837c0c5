package common

import (
	"context"
	"time"
)

// ContextKey namespaces values this service stores in a request context
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyStartTime ContextKey = "start_time"
)

// WithRequestID stores the id that correlates logs and responses of one request
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// GetRequestID returns the request id, if one was stored
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(ContextKeyRequestID).(string)
	return requestID, ok
}

// WithStartTime records when the server began handling the request
func WithStartTime(ctx context.Context, startedAt time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyStartTime, startedAt)
}

// Elapsed reports how long ago the request started. Without a recorded start
// it falls back to fallback.
func Elapsed(ctx context.Context, fallback time.Time) time.Duration {
	startedAt, ok := ctx.Value(ContextKeyStartTime).(time.Time)
	if !ok {
		startedAt = fallback
	}
	return time.Since(startedAt)
}
