package requestid

import "context"

type contextKey string

const (
	Key    contextKey = "request_id"
	Header            = "X-Request-ID"
)

// FromContext returns the request id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(Key).(string)
	return id, ok && id != ""
}

// WithID stores a request id in ctx.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, Key, id)
}
