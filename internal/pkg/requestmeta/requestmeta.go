// Package requestmeta carries per-request identifiers through contexts so
// inbound middleware and the outbound vendor client agree on the keys.
package requestmeta

import "context"

// HeaderRequestID is the header used both on the inbound surface and on
// outbound vendor calls.
const HeaderRequestID = "X-Request-Id"

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID extracts the request ID using the comma-ok idiom. Empty when
// the context carries none (e.g. in unit tests).
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
