// Package utils provides general-purpose helper utilities used across the
// server and the client: typed context keys, JSON response writing, the
// shared HTTP client and the item id generator.
package utils

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the access middleware stores the
// caller's [models.Session].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the caller's session from the context.
// A missing or mistyped value yields the anonymous session and ok == false.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok {
		return models.Anonymous(), false
	}
	return session, true
}

// TraceIDCtxKey holds the request trace id set by the transport layer.
var TraceIDCtxKey = contextKey("traceID")

// TransportCtxKey names the transport ("http", "grpc") a call arrived on.
var TransportCtxKey = contextKey("transport")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}

// WithTransport returns a copy of ctx tagged with the transport name.
func WithTransport(ctx context.Context, transport string) context.Context {
	return context.WithValue(ctx, TransportCtxKey, transport)
}

// GetTransportFromContext returns the transport name or an empty string.
func GetTransportFromContext(ctx context.Context) string {
	transport, _ := ctx.Value(TransportCtxKey).(string)
	return transport
}
