package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/decisionnote/internal/platform/httpclient"
)

const (
	headerRequestID     = httpclient.RequestIDHeader
	headerCorrelationID = httpclient.CorrelationIDHeader

	// maxIDLength caps caller-supplied IDs so they cannot bloat every log line.
	maxIDLength = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id for this package and for outbound httpclient calls,
// so validator and webhook requests carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID is the correlation-ID counterpart of WithRequestID.
// Published events do not carry it; they use their own event IDs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses a well-formed X-Request-ID header or mints a UUID v4.
func RequestID() func(http.Handler) http.Handler {
	return propagate(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a well-formed X-Correlation-ID header or falls back to
// the request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagate(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

// propagate reads header from the request, substitutes fallback when the value
// is malformed, then stores and echoes the result.
func propagate(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !isWellFormedID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// isWellFormedID accepts non-empty visible ASCII up to maxIDLength.
func isWellFormedID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
