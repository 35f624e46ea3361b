package httpclient

import (
	"context"
	"net/http"
)

// Header names injected into outbound requests.
const (
	RequestIDHeader      = "X-Request-ID"
	CorrelationIDHeader  = "X-Correlation-ID"
	IdempotencyKeyHeader = "Idempotency-Key"
)

type (
	requestIDKey      struct{}
	correlationIDKey  struct{}
	idempotencyKeyKey struct{}
)

// WithRequestID stores the inbound request ID so outbound calls forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls forward it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// WithIdempotencyKey marks outbound calls made with ctx as safe to resend.
// The key travels in the Idempotency-Key header and stays the same across
// retry attempts.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyKey{}, key)
}

func injectHeaders(ctx context.Context, req *http.Request) {
	for key, header := range map[any]string{
		requestIDKey{}:      RequestIDHeader,
		correlationIDKey{}:  CorrelationIDHeader,
		idempotencyKeyKey{}: IdempotencyKeyHeader,
	} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			req.Header.Set(header, v)
		}
	}
}

// resendable reports whether req may be sent more than once.
func resendable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(IdempotencyKeyHeader) != ""
}
