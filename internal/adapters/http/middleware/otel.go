package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/decisionnote/internal/adapters/http/middleware"

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context the caller sent, and records request duration and count. Once the
// router has run, the span is renamed to "METHOD /route/{pattern}" so span
// names stay bounded however many proposals exist. A nil metrics skips
// recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
				),
			)
			defer span.End()

			rw := capture(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := routePattern(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(semconv.HTTPRoute(route), semconv.HTTPResponseStatusCode(rw.status))
			if rw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.status))
			}

			if metrics != nil {
				recordServerRequest(ctx, metrics, r.Method, rw.status, time.Since(start))
			}
		})
	}
}

func recordServerRequest(ctx context.Context, m *telemetry.Metrics, method string, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}
