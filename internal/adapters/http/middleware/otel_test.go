package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

// Span tests swap the global TracerProvider, so they do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

func spanAttrs(kvs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		wantName   string
		wantRoute  string
		wantErrSet bool
	}{
		{
			name:   "routed vote",
			method: http.MethodPost, target: "/api/v1/proposals/42/votes", status: http.StatusOK,
			wantName: "POST /api/v1/proposals/{id}/votes", wantRoute: "/api/v1/proposals/{id}/votes",
		},
		{
			name:   "routed miss keeps pattern",
			method: http.MethodGet, target: "/api/v1/decisions/9", status: http.StatusNotFound,
			wantName: "GET /api/v1/decisions/{id}", wantRoute: "/api/v1/decisions/{id}",
		},
		{
			name:   "server error marks span",
			method: http.MethodPut, target: "/api/v1/decisions/3", status: http.StatusServiceUnavailable,
			wantName: "PUT /api/v1/decisions/{id}", wantRoute: "/api/v1/decisions/{id}", wantErrSet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			r := chi.NewRouter()
			r.Use(middleware.OpenTelemetry(nil))
			reply := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(tt.status) }
			r.Post("/api/v1/proposals/{id}/votes", reply)
			r.Get("/api/v1/decisions/{id}", reply)
			r.Put("/api/v1/decisions/{id}", reply)

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("recorded %d spans, want 1", len(spans))
			}
			span := spans[0]
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}

			attrs := spanAttrs(span.Attributes)
			if attrs["http.request.method"] != tt.method {
				t.Errorf("http.request.method = %v, want %s", attrs["http.request.method"], tt.method)
			}
			if attrs["http.route"] != tt.wantRoute {
				t.Errorf("http.route = %v, want %s", attrs["http.route"], tt.wantRoute)
			}
			if attrs["url.path"] != tt.target {
				t.Errorf("url.path = %v, want %s", attrs["url.path"], tt.target)
			}
			if attrs["http.response.status_code"] != int64(tt.status) {
				t.Errorf("http.response.status_code = %v, want %d", attrs["http.response.status_code"], tt.status)
			}
			if got := span.Status.Code == codes.Error; got != tt.wantErrSet {
				t.Errorf("span error status = %v, want %v", got, tt.wantErrSet)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz/ready", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the caller's", got)
	}
	if got := spans[0].Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span ID = %s, want the caller's", got)
	}
	if spans[0].Name != "GET /healthz/ready" {
		t.Errorf("span name = %q, want raw path outside a router", spans[0].Name)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "middleware-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	handler := middleware.OpenTelemetry(metrics)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	for _, p := range []string{"/ok", "/ok", "/bad"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	byResult := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "http.server.request.total" {
				continue
			}
			for _, dp := range md.Data.(metricdata.Sum[int64]).DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrResult)
				byResult[v.AsString()] += dp.Value
			}
		}
	}
	if byResult["success"] != 2 || byResult["error"] != 1 {
		t.Errorf("request totals = %v, want success=2 error=1", byResult)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}
