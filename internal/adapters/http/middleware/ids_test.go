package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

type capturedIDs struct {
	request, correlation string
}

func serveIDs(t *testing.T, headers map[string]string) (capturedIDs, *httptest.ResponseRecorder) {
	t.Helper()

	var got capturedIDs
	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got.request = middleware.RequestIDFromContext(r.Context())
		got.correlation = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/proposals", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		headers         map[string]string
		wantRequest     string // "" means a generated UUID
		wantCorrelation string // "" means same as request ID
	}{
		{
			name: "both generated",
		},
		{
			name:        "request id reused",
			headers:     map[string]string{"X-Request-ID": "req-abc"},
			wantRequest: "req-abc",
		},
		{
			name:            "correlation id reused",
			headers:         map[string]string{"X-Request-ID": "req-1", "X-Correlation-ID": "flow-7"},
			wantRequest:     "req-1",
			wantCorrelation: "flow-7",
		},
		{
			name:    "malformed request id replaced",
			headers: map[string]string{"X-Request-ID": "bad id\twith spaces"},
		},
		{
			name:    "oversized request id replaced",
			headers: map[string]string{"X-Request-ID": strings.Repeat("r", 129)},
		},
		{
			name:        "malformed correlation id falls back",
			headers:     map[string]string{"X-Request-ID": "req-2", "X-Correlation-ID": "héllo"},
			wantRequest: "req-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rec := serveIDs(t, tt.headers)

			if tt.wantRequest == "" {
				if !uuidPattern.MatchString(got.request) {
					t.Errorf("request ID = %q, want generated UUID v4", got.request)
				}
			} else if got.request != tt.wantRequest {
				t.Errorf("request ID = %q, want %q", got.request, tt.wantRequest)
			}

			wantCorrelation := tt.wantCorrelation
			if wantCorrelation == "" {
				wantCorrelation = got.request
			}
			if got.correlation != wantCorrelation {
				t.Errorf("correlation ID = %q, want %q", got.correlation, wantCorrelation)
			}

			if h := rec.Header().Get("X-Request-ID"); h != got.request {
				t.Errorf("response X-Request-ID = %q, want %q", h, got.request)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != got.correlation {
				t.Errorf("response X-Correlation-ID = %q, want %q", h, got.correlation)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	first, _ := serveIDs(t, nil)
	second, _ := serveIDs(t, nil)
	if first.request == second.request {
		t.Errorf("two requests share ID %q", first.request)
	}
}

func TestIDsFromContext_Unset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", id)
	}

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r"), "c")
	if middleware.RequestIDFromContext(ctx) != "r" || middleware.CorrelationIDFromContext(ctx) != "c" {
		t.Error("With* did not store the IDs")
	}
}
