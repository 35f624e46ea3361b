package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/middleware"
)

func TestTimeout_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limit      time.Duration
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
		wantType   string
	}{
		{
			name:  "finished in time",
			limit: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/proposals/7")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":7}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":7}`,
			wantHeader: "/api/v1/proposals/7",
		},
		{
			name:       "implicit ok",
			limit:      time.Second,
			handler:    func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("listed")) },
			wantStatus: http.StatusOK,
			wantBody:   "listed",
		},
		{
			name:       "silent handler",
			limit:      time.Second,
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "deadline exceeded",
			limit:      30 * time.Millisecond,
			handler:    func(_ http.ResponseWriter, r *http.Request) { <-r.Context().Done() },
			wantStatus: http.StatusGatewayTimeout,
			wantType:   "application/problem+json",
		},
		{
			name:       "disabled",
			limit:      0,
			handler:    func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(tt.limit)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/proposals", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantHeader != "" && rec.Header().Get("Location") != tt.wantHeader {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantHeader)
			}
			if tt.wantType != "" && rec.Header().Get("Content-Type") != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.wantType)
			}
		})
	}
}

func TestTimeout_Deadline(t *testing.T) {
	t.Parallel()

	for _, limit := range []time.Duration{time.Second, 0} {
		var hasDeadline bool
		middleware.Timeout(limit)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if want := limit > 0; hasDeadline != want {
			t.Errorf("Timeout(%v): context deadline set = %v, want %v", limit, hasDeadline, want)
		}
	}
}

func TestTimeout_UpstreamHeadersSurvive(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rec.Header().Set("X-Request-ID", "req-77")
	middleware.Timeout(20*time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-77" {
		t.Errorf("X-Request-ID = %q, want req-77", got)
	}
}

func TestTimeout_LateWriteIsRejected(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(50 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", http.NoBody))

	select {
	case err := <-writeErr:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write error = %v, want ErrHandlerTimeout", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never attempted its late write")
	}
	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
}

func TestTimeout_PanicReachesCaller(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	defer func() {
		if v := recover(); v != "boom" {
			t.Errorf("recovered %v, want boom", v)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned normally, want panic")
}
