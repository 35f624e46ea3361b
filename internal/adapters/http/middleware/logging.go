package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
)

// Logging gives each request a child logger tagged with its request and
// correlation IDs, stores it for logging.FromContext, and writes one
// completion line with route, status, size and duration. The arrival line and
// the redacted headers are logged at DEBUG only.
//
// Completion is WARN for 4xx and ERROR for 5xx so rejected votes and store
// outages stand out.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)

			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					headerGroup(r.Header),
				)
			}

			rw := capture(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, levelFor(rw.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
