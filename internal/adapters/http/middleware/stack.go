package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

// StackOptions configures the inbound middleware pipeline.
type StackOptions struct {
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics // nil disables server metrics
	AllowedOrigins []string           // empty disables CORS handling
	RequestTimeout time.Duration      // zero disables the per-request deadline
}

// Stack returns the service's middleware, outermost first, ready for
// chi.Router.Use:
//
//	Recovery → RequestID → CorrelationID → CORS → OpenTelemetry → Logging → Timeout
//
// Recovery sits outside everything so a panic in any layer still yields a
// problem response. Logging sits inside the span so log records carry the
// trace, and Timeout is innermost so its 504 is logged and traced like any
// other response.
func Stack(opts StackOptions) []func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		CORS(opts.AllowedOrigins),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
		Timeout(opts.RequestTimeout),
	}
}
