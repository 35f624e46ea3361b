package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
)

// errPanic is what the client sees. The panic value stays in the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged 500 problem response. When the
// handler already started its response, only the log line is written.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
//
// Recovery sits outside RequestID, so the ID comes from the echoed response
// header rather than the context.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := capture(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logPanic(logger, r, w.Header().Get(headerRequestID), v)
				if !rw.committed {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, requestID string, v any) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestID),
		slog.String("stack", string(debug.Stack())),
	)
}
