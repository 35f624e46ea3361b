package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// statusCapture records what a handler sent so that recovery, tracing and
// request logging can report it afterwards.
type statusCapture struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func capture(w http.ResponseWriter) *statusCapture {
	return &statusCapture{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards only the first status; later calls are dropped the same
// way net/http drops them.
func (c *statusCapture) WriteHeader(code int) {
	if c.committed {
		return
	}
	c.status, c.committed = code, true
	c.ResponseWriter.WriteHeader(code)
}

func (c *statusCapture) Write(b []byte) (int, error) {
	c.committed = true
	n, err := c.ResponseWriter.Write(b)
	c.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and Hijack.
func (c *statusCapture) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

// routePattern is the chi pattern that served r, such as
// "/api/v1/proposals/{id}/votes". chi fills it in while routing, so read it
// after next.ServeHTTP returns. Outside a chi router it is the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
