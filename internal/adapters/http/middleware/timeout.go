package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler gets a context carrying the
// deadline, so store transactions and validator calls stop with it. The
// handler's response is held back until it returns; if the deadline wins
// instead, the client gets a 504 problem response and late writes fail with
// http.ErrHandlerTimeout. A handler panic resurfaces on the serving
// goroutine. d <= 0 disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			held := &heldResponse{header: w.Header().Clone()}
			outcome := make(chan any, 1)
			go func() {
				defer func() { outcome <- recover() }()
				next.ServeHTTP(held, r.WithContext(ctx))
			}()

			select {
			case v := <-outcome:
				if v != nil {
					panic(v)
				}
				// A handler that gave up on the deadline without answering
				// still owes the client a 504.
				if !held.release(w) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r, ctx.Err())
				}
			case <-ctx.Done():
				held.abandon()
				// Nobody is listening to a client that hung up.
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r, ctx.Err())
				}
			}
		})
	}
}

type heldState int

const (
	holding heldState = iota
	released
	abandoned
)

// heldResponse buffers a handler's response until Timeout decides whether it
// reaches the client.
type heldResponse struct {
	mu     sync.Mutex
	header http.Header
	status int
	body   bytes.Buffer
	state  heldState
}

func (h *heldResponse) Header() http.Header {
	return h.header
}

func (h *heldResponse) WriteHeader(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 {
		h.status = code
	}
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if h.status == 0 {
		h.status = http.StatusOK
	}
	return h.body.Write(b)
}

// release copies the held response to w and reports whether the handler
// wrote anything. Headers are copied either way.
func (h *heldResponse) release(w http.ResponseWriter) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = released

	maps.Copy(w.Header(), h.header)
	if h.status == 0 {
		return false
	}
	w.WriteHeader(h.status)
	if h.body.Len() > 0 {
		_, _ = w.Write(h.body.Bytes())
	}
	return true
}

func (h *heldResponse) abandon() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = abandoned
}
