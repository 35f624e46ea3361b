package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/decisionnote/internal/platform/httpclient"
)

// AnySuccess accepts every 2xx status when passed as wantStatus.
const AnySuccess = 0

// drainLimit bounds how much of an unread body is discarded so the
// connection can be reused.
const drainLimit = 4 << 10

// Requester runs JSON request/response exchanges with one peer over a
// resilient httpclient.Client. Non-matching statuses become *RemoteError.
type Requester struct {
	client  *httpclient.Client
	headers http.Header
	logger  *slog.Logger
}

// RequesterOption configures a Requester.
type RequesterOption func(*Requester)

// WithHeader sends a fixed header on every request, such as the webhook
// secret. Empty values are skipped.
func WithHeader(key, value string) RequesterOption {
	return func(r *Requester) {
		if value != "" {
			r.headers.Set(key, value)
		}
	}
}

func NewRequester(client *httpclient.Client, logger *slog.Logger, opts ...RequesterOption) *Requester {
	r := &Requester{client: client, headers: http.Header{}, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do sends method to BaseURL()+path. reqBody is JSON-encoded unless it is
// already a []byte. The response must carry wantStatus (any 2xx for
// AnySuccess); respBody, when non-nil, receives the decoded JSON reply.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.release(ctx, resp)
	}
	switch {
	case resp != nil && !statusMatches(resp.StatusCode, wantStatus):
		// Exhausted retries on a 5xx come back with both resp and err;
		// the response says more than the retry error.
		r.logger.WarnContext(ctx, "peer answered unexpected status",
			slog.String("peer", r.client.Name()),
			slog.String("method", method),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(r.client.Name(), resp)
	case err != nil:
		r.logger.WarnContext(ctx, "peer request failed",
			slog.String("peer", r.client.Name()),
			slog.String("method", method),
			slog.String("url", req.URL.Redacted()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, req.URL.Path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	body := io.Reader(http.NoBody)
	if reqBody != nil {
		raw, ok := reqBody.([]byte)
		if !ok {
			var err error
			if raw, err = json.Marshal(reqBody); err != nil {
				return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
			}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	for key, values := range r.headers {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// release drains and closes resp.Body.
func (r *Requester) release(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
	if err := resp.Body.Close(); err != nil {
		r.logger.DebugContext(ctx, "closing response body", slog.Any("error", err))
	}
}

// BaseURL is the peer's base URL.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState is the breaker state of the underlying client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.State()
}

func statusMatches(got, want int) bool {
	if want == AnySuccess {
		return got >= http.StatusOK && got < http.StatusMultipleChoices
	}
	return got == want
}
