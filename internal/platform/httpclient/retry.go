package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/platform/config"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// backoff returns the jittered exponential delay before retry number
// attempt (1-indexed), capped at maxInterval before jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay, 0))
}

// delay prefers a server-provided Retry-After over the computed backoff, but
// never waits longer than maxInterval.
func (p retryPolicy) delay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return min(retryAfter, p.maxInterval)
	}
	return p.backoff(attempt)
}

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. It returns how many times the request was resent. The response
// goes through resp to keep the bodyclose linter quiet; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) (int, error) {
	if c.policy.maxAttempts <= 0 {
		return 0, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.policy.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return 0, err
	}

	attempts := c.policy.maxAttempts
	if !resendable(req) {
		attempts = 1
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, c.policy.delay(attempt, retryAfter), lastErr); err != nil {
				return attempt - 1, err
			}
		}

		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return attempt, err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return attempt, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.name)
		if attempt == attempts-1 {
			*resp = r
			return attempt, lastErr
		}

		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		drainResponseBody(r)
	}

	return attempts - 1, lastErr
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter reads a Retry-After value in either delta-seconds or
// HTTP-date form. Unparseable or past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return body, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the connection be reused before the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable treats everything except caller cancellation as transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus: 429 and every 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
