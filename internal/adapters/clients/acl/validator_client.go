package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/clients/acl/validator"
	"github.com/jsamuelsen11/decisionnote/internal/platform/httpclient"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TextValidator = (*ValidatorClient)(nil)
	_ ports.HealthChecker = (*ValidatorClient)(nil)
)

const validatePath = "/validate"

// ValidatorClient asks the remote validation service whether text reads like
// a decision. When the service cannot give a verdict (network failure, open
// circuit, 5xx, malformed body) it falls back to a local validator so the
// gate never blocks on an outage.
type ValidatorClient struct {
	req      *Requester
	fallback ports.TextValidator
	logger   *slog.Logger
}

// NewValidatorClient creates a client for the remote validator. fallback may
// be nil, in which case remote failures are returned to the caller.
func NewValidatorClient(req *Requester, fallback ports.TextValidator, logger *slog.Logger) *ValidatorClient {
	return &ValidatorClient{req: req, fallback: fallback, logger: logger}
}

// Validate implements ports.TextValidator.
func (c *ValidatorClient) Validate(ctx context.Context, text string) (ports.ValidResult, error) {
	result, err := c.remote(ctx, text)
	if err == nil {
		return result, nil
	}

	if c.fallback == nil {
		return ports.ValidResult{}, err
	}

	logging.FromContext(ctx).WarnContext(ctx, "remote validator unavailable, using fallback",
		slog.String("operation", "ValidatorClient.Validate"),
		slog.String("breaker", c.req.CircuitBreakerState()),
		slog.Any("error", err),
	)
	return c.fallback.Validate(ctx, text)
}

// remote asks the service for a verdict. The check has no side effects, so
// it is keyed to let the client resend it.
func (c *ValidatorClient) remote(ctx context.Context, text string) (ports.ValidResult, error) {
	ctx = httpclient.WithIdempotencyKey(ctx, uuid.NewString())

	var resp validator.ValidateResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, validatePath, http.StatusOK, validator.ToValidateRequest(text), &resp); err != nil {
		return ports.ValidResult{}, fmt.Errorf("calling validator: %w", err)
	}

	result, err := validator.ToValidResult(&resp)
	if err != nil {
		return ports.ValidResult{}, fmt.Errorf("calling validator: %w", err)
	}
	return result, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ValidatorClient) Name() string {
	return "validator"
}

// HealthCheck reports the remote validator's availability from the circuit
// breaker state. No network call is made. An open breaker only degrades the
// gate to the fallback, so readiness should not depend on it being closed.
func (c *ValidatorClient) HealthCheck(_ context.Context) error {
	return breakerHealth(c.Name(), c.req.CircuitBreakerState())
}
