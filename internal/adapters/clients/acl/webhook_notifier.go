package acl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/events/envelope"
	"github.com/jsamuelsen11/decisionnote/internal/platform/httpclient"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Notifier      = (*WebhookNotifier)(nil)
	_ ports.HealthChecker = (*WebhookNotifier)(nil)
)

// WebhookSecretHeader carries the shared secret configured for a webhook.
const WebhookSecretHeader = "X-Hook-Secret"

// WebhookNotifier POSTs every event envelope to one webhook URL. The
// Requester's base URL is the full webhook URL, so requests use an empty path.
type WebhookNotifier struct {
	req  *Requester
	name string
}

// NewWebhookNotifier creates a notifier for the webhook behind req.
func NewWebhookNotifier(req *Requester) *WebhookNotifier {
	return &WebhookNotifier{req: req, name: WebhookName(req.BaseURL())}
}

// WebhookName derives a stable sink name from a webhook URL without leaking
// its path or query, which often carry tokens.
func WebhookName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "webhook"
	}
	return "webhook:" + u.Host
}

// Name implements ports.Notifier and ports.HealthChecker.
func (n *WebhookNotifier) Name() string {
	return n.name
}

// Notify delivers the event. Any 2xx response counts as delivered. The event
// ID doubles as the idempotency key, so failed deliveries are resent and
// receivers can discard duplicates.
func (n *WebhookNotifier) Notify(ctx context.Context, event ports.Event) error {
	body, err := envelope.Marshal(&event)
	if err != nil {
		return err
	}
	if event.ID != "" {
		ctx = httpclient.WithIdempotencyKey(ctx, event.ID)
	}
	if err := n.req.Do(ctx, http.MethodPost, "", AnySuccess, body, nil); err != nil {
		return fmt.Errorf("delivering %s to %s: %w", event.Type, n.name, err)
	}
	return nil
}

// HealthCheck reports the webhook's circuit breaker state.
func (n *WebhookNotifier) HealthCheck(_ context.Context) error {
	return breakerHealth(n.name, n.req.CircuitBreakerState())
}
