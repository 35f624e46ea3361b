// Package natsbus publishes decision and proposal events to NATS. Each event
// goes to "<prefix>.<event type>", e.g. "decisionnote.proposal.approved",
// with the event ID in the Nats-Msg-Id header so JetStream streams bound to
// those subjects can deduplicate redeliveries.
package natsbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/events/envelope"
	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Notifier      = (*Publisher)(nil)
	_ ports.HealthChecker = (*Publisher)(nil)
)

const (
	clientName        = "decisionnote"
	reconnectWait     = 2 * time.Second
	defaultFlushAfter = 5 * time.Second
)

// Publisher is a ports.Notifier backed by a NATS connection.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

// Connect dials url and returns a Publisher that owns the connection.
// Reconnects are unlimited; state changes are logged.
func Connect(url, prefix string, logger *slog.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrlRedacted()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}
	return New(conn, prefix), nil
}

// New wraps an existing connection.
func New(conn *nats.Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: strings.Trim(prefix, ".")}
}

// Subject returns the subject an event type is published on.
func (p *Publisher) Subject(t ports.EventType) string {
	if p.prefix == "" {
		return string(t)
	}
	return p.prefix + "." + string(t)
}

// Name implements ports.Notifier and ports.HealthChecker.
func (p *Publisher) Name() string {
	return "nats"
}

// Notify publishes the event envelope and waits for the server to
// acknowledge the flush, so a returned nil means the server has the message.
func (p *Publisher) Notify(ctx context.Context, event ports.Event) error {
	body, err := envelope.Marshal(&event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(p.Subject(event.Type))
	msg.Header.Set(nats.MsgIdHdr, event.ID)
	msg.Header.Set("Content-Type", envelope.ContentType)
	msg.Data = body

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing %s: %w: %w", msg.Subject, domain.ErrUnavailable, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultFlushAfter)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flushing %s: %w: %w", msg.Subject, domain.ErrUnavailable, err)
	}
	return nil
}

// HealthCheck reports an error unless the connection is established.
func (p *Publisher) HealthCheck(_ context.Context) error {
	if status := p.conn.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats: connection %s", status)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	if err := p.conn.Drain(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		return fmt.Errorf("draining nats connection: %w", err)
	}
	return nil
}
