// Package logging builds the service's slog logger and carries request-scoped
// loggers through context.
//
// Construction, with attributes stamped on every record:
//
//	logger := logging.New("info", "json", os.Stderr,
//	    slog.String("service", "decisionnote"),
//	)
//
// Request-scoped loggers (the HTTP middleware adds request_id and
// correlation_id):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logs name the operation, the entity and the full error chain. The
// attribute helpers keep entity keys consistent across packages:
//
//	logger.ErrorContext(ctx, "failed to cast vote",
//	    slog.String("operation", "VotingEngine.Cast"),
//	    logging.ProposalID(id),
//	    logging.Voter(voter),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w.
//
// level is one of "debug", "info", "warn" or "error" (case-insensitive,
// default info); debug also records the source location. format "text"
// selects the text handler, anything else JSON. Sensitive fields and values
// are redacted before they reach w.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: replaceAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Entity attribute keys shared by every package that logs domain objects.
const (
	KeyProposalID = "proposal_id"
	KeyDecisionID = "decision_id"
	KeyVoter      = "voter"
	KeySink       = "sink"
	KeyEventType  = "event_type"
	KeyEventID    = "event_id"
)

func ProposalID(id int64) slog.Attr { return slog.Int64(KeyProposalID, id) }
func DecisionID(id int64) slog.Attr { return slog.Int64(KeyDecisionID, id) }
func Voter(name string) slog.Attr   { return slog.String(KeyVoter, name) }
func Sink(name string) slog.Attr    { return slog.String(KeySink, name) }
func EventType(t string) slog.Attr  { return slog.String(KeyEventType, t) }
func EventID(id string) slog.Attr   { return slog.String(KeyEventID, id) }
