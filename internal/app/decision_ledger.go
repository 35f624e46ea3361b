package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// List limits applied by DecisionLedger.List.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var _ ports.DecisionLedger = (*DecisionLedger)(nil)

// DecisionLedger implements ports.DecisionLedger on top of a DecisionStore.
type DecisionLedger struct {
	decisions ports.DecisionStore
	logger    *slog.Logger
	settings
}

// NewDecisionLedger creates a DecisionLedger.
func NewDecisionLedger(decisions ports.DecisionStore, logger *slog.Logger, opts ...Option) *DecisionLedger {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DecisionLedger{
		decisions: decisions,
		logger:    logger,
		settings:  newSettings(opts),
	}
}

// CreateDirect records a decision that did not go through voting.
func (l *DecisionLedger) CreateDirect(ctx context.Context, text, author, topic string) (_ *decision.Decision, err error) {
	ctx, span := startSpan(ctx, "DecisionLedger.CreateDirect")
	defer func() { endSpan(span, err) }()

	d := decision.New(text, author, topic, l.now())
	if err := d.Validate(); err != nil {
		return nil, err
	}

	created, err := l.decisions.Create(ctx, &d)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to create decision",
			slog.String("operation", "CreateDirect"),
			slog.String("author", author),
			slog.Any("error", err),
		)
		return nil, err
	}

	l.logger.InfoContext(ctx, "decision recorded", logging.DecisionID(created.ID))
	return created, nil
}

// CreateFromProposal materializes p, returning the existing decision when p
// was already converted. The unique source proposal constraint in the store
// settles concurrent conversions.
func (l *DecisionLedger) CreateFromProposal(ctx context.Context, p *proposal.Proposal) (_ *decision.Decision, err error) {
	if p == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"proposal": domain.MsgRequired}}
	}

	ctx, span := startSpan(ctx, "DecisionLedger.CreateFromProposal", attribute.Int64("proposal.id", p.ID))
	defer func() { endSpan(span, err) }()

	existing, err := l.decisions.GetBySourceProposal(ctx, p.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	d := decision.New(p.Text, p.Proposer, "", l.now())
	sourceID := p.ID
	d.SourceProposalID = &sourceID
	if err := d.Validate(); err != nil {
		return nil, err
	}

	created, err := l.decisions.Create(ctx, &d)
	if errors.Is(err, domain.ErrConflict) {
		return l.decisions.GetBySourceProposal(ctx, p.ID)
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to materialize proposal",
			slog.String("operation", "CreateFromProposal"),
			logging.ProposalID(p.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	l.logger.InfoContext(ctx, "proposal materialized",
		logging.ProposalID(p.ID),
		logging.DecisionID(created.ID),
	)
	return created, nil
}

// Get returns a single decision.
func (l *DecisionLedger) Get(ctx context.Context, id int64) (*decision.Decision, error) {
	return l.decisions.Get(ctx, id)
}

// Update edits a decision. The pre-edit text is appended to history in the
// same store transaction that replaces the current text.
func (l *DecisionLedger) Update(ctx context.Context, id int64, newText, editor string) (_ *decision.Decision, err error) {
	ctx, span := startSpan(ctx, "DecisionLedger.Update", attribute.Int64("decision.id", id))
	defer func() { endSpan(span, err) }()

	updated, err := l.decisions.Update(ctx, id, func(d *decision.Decision) (decision.HistoryEntry, error) {
		return d.Edit(newText, editor, l.now())
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrNotFound) {
			l.logger.ErrorContext(ctx, "failed to update decision",
				slog.String("operation", "Update"),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	l.metrics.DecisionEdits.Add(ctx, 1)
	l.logger.InfoContext(ctx, "decision edited",
		logging.DecisionID(id),
		slog.String("editor", editor),
		slog.Int("edit_count", updated.EditCount),
	)
	return updated, nil
}

// History returns the edit history, most recent first.
func (l *DecisionLedger) History(ctx context.Context, id int64) ([]decision.HistoryEntry, error) {
	return l.decisions.History(ctx, id)
}

// Search matches keyword against the current text and topic.
func (l *DecisionLedger) Search(ctx context.Context, keyword string) ([]decision.Decision, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"keyword": domain.MsgRequired}}
	}
	return l.decisions.Search(ctx, keyword)
}

// List returns the most recent decisions. A non-positive limit selects
// DefaultListLimit; limits above MaxListLimit are clamped.
func (l *DecisionLedger) List(ctx context.Context, limit int) ([]decision.Decision, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return l.decisions.List(ctx, limit)
}

// ListBetween returns decisions created in [start, end).
func (l *DecisionLedger) ListBetween(ctx context.Context, start, end time.Time) ([]decision.Decision, error) {
	if !end.After(start) {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"end": fmt.Sprintf("must be after start %s", start.Format(time.RFC3339)),
		}}
	}
	return l.decisions.ListBetween(ctx, start, end)
}

// Today returns decisions created during the current day in the clock's
// location.
func (l *DecisionLedger) Today(ctx context.Context) ([]decision.Decision, error) {
	start, end := decision.DayBounds(l.now())
	return l.decisions.ListBetween(ctx, start, end)
}
