package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/decisionnote/internal/app/fanout"
	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// Compile-time check that Workflow implements ports.Workflow.
var _ ports.Workflow = (*Workflow)(nil)

// notifyTimeout bounds one round of notification delivery. Delivery runs
// detached from the request context so a disconnecting client does not cut
// it short.
const notifyTimeout = 10 * time.Second

// WorkflowConfig carries the settings Workflow passes to the engine.
type WorkflowConfig struct {
	Policy proposal.Policy
	// MaxNotifyWorkers bounds concurrent deliveries per event.
	MaxNotifyWorkers int
}

// Workflow implements the inbound service ports. It validates free text
// before any write, routes votes through the engine, converts approved
// proposals, and notifies every sink about the result.
type Workflow struct {
	engine    ports.VotingEngine
	ledger    ports.DecisionLedger
	validator ports.TextValidator
	notifiers []ports.Notifier
	cfg       WorkflowConfig
	logger    *slog.Logger
	settings
}

// NewWorkflow creates a Workflow. validator may be nil to skip the text gate;
// notifiers may be empty.
func NewWorkflow(
	engine ports.VotingEngine,
	ledger ports.DecisionLedger,
	validator ports.TextValidator,
	notifiers []ports.Notifier,
	cfg WorkflowConfig,
	logger *slog.Logger,
	opts ...Option,
) *Workflow {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.MaxNotifyWorkers < 1 {
		cfg.MaxNotifyWorkers = 4
	}
	return &Workflow{
		engine:    engine,
		ledger:    ledger,
		validator: validator,
		notifiers: notifiers,
		cfg:       cfg,
		logger:    logger,
		settings:  newSettings(opts),
	}
}

// --- decisions ---

// RecordDecision validates text and records it as a decision.
func (w *Workflow) RecordDecision(ctx context.Context, text, author, topic string) (*decision.Decision, error) {
	if err := w.gate(ctx, text); err != nil {
		return nil, err
	}

	d, err := w.ledger.CreateDirect(ctx, text, author, topic)
	if err != nil {
		return nil, err
	}

	w.notify(ctx, ports.Event{Type: ports.EventDecisionCreated, Decision: d})
	return d, nil
}

// EditDecision validates the new text and applies the edit.
func (w *Workflow) EditDecision(ctx context.Context, id int64, text, editor string) (*decision.Decision, error) {
	if err := w.gate(ctx, text); err != nil {
		return nil, err
	}

	d, err := w.ledger.Update(ctx, id, text, editor)
	if err != nil {
		return nil, err
	}

	w.notify(ctx, ports.Event{Type: ports.EventDecisionUpdated, Decision: d})
	return d, nil
}

func (w *Workflow) GetDecision(ctx context.Context, id int64) (*decision.Decision, error) {
	return w.ledger.Get(ctx, id)
}

func (w *Workflow) DecisionHistory(ctx context.Context, id int64) ([]decision.HistoryEntry, error) {
	return w.ledger.History(ctx, id)
}

func (w *Workflow) ListDecisions(ctx context.Context, limit int) ([]decision.Decision, error) {
	return w.ledger.List(ctx, limit)
}

func (w *Workflow) SearchDecisions(ctx context.Context, keyword string) ([]decision.Decision, error) {
	return w.ledger.Search(ctx, keyword)
}

func (w *Workflow) DecisionsToday(ctx context.Context) ([]decision.Decision, error) {
	return w.ledger.Today(ctx)
}

// --- proposals ---

// Propose validates text and opens a proposal under the configured policy.
func (w *Workflow) Propose(ctx context.Context, text, proposer string) (*proposal.Proposal, error) {
	if err := w.gate(ctx, text); err != nil {
		return nil, err
	}

	p, err := w.engine.CreateProposal(ctx, text, proposer, w.cfg.Policy)
	if err != nil {
		return nil, err
	}

	w.notify(ctx, ports.Event{Type: ports.EventProposalCreated, Proposal: p})
	return p, nil
}

// Vote casts a vote. When the proposal is approved, by this vote or an
// earlier one whose conversion failed, it is converted to a decision. The
// vote is already committed by then, so a failed conversion is logged and
// leaves receipt.Decision nil; a later vote retries it.
func (w *Workflow) Vote(ctx context.Context, id int64, voter string, kind proposal.VoteKind) (*ports.VoteReceipt, error) {
	res, err := w.engine.CastVote(ctx, id, voter, kind, w.cfg.Policy)
	if err != nil {
		return nil, err
	}

	receipt := &ports.VoteReceipt{Proposal: res.Proposal, Outcome: res.Outcome}

	if res.Proposal.Status == proposal.StatusApproved {
		d, err := w.engine.ConvertToDecision(ctx, res.Proposal)
		if err != nil {
			w.logger.ErrorContext(ctx, "approved proposal not converted",
				slog.String("operation", "Vote"),
				logging.ProposalID(id),
				slog.String("outcome", string(res.Outcome)),
				slog.Any("error", err),
			)
		}
		receipt.Decision = d
	}

	switch res.Outcome {
	case proposal.OutcomeRecorded:
		w.notify(ctx, ports.Event{Type: ports.EventProposalVoted, Proposal: res.Proposal})
	case proposal.OutcomeApproved:
		w.notify(ctx, ports.Event{Type: ports.EventProposalApproved, Proposal: res.Proposal, Decision: receipt.Decision})
	case proposal.OutcomeRejected:
		w.notify(ctx, ports.Event{Type: ports.EventProposalRejected, Proposal: res.Proposal})
	case proposal.OutcomeExpired:
		w.notify(ctx, ports.Event{Type: ports.EventProposalExpired, Proposal: res.Proposal})
	case proposal.OutcomeDuplicate, proposal.OutcomeIgnored:
		// nothing changed
	}

	return receipt, nil
}

// GetProposal returns the proposal, announcing it if this read expired it.
func (w *Workflow) GetProposal(ctx context.Context, id int64) (*proposal.Proposal, error) {
	p, expired, err := w.engine.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if expired {
		w.notify(ctx, ports.Event{Type: ports.EventProposalExpired, Proposal: p})
	}
	return p, nil
}

// PendingProposals lists open proposals and announces any it expired.
func (w *Workflow) PendingProposals(ctx context.Context) ([]proposal.Proposal, error) {
	open, expired, err := w.engine.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	w.announceExpired(ctx, expired)
	return open, nil
}

// Sweep expires overdue proposals and announces each one.
func (w *Workflow) Sweep(ctx context.Context) (int, error) {
	expired, err := w.engine.ExpireOverdue(ctx)
	if err != nil {
		return 0, err
	}

	w.announceExpired(ctx, expired)
	if len(expired) > 0 {
		w.logger.InfoContext(ctx, "expired overdue proposals", slog.Int("count", len(expired)))
	}
	return len(expired), nil
}

func (w *Workflow) announceExpired(ctx context.Context, expired []proposal.Proposal) {
	for i := range expired {
		w.notify(ctx, ports.Event{Type: ports.EventProposalExpired, Proposal: &expired[i]})
	}
}

// gate runs the text validator. A negative verdict becomes an
// *domain.InvalidTextError carrying the validator's reason.
func (w *Workflow) gate(ctx context.Context, text string) error {
	if w.validator == nil {
		return nil
	}

	res, err := w.validator.Validate(ctx, text)
	if err != nil {
		w.logger.ErrorContext(ctx, "text validation failed",
			slog.String("operation", "Validate"),
			slog.Any("error", err),
		)
		if errors.Is(err, domain.ErrUnavailable) {
			return err
		}
		return fmt.Errorf("validating text: %w", errors.Join(domain.ErrUnavailable, err))
	}
	if !res.Valid {
		return &domain.InvalidTextError{Reason: res.Reason}
	}
	return nil
}

// notify delivers event to every sink. Failures are logged and counted but
// never returned: the change that produced the event is already committed.
func (w *Workflow) notify(ctx context.Context, event ports.Event) {
	if len(w.notifiers) == 0 {
		return
	}

	event.ID = uuid.NewString()
	event.OccurredAt = w.now().UTC()

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	results := fanout.Run(dctx, w.cfg.MaxNotifyWorkers, w.notifiers, func(ctx context.Context, n ports.Notifier) (struct{}, error) {
		return struct{}{}, n.Notify(ctx, event)
	})

	for i, r := range results {
		name := w.notifiers[i].Name()
		result := "success"
		if r.Err != nil {
			result = "error"
			w.logger.WarnContext(ctx, "notification failed",
				slog.String("operation", "Notify"),
				logging.Sink(name),
				logging.EventType(string(event.Type)),
				logging.EventID(event.ID),
				slog.Duration("elapsed", r.Elapsed),
				slog.Any("error", r.Err),
			)
		}
		w.metrics.NotificationsTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrPeerService.String(name),
			telemetry.AttrEventType.String(string(event.Type)),
			telemetry.AttrResult.String(result),
		))
	}

	if failed := fanout.Failed(results); failed > 0 {
		w.logger.DebugContext(ctx, "event fanout finished with failures",
			logging.EventID(event.ID),
			slog.Int("sinks", len(results)),
			slog.Int("failed", failed),
		)
	}
}
