package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// Compile-time check that VotingEngine implements ports.VotingEngine.
var _ ports.VotingEngine = (*VotingEngine)(nil)

// VotingEngine implements ports.VotingEngine. Every state change runs inside
// ProposalStore.Update, so concurrent votes on one proposal serialize in the
// store while votes on different proposals proceed independently.
type VotingEngine struct {
	proposals ports.ProposalStore
	ledger    ports.DecisionLedger
	logger    *slog.Logger
	settings
}

// NewVotingEngine creates a VotingEngine. The ledger receives approved
// proposals in ConvertToDecision.
func NewVotingEngine(proposals ports.ProposalStore, ledger ports.DecisionLedger, logger *slog.Logger, opts ...Option) *VotingEngine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &VotingEngine{
		proposals: proposals,
		ledger:    ledger,
		logger:    logger,
		settings:  newSettings(opts),
	}
}

// CreateProposal persists a new pending proposal.
func (e *VotingEngine) CreateProposal(ctx context.Context, text, proposer string, policy proposal.Policy) (_ *proposal.Proposal, err error) {
	ctx, span := startSpan(ctx, "VotingEngine.CreateProposal")
	defer func() { endSpan(span, err) }()

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	p := proposal.New(text, proposer, policy, e.now())
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := e.proposals.Create(ctx, &p)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to create proposal",
			slog.String("operation", "CreateProposal"),
			slog.String("proposer", proposer),
			slog.Any("error", err),
		)
		return nil, err
	}

	e.logger.InfoContext(ctx, "proposal created",
		logging.ProposalID(created.ID),
		slog.String("proposer", proposer),
		slog.Time("expires_at", created.ExpiresAt),
	)
	return created, nil
}

// CastVote applies one vote through proposal.Proposal.Cast inside a store
// transaction. A self-vote returns domain.ErrSelfVote and changes nothing.
func (e *VotingEngine) CastVote(ctx context.Context, id int64, voter string, kind proposal.VoteKind, policy proposal.Policy) (_ *ports.VoteResult, err error) {
	ctx, span := startSpan(ctx, "VotingEngine.CastVote",
		attribute.Int64("proposal.id", id),
		attribute.String("vote.kind", kind.String()),
	)
	defer func() { endSpan(span, err) }()

	if err := validateVote(voter, kind); err != nil {
		return nil, err
	}

	var outcome proposal.Outcome
	updated, err := e.proposals.Update(ctx, id, func(p *proposal.Proposal) (bool, error) {
		out, castErr := p.Cast(voter, kind, policy.AllowSelfApprove, e.now())
		if castErr != nil {
			return false, castErr
		}
		outcome = out
		return out.Changed(), nil
	})
	if err != nil {
		e.recordVote(ctx, kind, "error")
		e.logger.WarnContext(ctx, "vote not applied",
			slog.String("operation", "CastVote"),
			logging.ProposalID(id),
			logging.Voter(voter),
			slog.Any("error", err),
		)
		return nil, err
	}

	e.recordVote(ctx, kind, string(outcome))
	span.SetAttributes(attribute.String("vote.outcome", string(outcome)))

	if outcome.Finalized() {
		e.recordFinalized(ctx, updated)
	}

	return &ports.VoteResult{Proposal: updated, Outcome: outcome}, nil
}

// GetProposal returns a proposal after applying lazy expiry. expired
// reports whether this call moved it to expired.
func (e *VotingEngine) GetProposal(ctx context.Context, id int64) (_ *proposal.Proposal, expired bool, err error) {
	ctx, span := startSpan(ctx, "VotingEngine.GetProposal", attribute.Int64("proposal.id", id))
	defer func() { endSpan(span, err) }()

	current, err := e.proposals.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !current.IsOverdue(e.now()) {
		return current, false, nil
	}

	return e.expire(ctx, id)
}

// ListPending returns open proposals, newest first, expiring overdue ones on
// the way. The expired snapshots are returned so callers can announce them.
func (e *VotingEngine) ListPending(ctx context.Context) (open, expired []proposal.Proposal, err error) {
	ctx, span := startSpan(ctx, "VotingEngine.ListPending")
	defer func() { endSpan(span, err) }()

	expired, open, err = e.sweep(ctx)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.Int("proposals.expired", len(expired)))
	return open, expired, nil
}

// ExpireOverdue moves every overdue pending proposal to expired.
func (e *VotingEngine) ExpireOverdue(ctx context.Context) (_ []proposal.Proposal, err error) {
	ctx, span := startSpan(ctx, "VotingEngine.ExpireOverdue")
	defer func() { endSpan(span, err) }()

	expired, _, err := e.sweep(ctx)
	if err != nil {
		return nil, err
	}
	return expired, nil
}

// ConvertToDecision materializes an approved proposal. The stored status is
// re-read so a stale snapshot cannot be converted.
func (e *VotingEngine) ConvertToDecision(ctx context.Context, p *proposal.Proposal) (_ *decision.Decision, err error) {
	if p == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"proposal": domain.MsgRequired}}
	}

	ctx, span := startSpan(ctx, "VotingEngine.ConvertToDecision", attribute.Int64("proposal.id", p.ID))
	defer func() { endSpan(span, err) }()

	current, err := e.proposals.Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if current.Status != proposal.StatusApproved {
		return nil, fmt.Errorf("proposal %d is %s, not approved: %w", current.ID, current.Status, domain.ErrConflict)
	}

	d, err := e.ledger.CreateFromProposal(ctx, current)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to convert proposal",
			slog.String("operation", "ConvertToDecision"),
			logging.ProposalID(current.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return d, nil
}

// sweep scans pending proposals once. Overdue ones are expired in their own
// transaction; the rest are returned as still open.
func (e *VotingEngine) sweep(ctx context.Context) (expired, open []proposal.Proposal, err error) {
	pending, err := e.proposals.ListByStatus(ctx, proposal.StatusPending)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to list pending proposals",
			slog.String("operation", "ListPending"),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	expired = make([]proposal.Proposal, 0)
	open = make([]proposal.Proposal, 0, len(pending))
	now := e.now()

	for i := range pending {
		p := &pending[i]
		if !p.IsOverdue(now) {
			open = append(open, *p)
			continue
		}

		updated, didExpire, err := e.expire(ctx, p.ID)
		if err != nil {
			return nil, nil, err
		}
		if didExpire {
			expired = append(expired, *updated)
		}
	}

	return expired, open, nil
}

// expire re-checks the deadline under the store lock, since the proposal may
// have been finalized after it was read.
func (e *VotingEngine) expire(ctx context.Context, id int64) (*proposal.Proposal, bool, error) {
	var didExpire bool
	updated, err := e.proposals.Update(ctx, id, func(p *proposal.Proposal) (bool, error) {
		didExpire = p.Expire(e.now())
		return didExpire, nil
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to expire proposal",
			slog.String("operation", "Expire"),
			logging.ProposalID(id),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	if didExpire {
		e.recordFinalized(ctx, updated)
	}
	return updated, didExpire, nil
}

func (e *VotingEngine) recordVote(ctx context.Context, kind proposal.VoteKind, result string) {
	e.metrics.VotesTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrVoteKind.String(kind.String()),
		telemetry.AttrOutcome.String(result),
	))
}

func (e *VotingEngine) recordFinalized(ctx context.Context, p *proposal.Proposal) {
	e.metrics.ProposalsFinalized.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrStatus.String(p.Status.String()),
	))
	e.logger.InfoContext(ctx, "proposal finalized",
		logging.ProposalID(p.ID),
		slog.String("status", p.Status.String()),
		slog.Int("approvals", len(p.Approvals)),
		slog.Int("rejections", len(p.Rejections)),
	)
}

func validateVote(voter string, kind proposal.VoteKind) error {
	fields := make(map[string]string)
	if strings.TrimSpace(voter) == "" {
		fields["voter"] = domain.MsgRequired
	}
	if !kind.IsValid() {
		fields["kind"] = fmt.Sprintf("invalid: %q", kind)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
