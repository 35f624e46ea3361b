package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

// VotingEngine owns the proposal lifecycle. Policy values are passed on each
// call so the engine holds no process-wide voting settings.
type VotingEngine interface {
	// CreateProposal persists a pending proposal that expires at
	// now + policy.Timeout. Text content is not checked here.
	CreateProposal(ctx context.Context, text, proposer string, policy proposal.Policy) (*proposal.Proposal, error)

	// CastVote applies one vote atomically.
	// Returns domain.ErrNotFound or domain.ErrSelfVote.
	CastVote(ctx context.Context, id int64, voter string, kind proposal.VoteKind, policy proposal.Policy) (*VoteResult, error)

	// GetProposal returns a proposal, expiring it first if it is overdue.
	// expired is true only when this call performed the expiry.
	GetProposal(ctx context.Context, id int64) (p *proposal.Proposal, expired bool, err error)

	// ListPending expires overdue proposals and returns the ones still open,
	// newest first, along with the ones this call expired.
	ListPending(ctx context.Context) (open, expired []proposal.Proposal, err error)

	// ExpireOverdue moves every overdue pending proposal to expired and
	// returns the proposals it expired.
	ExpireOverdue(ctx context.Context) ([]proposal.Proposal, error)

	// ConvertToDecision materializes an approved proposal.
	// Returns domain.ErrConflict if the proposal is not approved. Converting
	// the same proposal twice returns the first decision.
	ConvertToDecision(ctx context.Context, p *proposal.Proposal) (*decision.Decision, error)
}

// VoteResult is the snapshot committed by CastVote and what the vote did.
type VoteResult struct {
	Proposal *proposal.Proposal
	Outcome  proposal.Outcome
}

// DecisionLedger owns the decision lifecycle.
type DecisionLedger interface {
	CreateDirect(ctx context.Context, text, author, topic string) (*decision.Decision, error)

	// CreateFromProposal is idempotent per proposal ID.
	CreateFromProposal(ctx context.Context, p *proposal.Proposal) (*decision.Decision, error)

	Get(ctx context.Context, id int64) (*decision.Decision, error)

	// Update appends the pre-edit text to history and replaces the current
	// text in one transaction. Returns domain.ErrNotFound for unknown IDs.
	Update(ctx context.Context, id int64, newText, editor string) (*decision.Decision, error)

	// History returns an empty slice for a decision that was never edited.
	History(ctx context.Context, id int64) ([]decision.HistoryEntry, error)

	Search(ctx context.Context, keyword string) ([]decision.Decision, error)
	List(ctx context.Context, limit int) ([]decision.Decision, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]decision.Decision, error)

	// Today returns decisions created during the current calendar day.
	Today(ctx context.Context) ([]decision.Decision, error)
}

// DecisionService is the inbound port for decision use cases. Writes pass
// through the text validation gate and trigger notifications.
type DecisionService interface {
	RecordDecision(ctx context.Context, text, author, topic string) (*decision.Decision, error)
	EditDecision(ctx context.Context, id int64, text, editor string) (*decision.Decision, error)
	GetDecision(ctx context.Context, id int64) (*decision.Decision, error)
	DecisionHistory(ctx context.Context, id int64) ([]decision.HistoryEntry, error)
	ListDecisions(ctx context.Context, limit int) ([]decision.Decision, error)
	SearchDecisions(ctx context.Context, keyword string) ([]decision.Decision, error)
	DecisionsToday(ctx context.Context) ([]decision.Decision, error)
}

// ProposalService is the inbound port for the consensus workflow.
type ProposalService interface {
	Propose(ctx context.Context, text, proposer string) (*proposal.Proposal, error)

	// Vote casts a vote and, when the vote approves the proposal, converts
	// it into a decision returned in VoteReceipt.Decision. Decision stays nil
	// if that conversion fails; the vote itself is still committed.
	Vote(ctx context.Context, id int64, voter string, kind proposal.VoteKind) (*VoteReceipt, error)

	GetProposal(ctx context.Context, id int64) (*proposal.Proposal, error)
	PendingProposals(ctx context.Context) ([]proposal.Proposal, error)

	// Sweep expires overdue proposals and returns how many it expired.
	Sweep(ctx context.Context) (int, error)
}

// VoteReceipt is returned by ProposalService.Vote.
type VoteReceipt struct {
	Proposal *proposal.Proposal
	Outcome  proposal.Outcome
	Decision *decision.Decision
}

// Workflow combines both inbound ports; the HTTP adapter and the CLI depend
// on the narrower interfaces.
type Workflow interface {
	DecisionService
	ProposalService
}
