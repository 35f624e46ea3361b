package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

// ProposalMutation edits a proposal loaded inside a store transaction.
// Returning changed=false skips the write; returning an error rolls the
// transaction back and leaves the stored proposal untouched.
type ProposalMutation func(p *proposal.Proposal) (changed bool, err error)

// DecisionEdit edits a decision loaded inside a store transaction and returns
// the history entry to append in the same transaction. Returning an error
// rolls the transaction back.
type DecisionEdit func(d *decision.Decision) (decision.HistoryEntry, error)

// ProposalStore persists proposals. Every method returns values that share
// no memory with the store.
type ProposalStore interface {
	// Create assigns an ID to p and persists it.
	Create(ctx context.Context, p *proposal.Proposal) (*proposal.Proposal, error)

	// Get returns the stored proposal without modifying it.
	// Returns domain.ErrNotFound if the proposal does not exist.
	Get(ctx context.Context, id int64) (*proposal.Proposal, error)

	// Update runs fn with exclusive access to one proposal and persists the
	// result atomically. Updates to different proposals do not contend.
	// Returns domain.ErrNotFound if the proposal does not exist.
	Update(ctx context.Context, id int64, fn ProposalMutation) (*proposal.Proposal, error)

	// ListByStatus returns proposals with the given status, newest first.
	ListByStatus(ctx context.Context, status proposal.Status) ([]proposal.Proposal, error)
}

// DecisionStore persists decisions and their append-only edit history.
type DecisionStore interface {
	// Create assigns an ID to d and persists it. Returns domain.ErrConflict
	// if d.SourceProposalID is already used by another decision.
	Create(ctx context.Context, d *decision.Decision) (*decision.Decision, error)

	// Get returns domain.ErrNotFound if the decision does not exist.
	Get(ctx context.Context, id int64) (*decision.Decision, error)

	// GetBySourceProposal returns the decision materialized from a proposal.
	// Returns domain.ErrNotFound if the proposal was never converted.
	GetBySourceProposal(ctx context.Context, proposalID int64) (*decision.Decision, error)

	// Update runs fn with exclusive access to one decision, then persists the
	// returned history entry and the edited decision in one transaction.
	// Returns domain.ErrNotFound if the decision does not exist.
	Update(ctx context.Context, id int64, fn DecisionEdit) (*decision.Decision, error)

	// History returns edit entries, most recent first.
	History(ctx context.Context, id int64) ([]decision.HistoryEntry, error)

	// List returns up to limit decisions, most recently created first.
	List(ctx context.Context, limit int) ([]decision.Decision, error)

	// Search returns decisions whose current text or topic contains keyword,
	// ignoring case, most recently created first.
	Search(ctx context.Context, keyword string) ([]decision.Decision, error)

	// ListBetween returns decisions created in [start, end), newest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]decision.Decision, error)
}
