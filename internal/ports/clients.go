package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

// ValidResult is the verdict of a TextValidator.
type ValidResult struct {
	Valid  bool
	Reason string
}

// TextValidator decides whether free text reads like a decision.
// Implementations return an error only when they could not reach a verdict.
type TextValidator interface {
	Validate(ctx context.Context, text string) (ValidResult, error)
}

// EventType names a change announced to notification sinks.
type EventType string

const (
	EventDecisionCreated  EventType = "decision.created"
	EventDecisionUpdated  EventType = "decision.updated"
	EventProposalCreated  EventType = "proposal.created"
	EventProposalVoted    EventType = "proposal.voted"
	EventProposalApproved EventType = "proposal.approved"
	EventProposalRejected EventType = "proposal.rejected"
	EventProposalExpired  EventType = "proposal.expired"
)

// Event carries the entity snapshot produced by an operation.
// Exactly one of Proposal or Decision is usually set; approval events carry both.
type Event struct {
	ID         string
	Type       EventType
	OccurredAt time.Time
	Proposal   *proposal.Proposal
	Decision   *decision.Decision
}

// Notifier delivers events to one outbound sink (webhook, message bus).
// Delivery failures are reported to the caller but never undo the change
// that produced the event.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, event Event) error
}
