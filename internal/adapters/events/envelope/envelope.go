// Package envelope defines the JSON wire format for events delivered to
// outbound sinks. Webhook receivers and NATS subscribers see the same shape.
package envelope

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// ContentType is sent with every serialized envelope.
const ContentType = "application/json"

// Event is the outer envelope.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Proposal   *Proposal `json:"proposal,omitempty"`
	Decision   *Decision `json:"decision,omitempty"`
}

// Proposal is the wire form of a proposal snapshot.
type Proposal struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Proposer   string    `json:"proposer"`
	Status     string    `json:"status"`
	Approvals  []string  `json:"approvals"`
	Rejections []string  `json:"rejections"`
	Threshold  int       `json:"threshold"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Decision is the wire form of a decision snapshot.
type Decision struct {
	ID               int64      `json:"id"`
	Text             string     `json:"text"`
	OriginalText     string     `json:"original_text"`
	Author           string     `json:"author"`
	Topic            string     `json:"topic,omitempty"`
	LastEditor       string     `json:"last_editor,omitempty"`
	LastEditedAt     *time.Time `json:"last_edited_at,omitempty"`
	EditCount        int        `json:"edit_count"`
	CreatedAt        time.Time  `json:"created_at"`
	SourceProposalID *int64     `json:"source_proposal_id,omitempty"`
}

// FromEvent converts a port event to its wire envelope.
func FromEvent(e *ports.Event) Event {
	out := Event{
		ID:         e.ID,
		Type:       string(e.Type),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.Proposal != nil {
		p := FromProposal(e.Proposal)
		out.Proposal = &p
	}
	if e.Decision != nil {
		d := FromDecision(e.Decision)
		out.Decision = &d
	}
	return out
}

// FromProposal converts a proposal snapshot. Vote sets are never null on the wire.
func FromProposal(p *proposal.Proposal) Proposal {
	return Proposal{
		ID:         p.ID,
		Text:       p.Text,
		Proposer:   p.Proposer,
		Status:     p.Status.String(),
		Approvals:  nonNil(p.Approvals),
		Rejections: nonNil(p.Rejections),
		Threshold:  p.Threshold,
		CreatedAt:  p.CreatedAt.UTC(),
		ExpiresAt:  p.ExpiresAt.UTC(),
	}
}

// FromDecision converts a decision snapshot.
func FromDecision(d *decision.Decision) Decision {
	out := Decision{
		ID:               d.ID,
		Text:             d.CurrentText,
		OriginalText:     d.OriginalText,
		Author:           d.Author,
		Topic:            d.Topic,
		LastEditor:       d.LastEditor,
		EditCount:        d.EditCount,
		CreatedAt:        d.CreatedAt.UTC(),
		SourceProposalID: d.SourceProposalID,
	}
	if d.LastEditedAt != nil {
		t := d.LastEditedAt.UTC()
		out.LastEditedAt = &t
	}
	return out
}

// Marshal serializes e as an envelope.
func Marshal(e *ports.Event) ([]byte, error) {
	body, err := json.Marshal(FromEvent(e))
	if err != nil {
		return nil, fmt.Errorf("marshaling %s event %s: %w", e.Type, e.ID, err)
	}
	return body, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
