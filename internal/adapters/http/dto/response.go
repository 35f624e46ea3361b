// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain/decision"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// DecisionResponse represents a single decision in HTTP responses.
type DecisionResponse struct {
	ID               int64  `json:"id"`
	Text             string `json:"text"`
	OriginalText     string `json:"original_text"`
	Author           string `json:"author"`
	Topic            string `json:"topic,omitempty"`
	LastEditor       string `json:"last_editor,omitempty"`
	LastEditedAt     string `json:"last_edited_at,omitempty"`
	EditCount        int    `json:"edit_count"`
	CreatedAt        string `json:"created_at"`
	SourceProposalID *int64 `json:"source_proposal_id,omitempty"`
}

// DecisionListResponse represents a list of decisions in HTTP responses.
type DecisionListResponse struct {
	Decisions []DecisionResponse `json:"decisions"`
	Count     int                `json:"count"`
}

// HistoryEntryResponse is one superseded version of a decision.
type HistoryEntryResponse struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Editor   string `json:"editor"`
	EditedAt string `json:"edited_at"`
}

// HistoryResponse lists a decision's edits, most recent first.
type HistoryResponse struct {
	DecisionID int64                  `json:"decision_id"`
	Entries    []HistoryEntryResponse `json:"entries"`
	Count      int                    `json:"count"`
}

// ProposalResponse represents a single proposal in HTTP responses.
type ProposalResponse struct {
	ID         int64    `json:"id"`
	Text       string   `json:"text"`
	Proposer   string   `json:"proposer"`
	Status     string   `json:"status"`
	Approvals  []string `json:"approvals"`
	Rejections []string `json:"rejections"`
	Threshold  int      `json:"threshold"`
	CreatedAt  string   `json:"created_at"`
	ExpiresAt  string   `json:"expires_at"`
}

// ProposalListResponse represents a list of proposals in HTTP responses.
type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
	Count     int                `json:"count"`
}

// VoteResponse reports the proposal after a vote, what the vote did, and
// the decision it produced when the vote approved the proposal.
type VoteResponse struct {
	Proposal ProposalResponse  `json:"proposal"`
	Outcome  string            `json:"outcome"`
	Decision *DecisionResponse `json:"decision,omitempty"`
}

// ToDecisionResponse converts a domain Decision to an HTTP response DTO.
func ToDecisionResponse(d *decision.Decision) DecisionResponse {
	resp := DecisionResponse{
		ID:               d.ID,
		Text:             d.CurrentText,
		OriginalText:     d.OriginalText,
		Author:           d.Author,
		Topic:            d.Topic,
		LastEditor:       d.LastEditor,
		EditCount:        d.EditCount,
		CreatedAt:        formatTime(d.CreatedAt),
		SourceProposalID: d.SourceProposalID,
	}
	if d.LastEditedAt != nil {
		resp.LastEditedAt = formatTime(*d.LastEditedAt)
	}
	return resp
}

// ToDecisionListResponse converts decisions to an HTTP list response DTO.
func ToDecisionListResponse(decisions []decision.Decision) DecisionListResponse {
	items := make([]DecisionResponse, len(decisions))
	for i := range decisions {
		items[i] = ToDecisionResponse(&decisions[i])
	}
	return DecisionListResponse{
		Decisions: items,
		Count:     len(items),
	}
}

// ToHistoryResponse converts history entries, preserving their order.
func ToHistoryResponse(decisionID int64, entries []decision.HistoryEntry) HistoryResponse {
	items := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = HistoryEntryResponse{
			ID:       e.ID,
			Text:     e.Text,
			Editor:   e.Editor,
			EditedAt: formatTime(e.EditedAt),
		}
	}
	return HistoryResponse{
		DecisionID: decisionID,
		Entries:    items,
		Count:      len(items),
	}
}

// ToProposalResponse converts a domain Proposal to an HTTP response DTO.
// Vote sets are never null in JSON.
func ToProposalResponse(p *proposal.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:         p.ID,
		Text:       p.Text,
		Proposer:   p.Proposer,
		Status:     p.Status.String(),
		Approvals:  orEmpty(p.Approvals),
		Rejections: orEmpty(p.Rejections),
		Threshold:  p.Threshold,
		CreatedAt:  formatTime(p.CreatedAt),
		ExpiresAt:  formatTime(p.ExpiresAt),
	}
}

// ToProposalListResponse converts proposals to an HTTP list response DTO.
func ToProposalListResponse(proposals []proposal.Proposal) ProposalListResponse {
	items := make([]ProposalResponse, len(proposals))
	for i := range proposals {
		items[i] = ToProposalResponse(&proposals[i])
	}
	return ProposalListResponse{
		Proposals: items,
		Count:     len(items),
	}
}

// ToVoteResponse converts a vote receipt.
func ToVoteResponse(r *ports.VoteReceipt) VoteResponse {
	resp := VoteResponse{
		Proposal: ToProposalResponse(r.Proposal),
		Outcome:  string(r.Outcome),
	}
	if r.Decision != nil {
		d := ToDecisionResponse(r.Decision)
		resp.Decision = &d
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
