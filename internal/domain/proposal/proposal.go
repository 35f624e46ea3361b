// Package proposal models a candidate decision moving through threshold
// voting. The state machine here is pure: it never touches storage or the
// clock, so the engine can run it inside a store transaction and tests can
// drive it with fixed times.
package proposal

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// Proposal is a candidate decision awaiting team approval.
//
// Approvals and Rejections are disjoint sets kept in first-vote order.
// Status only ever moves from StatusPending to one terminal status.
type Proposal struct {
	ID         int64
	Text       string
	Proposer   string
	CreatedAt  time.Time
	Approvals  []string
	Rejections []string
	Status     Status
	Threshold  int
	ExpiresAt  time.Time
}

// New builds a pending proposal whose deadline is now + policy.Timeout.
// The ID is assigned by the store.
func New(text, proposer string, policy Policy, now time.Time) Proposal {
	return Proposal{
		Text:       text,
		Proposer:   proposer,
		CreatedAt:  now,
		Approvals:  []string{},
		Rejections: []string{},
		Status:     StatusPending,
		Threshold:  policy.Threshold,
		ExpiresAt:  now.Add(policy.Timeout),
	}
}

// Validate checks the fields a caller supplies when creating a proposal.
func (p *Proposal) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Proposer) == "" {
		fields["proposer"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a deep copy so callers never share vote slices.
func (p Proposal) Clone() Proposal {
	p.Approvals = slices.Clone(p.Approvals)
	p.Rejections = slices.Clone(p.Rejections)
	if p.Approvals == nil {
		p.Approvals = []string{}
	}
	if p.Rejections == nil {
		p.Rejections = []string{}
	}
	return p
}

// IsOverdue reports whether a pending proposal has passed its deadline.
func (p *Proposal) IsOverdue(now time.Time) bool {
	return p.Status == StatusPending && now.After(p.ExpiresAt)
}

// Expire moves an overdue pending proposal to StatusExpired. It returns
// false and leaves the proposal untouched otherwise.
func (p *Proposal) Expire(now time.Time) bool {
	if !p.IsOverdue(now) {
		return false
	}
	p.Status = StatusExpired
	return true
}

// HasVoted reports whether voter is in either vote set.
func (p *Proposal) HasVoted(voter string) bool {
	return slices.Contains(p.Approvals, voter) || slices.Contains(p.Rejections, voter)
}
