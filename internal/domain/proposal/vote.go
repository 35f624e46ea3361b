package proposal

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// Outcome describes what a single Cast call did to a proposal.
type Outcome string

const (
	// OutcomeIgnored means the proposal was already terminal; nothing changed.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeExpired means the deadline had passed; the proposal moved to
	// StatusExpired and no vote was recorded.
	OutcomeExpired Outcome = "expired"
	// OutcomeDuplicate means the voter already held this vote; nothing changed.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeRecorded means membership changed and the proposal is still pending.
	OutcomeRecorded Outcome = "recorded"
	// OutcomeApproved means the vote carried the approvals over the threshold.
	OutcomeApproved Outcome = "approved"
	// OutcomeRejected means the vote carried the rejections over the threshold.
	OutcomeRejected Outcome = "rejected"
)

// Changed reports whether the outcome mutated the proposal and must be persisted.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeExpired, OutcomeRecorded, OutcomeApproved, OutcomeRejected:
		return true
	default:
		return false
	}
}

// Finalized reports whether the outcome moved the proposal out of pending.
func (o Outcome) Finalized() bool {
	return o == OutcomeExpired || o == OutcomeApproved || o == OutcomeRejected
}

// Cast applies one vote to the proposal in place.
//
// The steps run in a fixed order: terminal proposals are left alone, overdue
// proposals expire without recording the vote, the self-vote rule is checked,
// the voter is moved out of the opposite set and into the target set, and
// finally the threshold is evaluated with approvals checked first.
//
// The only error is domain.ErrSelfVote, returned before any mutation.
func (p *Proposal) Cast(voter string, kind VoteKind, allowSelfApprove bool, now time.Time) (Outcome, error) {
	if p.Status.IsTerminal() {
		return OutcomeIgnored, nil
	}
	if p.Expire(now) {
		return OutcomeExpired, nil
	}
	if !allowSelfApprove && voter == p.Proposer {
		return "", domain.ErrSelfVote
	}

	target, opposite := &p.Approvals, &p.Rejections
	if kind == VoteReject {
		target, opposite = &p.Rejections, &p.Approvals
	}

	if slices.Contains(*target, voter) {
		return OutcomeDuplicate, nil
	}

	*opposite = slices.DeleteFunc(*opposite, func(v string) bool { return v == voter })
	*target = append(*target, voter)

	switch {
	case len(p.Approvals) >= p.Threshold:
		p.Status = StatusApproved
		return OutcomeApproved, nil
	case len(p.Rejections) >= p.Threshold:
		p.Status = StatusRejected
		return OutcomeRejected, nil
	default:
		return OutcomeRecorded, nil
	}
}
