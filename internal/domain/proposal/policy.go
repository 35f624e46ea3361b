package proposal

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// Policy carries the consensus settings applied to a proposal. It is passed
// explicitly to the voting engine instead of being read from process state.
type Policy struct {
	// Threshold is the number of distinct approve (or reject) votes that
	// finalizes a proposal.
	Threshold int
	// Timeout is added to the creation time to compute the voting deadline.
	Timeout time.Duration
	// AllowSelfApprove lets the proposer vote on their own proposal.
	AllowSelfApprove bool
}

// Validate checks that the policy can drive a proposal to a terminal state.
func (p Policy) Validate() error {
	fields := make(map[string]string)

	if p.Threshold < 1 {
		fields["threshold"] = fmt.Sprintf("must be >= 1, got %d", p.Threshold)
	}
	if p.Timeout < 0 {
		fields["timeout"] = fmt.Sprintf("must not be negative, got %s", p.Timeout)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
