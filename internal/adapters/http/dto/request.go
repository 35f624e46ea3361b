package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
)

const (
	msgRequired = domain.MsgRequired
	msgTooLong  = "must be at most %d characters"

	// MaxTextLength bounds decision and proposal text.
	MaxTextLength = 4000
	// MaxNameLength bounds user names and topics.
	MaxNameLength = 128
)

// CreateDecisionRequest represents the JSON body for recording a decision directly.
type CreateDecisionRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Topic  string `json:"topic,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateDecisionRequest) Validate() error {
	fields := make(map[string]string)

	checkText(fields, "text", r.Text)
	checkName(fields, "author", r.Author, true)
	checkName(fields, "topic", r.Topic, false)

	return toError(fields)
}

// UpdateDecisionRequest represents the JSON body for editing a decision.
type UpdateDecisionRequest struct {
	Text   string `json:"text"`
	Editor string `json:"editor"`
}

// Validate checks that required fields are present.
func (r *UpdateDecisionRequest) Validate() error {
	fields := make(map[string]string)

	checkText(fields, "text", r.Text)
	checkName(fields, "editor", r.Editor, true)

	return toError(fields)
}

// CreateProposalRequest represents the JSON body for opening a proposal.
type CreateProposalRequest struct {
	Text     string `json:"text"`
	Proposer string `json:"proposer"`
}

// Validate checks that required fields are present.
func (r *CreateProposalRequest) Validate() error {
	fields := make(map[string]string)

	checkText(fields, "text", r.Text)
	checkName(fields, "proposer", r.Proposer, true)

	return toError(fields)
}

// CastVoteRequest represents the JSON body for voting on a proposal.
type CastVoteRequest struct {
	Voter string `json:"voter"`
	Kind  string `json:"kind"`
}

// Validate checks the voter and that kind is "approve" or "reject".
func (r *CastVoteRequest) Validate() error {
	fields := make(map[string]string)

	checkName(fields, "voter", r.Voter, true)
	switch {
	case r.Kind == "":
		fields["kind"] = msgRequired
	case !proposal.VoteKind(r.Kind).IsValid():
		fields["kind"] = fmt.Sprintf("invalid: %q (want approve or reject)", r.Kind)
	}

	return toError(fields)
}

func checkText(fields map[string]string, name, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		fields[name] = msgRequired
	case len(value) > MaxTextLength:
		fields[name] = fmt.Sprintf(msgTooLong, MaxTextLength)
	}
}

func checkName(fields map[string]string, name, value string, required bool) {
	switch {
	case required && strings.TrimSpace(value) == "":
		fields[name] = msgRequired
	case len(value) > MaxNameLength:
		fields[name] = fmt.Sprintf(msgTooLong, MaxNameLength)
	}
}

func toError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
