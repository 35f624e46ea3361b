package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Error classes shared by every layer. Adapters wrap infrastructure failures
// in ErrUnavailable; transports classify with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ErrSelfVote is returned when a proposer votes on their own proposal while
// self-approval is disabled. It wraps ErrForbidden so transport adapters can
// map it without knowing about voting.
var ErrSelfVote = fmt.Errorf("self-vote is not allowed: %w", ErrForbidden)

// ValidationError maps input field names to what is wrong with them. It
// matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	names := slices.Sorted(maps.Keys(e.Fields))
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, name := range names {
		sep := "; "
		if i == 0 {
			sep = ": "
		}
		b.WriteString(sep + name + ": " + e.Fields[name])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidTextError reports that free text was rejected by the validation gate.
// Reason is the gate's explanation and is safe to show to the author.
type InvalidTextError struct {
	Reason string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("%s: text rejected: %s", ErrValidation.Error(), e.Reason)
}

func (e *InvalidTextError) Unwrap() error {
	return ErrValidation
}
