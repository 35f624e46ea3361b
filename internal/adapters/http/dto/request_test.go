package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

type validator interface {
	Validate() error
}

func runValidateCases(t *testing.T, tests []validateCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

type validateCase struct {
	name      string
	req       validator
	wantField string
}

func TestCreateDecisionRequest_Validate(t *testing.T) {
	t.Parallel()

	runValidateCases(t, []validateCase{
		{
			name: "valid request passes",
			req:  &dto.CreateDecisionRequest{Text: "Use Postgres for storage", Author: "alice"},
		},
		{
			name: "valid request with topic",
			req:  &dto.CreateDecisionRequest{Text: "Use Postgres for storage", Author: "alice", Topic: "infra"},
		},
		{
			name:      "empty text",
			req:       &dto.CreateDecisionRequest{Author: "alice"},
			wantField: "text",
		},
		{
			name:      "whitespace text",
			req:       &dto.CreateDecisionRequest{Text: "   ", Author: "alice"},
			wantField: "text",
		},
		{
			name:      "text too long",
			req:       &dto.CreateDecisionRequest{Text: strings.Repeat("a", dto.MaxTextLength+1), Author: "alice"},
			wantField: "text",
		},
		{
			name:      "missing author",
			req:       &dto.CreateDecisionRequest{Text: "Use Postgres"},
			wantField: "author",
		},
		{
			name:      "topic too long",
			req:       &dto.CreateDecisionRequest{Text: "Use Postgres", Author: "alice", Topic: strings.Repeat("t", dto.MaxNameLength+1)},
			wantField: "topic",
		},
	})
}

func TestUpdateDecisionRequest_Validate(t *testing.T) {
	t.Parallel()

	runValidateCases(t, []validateCase{
		{
			name: "valid request passes",
			req:  &dto.UpdateDecisionRequest{Text: "Use Postgres 16", Editor: "bob"},
		},
		{
			name:      "empty text",
			req:       &dto.UpdateDecisionRequest{Editor: "bob"},
			wantField: "text",
		},
		{
			name:      "missing editor",
			req:       &dto.UpdateDecisionRequest{Text: "Use Postgres 16"},
			wantField: "editor",
		},
	})
}

func TestCreateProposalRequest_Validate(t *testing.T) {
	t.Parallel()

	runValidateCases(t, []validateCase{
		{
			name: "valid request passes",
			req:  &dto.CreateProposalRequest{Text: "Adopt trunk based development", Proposer: "alice"},
		},
		{
			name:      "empty text",
			req:       &dto.CreateProposalRequest{Proposer: "alice"},
			wantField: "text",
		},
		{
			name:      "missing proposer",
			req:       &dto.CreateProposalRequest{Text: "Adopt trunk based development"},
			wantField: "proposer",
		},
	})
}

func TestCastVoteRequest_Validate(t *testing.T) {
	t.Parallel()

	runValidateCases(t, []validateCase{
		{
			name: "approve passes",
			req:  &dto.CastVoteRequest{Voter: "bob", Kind: "approve"},
		},
		{
			name: "reject passes",
			req:  &dto.CastVoteRequest{Voter: "bob", Kind: "reject"},
		},
		{
			name:      "missing voter",
			req:       &dto.CastVoteRequest{Kind: "approve"},
			wantField: "voter",
		},
		{
			name:      "missing kind",
			req:       &dto.CastVoteRequest{Voter: "bob"},
			wantField: "kind",
		},
		{
			name:      "unknown kind",
			req:       &dto.CastVoteRequest{Voter: "bob", Kind: "abstain"},
			wantField: "kind",
		},
	})
}

func TestCreateDecisionRequest_Validate_ReportsAllFields(t *testing.T) {
	t.Parallel()

	err := (&dto.CreateDecisionRequest{}).Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
}
