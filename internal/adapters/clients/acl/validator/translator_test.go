package validator

import (
	"errors"
	"testing"
)

func ptrBool(v bool) *bool { return &v }

func TestToValidResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dto        ValidateResponseDTO
		wantValid  bool
		wantReason string
	}{
		{
			name:       "valid with reason",
			dto:        ValidateResponseDTO{IsValid: ptrBool(true), Reason: "Clear decision"},
			wantValid:  true,
			wantReason: "Clear decision",
		},
		{
			name:       "invalid with reason",
			dto:        ValidateResponseDTO{IsValid: ptrBool(false), Reason: "Sounds like a question"},
			wantValid:  false,
			wantReason: "Sounds like a question",
		},
		{
			name:       "valid blank reason",
			dto:        ValidateResponseDTO{IsValid: ptrBool(true), Reason: "  "},
			wantValid:  true,
			wantReason: "Accepted by validator",
		},
		{
			name:       "invalid blank reason",
			dto:        ValidateResponseDTO{IsValid: ptrBool(false)},
			wantValid:  false,
			wantReason: "Rejected by validator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToValidResult(&tt.dto)
			if err != nil {
				t.Fatalf("ToValidResult() error = %v", err)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestToValidResult_MissingVerdict(t *testing.T) {
	t.Parallel()

	_, err := ToValidResult(&ValidateResponseDTO{Reason: "no verdict"})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("error = %v, want ErrMalformedResponse", err)
	}
}

func TestToValidateRequest(t *testing.T) {
	t.Parallel()

	if got := ToValidateRequest("Use Postgres"); got.Text != "Use Postgres" {
		t.Errorf("Text = %q, want %q", got.Text, "Use Postgres")
	}
}
