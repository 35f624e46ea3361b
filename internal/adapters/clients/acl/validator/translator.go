package validator

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// ErrMalformedResponse is returned when the remote verdict omits is_valid.
var ErrMalformedResponse = errors.New("validator response missing is_valid")

// ToValidateRequest builds the remote request body.
func ToValidateRequest(text string) ValidateRequestDTO {
	return ValidateRequestDTO{Text: text}
}

// ToValidResult converts the remote verdict. A blank reason is replaced with
// a generic one so callers always have something to show.
func ToValidResult(dto *ValidateResponseDTO) (ports.ValidResult, error) {
	if dto.IsValid == nil {
		return ports.ValidResult{}, ErrMalformedResponse
	}

	reason := strings.TrimSpace(dto.Reason)
	if reason == "" {
		if *dto.IsValid {
			reason = "Accepted by validator"
		} else {
			reason = "Rejected by validator"
		}
	}
	return ports.ValidResult{Valid: *dto.IsValid, Reason: reason}, nil
}
