// Package validator implements the Anti-Corruption Layer translators for the
// remote text validation service.
package validator

// ValidateRequestDTO matches the remote POST /validate request body.
type ValidateRequestDTO struct {
	Text string `json:"text"`
}

// ValidateResponseDTO matches the remote POST /validate response body.
// IsValid is a pointer so a missing field is distinguishable from false.
type ValidateResponseDTO struct {
	IsValid *bool  `json:"is_valid"`
	Reason  string `json:"reason"`
}
