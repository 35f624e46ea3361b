package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// clients can switch on without parsing Detail.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem codes carried in ErrorResponse.Code.
const (
	CodeValidation  = "validation_failed"
	CodeInvalidText = "invalid_text"
	CodeNotFound    = "not_found"
	CodeSelfVote    = "self_vote"
	CodeForbidden   = "forbidden"
	CodeConflict    = "conflict"
	CodeUnavailable = "unavailable"
	CodeTimeout     = "timeout"
	CodeInternal    = "internal"

	CodeMethodNotAllowed = "method_not_allowed"
)

// problemKinds is checked in order; the first match wins, so narrower errors
// precede the sentinels they wrap.
var problemKinds = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrSelfVote, http.StatusForbidden, CodeSelfVote},
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout},
}

func classify(err error) (int, string) {
	for _, k := range problemKinds {
		if errors.Is(err, k.target) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI. Unclassified errors get a fixed detail because their text may
// hold SQL or hostnames.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if code == CodeInternal {
		resp.Detail = "internal error"
	}

	var (
		verr *domain.ValidationError
		terr *domain.InvalidTextError
	)
	switch {
	case errors.As(err, &terr):
		resp.Code = CodeInvalidText
		resp.Detail = terr.Reason
		resp.Errors = []ErrorDetail{{Location: "body.text", Message: terr.Reason}}
	case errors.As(err, &verr):
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a prepared problem document.
func WriteProblem(w http.ResponseWriter, r *http.Request, p ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", err))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
