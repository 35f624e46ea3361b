// Package acl implements the Anti-Corruption Layer for outbound HTTP
// collaborators: the remote text validation service and webhook receivers.
// Wire-format translators live in subpackages (acl/validator); shared
// request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 64 << 10

// RemoteError is a non-success answer from an outbound collaborator. It
// unwraps to the domain error matching the status, so callers test it with
// errors.Is(err, domain.ErrUnavailable) and friends.
type RemoteError struct {
	Peer   string
	Status int
	Detail string
	cause  error // nil for statuses with no domain meaning
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s answered %d: %s", e.Peer, e.Status, e.Detail)
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// errorBody accepts both RFC 9457 problem documents and the looser
// {"error": "..."} / {"message": "..."} bodies webhook receivers tend to send.
type errorBody struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Errors  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func (b *errorBody) summary() string {
	for _, s := range []string{b.Detail, b.Error, b.Message, b.Title} {
		if s != "" {
			return s
		}
	}
	return ""
}

// TranslateHTTPError turns a non-success response from peer into a
// *RemoteError. Field errors on a 400/422 become a *domain.ValidationError
// reachable through errors.As.
func TranslateHTTPError(peer string, resp *http.Response) error {
	body := readErrorBody(resp)

	detail := body.summary()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	e := &RemoteError{Peer: peer, Status: resp.StatusCode, Detail: detail}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound || code == http.StatusGone:
		e.cause = domain.ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		e.cause = domain.ErrValidation
		if len(body.Errors) > 0 {
			fields := make(map[string]string, len(body.Errors))
			for _, fe := range body.Errors {
				fields[strings.TrimPrefix(fe.Location, "body.")] = fe.Message
			}
			e.cause = &domain.ValidationError{Fields: fields}
		}
	case code == http.StatusConflict:
		e.cause = domain.ErrConflict
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		e.cause = domain.ErrForbidden
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		e.cause = domain.ErrUnavailable
	}
	return e
}

// readErrorBody parses JSON error bodies. Anything else yields a zero value.
func readErrorBody(resp *http.Response) errorBody {
	var b errorBody
	if resp.Body == nil {
		return b
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
		return b
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return b
	}
	_ = json.Unmarshal(raw, &b)
	return b
}
