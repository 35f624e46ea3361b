package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

func errorResponse(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{status: http.StatusGone, wantErr: domain.ErrNotFound},
		{status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{status: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{status: http.StatusConflict, wantErr: domain.ErrConflict},
		{status: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{status: http.StatusRequestTimeout, wantErr: domain.ErrUnavailable},
		{status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{status: http.StatusBadGateway, wantErr: domain.ErrUnavailable},
		{status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError("validator", errorResponse(tt.status, "", ""))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want %v", tt.status, err, tt.wantErr)
			}

			var re *RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not *RemoteError", err)
			}
			if re.Peer != "validator" || re.Status != tt.status {
				t.Errorf("RemoteError = {%q, %d}, want {validator, %d}", re.Peer, re.Status, tt.status)
			}
			if re.Detail != http.StatusText(tt.status) {
				t.Errorf("Detail = %q, want status text fallback", re.Detail)
			}
		})
	}
}

func TestTranslateHTTPError_UnmappedStatusHasNoDomainMeaning(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError("webhook:hooks.test", errorResponse(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("418 matched %v, want no domain sentinel", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "webhook:hooks.test answered 418") {
		t.Errorf("Error() = %q, want peer and status", err.Error())
	}
}

func TestTranslateHTTPError_DetailSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "problem detail",
			contentType: "application/problem+json",
			body:        `{"title":"Service Unavailable","detail":"model warming up"}`,
			want:        "model warming up",
		},
		{
			name:        "problem title only",
			contentType: "application/problem+json",
			body:        `{"title":"Rule set missing"}`,
			want:        "Rule set missing",
		},
		{
			name:        "plain json error key",
			contentType: "application/json; charset=utf-8",
			body:        `{"error":"hook disabled"}`,
			want:        "hook disabled",
		},
		{
			name:        "plain json message key",
			contentType: "application/json",
			body:        `{"message":"signature mismatch"}`,
			want:        "signature mismatch",
		},
		{
			name:        "non-json body ignored",
			contentType: "text/html",
			body:        `<html>bad gateway</html>`,
			want:        http.StatusText(http.StatusBadGateway),
		},
		{
			name:        "malformed json ignored",
			contentType: "application/json",
			body:        `{"error":`,
			want:        http.StatusText(http.StatusBadGateway),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError("validator", errorResponse(http.StatusBadGateway, tt.contentType, tt.body))

			var re *RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not *RemoteError", err)
			}
			if re.Detail != tt.want {
				t.Errorf("Detail = %q, want %q", re.Detail, tt.want)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{"detail":"invalid request","errors":[` +
		`{"location":"body.text","message":"is required"},` +
		`{"location":"locale","message":"unsupported"}]}`

	err := TranslateHTTPError("validator", errorResponse(http.StatusUnprocessableEntity, "application/problem+json", body))

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v does not carry *domain.ValidationError", err)
	}
	want := map[string]string{"text": "is required", "locale": "unsupported"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%q] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError("validator", errorResponse(http.StatusNotFound, "application/problem+json", ""))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
