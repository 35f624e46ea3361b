package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
	"github.com/jsamuelsen11/decisionnote/internal/domain"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
)

// maxBodyBytes caps request bodies. Decision texts are short.
const maxBodyBytes = 1 << 20

func fieldError(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// parseID reads a positive int64 chi path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldError(param, "must be a positive integer")
	}
	return id, nil
}

// parseLimit reads ?limit=. Absent means 0, the ledger default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fieldError("limit", "must be a non-negative integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", slog.Any("error", err))
	}
}

// decodeBody reads exactly one JSON value from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return fieldError("body", "must not be empty")
	case errors.As(err, &tooLarge):
		return fieldError("body", "exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
	case err != nil:
		return fieldError("body", "invalid JSON")
	}
	if dec.More() {
		return fieldError("body", "must contain a single JSON object")
	}
	return nil
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes and validates dst, writing the problem response
// itself on failure. Handlers return when it reports false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := decodeBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
