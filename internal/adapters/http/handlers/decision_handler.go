package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// DecisionHandler handles HTTP requests for recorded decisions.
type DecisionHandler struct {
	service ports.DecisionService
}

// NewDecisionHandler creates a new DecisionHandler with the given service port.
func NewDecisionHandler(service ports.DecisionService) *DecisionHandler {
	return &DecisionHandler{service: service}
}

// CreateDecision handles POST /api/v1/decisions.
func (h *DecisionHandler) CreateDecision(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDecisionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.RecordDecision(r.Context(), req.Text, req.Author, strings.TrimSpace(req.Topic))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToDecisionResponse(created))
}

// ListDecisions handles GET /api/v1/decisions. With ?q= it searches text
// and topic; otherwise it returns the most recent decisions up to ?limit=.
func (h *DecisionHandler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		found, err := h.service.SearchDecisions(r.Context(), q)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ToDecisionListResponse(found))
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	decisions, err := h.service.ListDecisions(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDecisionListResponse(decisions))
}

// TodayDecisions handles GET /api/v1/decisions/today.
func (h *DecisionHandler) TodayDecisions(w http.ResponseWriter, r *http.Request) {
	decisions, err := h.service.DecisionsToday(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDecisionListResponse(decisions))
}

// GetDecision handles GET /api/v1/decisions/{id}.
func (h *DecisionHandler) GetDecision(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.service.GetDecision(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDecisionResponse(d))
}

// UpdateDecision handles PATCH /api/v1/decisions/{id}.
func (h *DecisionHandler) UpdateDecision(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateDecisionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.EditDecision(r.Context(), id, req.Text, req.Editor)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDecisionResponse(updated))
}

// DecisionHistory handles GET /api/v1/decisions/{id}/history.
func (h *DecisionHandler) DecisionHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.service.DecisionHistory(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToHistoryResponse(id, entries))
}
