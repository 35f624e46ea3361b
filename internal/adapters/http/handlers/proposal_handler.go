package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// ProposalHandler handles HTTP requests for proposals and their votes.
type ProposalHandler struct {
	service ports.ProposalService
}

// NewProposalHandler creates a new ProposalHandler with the given service port.
func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// CreateProposal handles POST /api/v1/proposals.
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProposalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Propose(r.Context(), req.Text, req.Proposer)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProposalResponse(created))
}

// ListPending handles GET /api/v1/proposals.
func (h *ProposalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.PendingProposals(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProposalListResponse(pending))
}

// GetProposal handles GET /api/v1/proposals/{id}.
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.service.GetProposal(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProposalResponse(p))
}

// CastVote handles POST /api/v1/proposals/{id}/votes. Duplicate votes and
// votes on finalized proposals still answer 200 with the unchanged proposal;
// the outcome field tells the caller what happened.
func (h *ProposalHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CastVoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	receipt, err := h.service.Vote(r.Context(), id, req.Voter, proposal.VoteKind(req.Kind))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVoteResponse(receipt))
}
