// Package http is the inbound REST adapter: the chi router and the server
// lifecycle around it.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/dto"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// NewRouter mounts the health probes at the root and the API under /api/v1.
// Middlewares wrap every route, including unmatched ones, in the given order.
// Unknown paths and methods answer with problem documents like every other
// error.
func NewRouter(
	decisions *handlers.DecisionHandler,
	proposals *handlers.ProposalHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/decisions", func(r chi.Router) {
			r.Get("/", decisions.ListDecisions)
			r.Post("/", decisions.CreateDecision)
			r.Get("/today", decisions.TodayDecisions)
			r.Get("/{id}", decisions.GetDecision)
			r.Patch("/{id}", decisions.UpdateDecision)
			r.Get("/{id}/history", decisions.DecisionHistory)
		})

		r.Route("/proposals", func(r chi.Router) {
			r.Get("/", proposals.ListPending)
			r.Post("/", proposals.CreateProposal)
			r.Get("/{id}", proposals.GetProposal)
			r.Post("/{id}/votes", proposals.CastVote)
		})
	})

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, fmt.Errorf("no route for %s: %w", r.URL.Path, domain.ErrNotFound))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusMethodNotAllowed),
		Status:   http.StatusMethodNotAllowed,
		Code:     dto.CodeMethodNotAllowed,
		Detail:   r.Method + " is not supported on " + r.URL.Path,
		Instance: r.RequestURI,
	})
}
