package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/decisionnote/internal/adapters/http"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/decisionnote/internal/app"
	"github.com/jsamuelsen11/decisionnote/internal/platform/config"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

// registerHTTP adds the inbound HTTP layer on top of the shared container.
func registerHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(i do.Injector) (*handlers.DecisionHandler, error) {
		wf, err := do.Invoke[*app.Workflow](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewDecisionHandler(wf), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProposalHandler, error) {
		wf, err := do.Invoke[*app.Workflow](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewProposalHandler(wf), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		decisionH, err := do.Invoke[*handlers.DecisionHandler](i)
		if err != nil {
			return nil, err
		}
		proposalH := do.MustInvoke[*handlers.ProposalHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)

		return adapthttp.NewRouter(decisionH, proposalH, healthH, middleware.Stack(middleware.StackOptions{
			Logger:         logger,
			Metrics:        metrics,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
