// Package container wires the application graph with samber/do. Both the
// HTTP server and the decisionctl CLI resolve their dependencies from it, so
// a store driver or notifier configured for one is configured for both.
package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/events/natsbus"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/store/memory"
	"github.com/jsamuelsen11/decisionnote/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/decisionnote/internal/app"
	"github.com/jsamuelsen11/decisionnote/internal/domain/proposal"
	"github.com/jsamuelsen11/decisionnote/internal/platform/config"
	"github.com/jsamuelsen11/decisionnote/internal/platform/health"
	"github.com/jsamuelsen11/decisionnote/internal/platform/httpclient"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
	"github.com/jsamuelsen11/decisionnote/internal/ports"
	"github.com/jsamuelsen11/decisionnote/internal/validation"
)

const openTimeout = 10 * time.Second

// Container owns the injector and the resources its providers opened.
type Container struct {
	injector *do.RootScope
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *telemetry.Metrics

	mu      sync.Mutex
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// New registers every provider. Nothing is constructed until first Invoke.
// A nil metrics value is replaced with no-op instruments.
func New(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *Container {
	if logger == nil {
		logger = logging.Discard()
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}

	c := &Container{
		injector: do.New(),
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
	}

	do.ProvideValue(c.injector, cfg)
	do.ProvideValue(c.injector, logger)
	do.ProvideValue(c.injector, metrics)

	c.registerPlatform()
	c.registerStores()
	c.registerClients()
	c.registerApp()

	return c
}

// Injector exposes the underlying scope so binaries can add their own
// providers on top of the shared graph.
func (c *Container) Injector() do.Injector {
	return c.injector
}

// Workflow resolves the service that implements every inbound operation.
func (c *Container) Workflow() (*app.Workflow, error) {
	return do.Invoke[*app.Workflow](c.injector)
}

// HealthRegistry resolves the shared registry. Providers register their
// checkers as they are constructed.
func (c *Container) HealthRegistry() ports.HealthRegistry {
	return do.MustInvoke[ports.HealthRegistry](c.injector)
}

// Close releases opened resources in reverse order of acquisition.
func (c *Container) Close() error {
	c.mu.Lock()
	closers := slices.Clone(c.closers)
	c.closers = nil
	c.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", closers[i].name, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Container) clientOptions() []httpclient.Option {
	return []httpclient.Option{httpclient.WithMetrics(c.metrics), httpclient.WithLogger(c.logger)}
}

func (c *Container) onClose(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closers = append(c.closers, namedCloser{name: name, close: fn})
}

func (c *Container) registerPlatform() {
	do.Provide(c.injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func (c *Container) registerStores() {
	do.Provide(c.injector, func(i do.Injector) (*postgres.DB, error) {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()

		if c.cfg.Database.AutoMigrate {
			if err := Migrate(c.cfg.Database.URL, c.logger); err != nil {
				return nil, err
			}
		}

		db, err := postgres.Open(ctx, &c.cfg.Database, c.logger)
		if err != nil {
			return nil, err
		}
		c.onClose("postgres", func() error {
			db.Close()
			return nil
		})
		do.MustInvoke[ports.HealthRegistry](i).Register(db, ports.Critical)
		return db, nil
	})

	do.Provide(c.injector, func(i do.Injector) (ports.ProposalStore, error) {
		if c.cfg.Store.Driver != config.StoreDriverPostgres {
			return memory.NewProposalStore(), nil
		}
		db, err := do.Invoke[*postgres.DB](i)
		if err != nil {
			return nil, err
		}
		return postgres.NewProposalStore(db), nil
	})

	do.Provide(c.injector, func(i do.Injector) (ports.DecisionStore, error) {
		if c.cfg.Store.Driver != config.StoreDriverPostgres {
			return memory.NewDecisionStore(), nil
		}
		db, err := do.Invoke[*postgres.DB](i)
		if err != nil {
			return nil, err
		}
		return postgres.NewDecisionStore(db), nil
	})
}

func (c *Container) registerClients() {
	do.Provide(c.injector, func(i do.Injector) (ports.TextValidator, error) {
		heuristic := validation.NewHeuristic(c.cfg.Validator.MinWords, c.cfg.Validator.MinAlphaRatio)
		if c.cfg.Validator.BaseURL == "" {
			return heuristic, nil
		}

		client := httpclient.New(c.cfg.Client.WithBaseURL(c.cfg.Validator.BaseURL), "validator", c.clientOptions()...)
		remote := acl.NewValidatorClient(acl.NewRequester(client, c.logger), heuristic, c.logger)
		do.MustInvoke[ports.HealthRegistry](i).Register(remote, ports.Degradable)
		return remote, nil
	})

	do.Provide(c.injector, func(i do.Injector) ([]ports.Notifier, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)

		var reqOpts []acl.RequesterOption
		if c.cfg.Notifier.Secret != "" {
			reqOpts = append(reqOpts, acl.WithHeader(acl.WebhookSecretHeader, c.cfg.Notifier.Secret))
		}

		notifiers := make([]ports.Notifier, 0, len(c.cfg.Notifier.Webhooks)+1)
		for _, hook := range c.cfg.Notifier.Webhooks {
			client := httpclient.New(c.cfg.Client.WithBaseURL(hook), acl.WebhookName(hook), c.clientOptions()...)
			n := acl.NewWebhookNotifier(acl.NewRequester(client, c.logger, reqOpts...))
			registry.Register(n, ports.Degradable)
			notifiers = append(notifiers, n)
		}

		if c.cfg.Events.NATSURL != "" {
			pub, err := natsbus.Connect(c.cfg.Events.NATSURL, c.cfg.Events.SubjectPrefix, c.logger)
			if err != nil {
				return nil, err
			}
			c.onClose("nats", pub.Close)
			registry.Register(pub, ports.Degradable)
			notifiers = append(notifiers, pub)
		}

		return notifiers, nil
	})
}

func (c *Container) registerApp() {
	do.Provide(c.injector, func(i do.Injector) (*app.DecisionLedger, error) {
		decisions, err := do.Invoke[ports.DecisionStore](i)
		if err != nil {
			return nil, err
		}
		return app.NewDecisionLedger(decisions, c.logger, app.WithMetrics(c.metrics)), nil
	})

	do.Provide(c.injector, func(i do.Injector) (*app.VotingEngine, error) {
		proposals, err := do.Invoke[ports.ProposalStore](i)
		if err != nil {
			return nil, err
		}
		ledger, err := do.Invoke[*app.DecisionLedger](i)
		if err != nil {
			return nil, err
		}
		return app.NewVotingEngine(proposals, ledger, c.logger, app.WithMetrics(c.metrics)), nil
	})

	do.Provide(c.injector, func(i do.Injector) (*app.Workflow, error) {
		engine, err := do.Invoke[*app.VotingEngine](i)
		if err != nil {
			return nil, err
		}
		ledger := do.MustInvoke[*app.DecisionLedger](i)

		validator, err := do.Invoke[ports.TextValidator](i)
		if err != nil {
			return nil, err
		}
		notifiers, err := do.Invoke[[]ports.Notifier](i)
		if err != nil {
			return nil, err
		}

		cfg := app.WorkflowConfig{
			Policy: proposal.Policy{
				Threshold:        c.cfg.Voting.Threshold,
				Timeout:          c.cfg.Voting.Timeout,
				AllowSelfApprove: c.cfg.Voting.AllowSelfApprove,
			},
			MaxNotifyWorkers: c.cfg.Notifier.MaxWorkers,
		}
		return app.NewWorkflow(engine, ledger, validator, notifiers, cfg, c.logger, app.WithMetrics(c.metrics)), nil
	})
}

// Migrate applies every pending schema migration to the database at url.
func Migrate(url string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(url)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Warn("closing migrator", slog.Any("error", cerr))
		}
	}()

	if err := m.Up(); err != nil {
		return err
	}

	version, _, err := m.Version()
	if err != nil {
		return err
	}
	logger.Info("database schema is current", slog.Uint64("version", uint64(version)))
	return nil
}
