// Package health runs the dependency checks behind the readiness probe: the
// postgres pool, the remote validator, webhook sinks and the event bus.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

type entry struct {
	checker     ports.HealthChecker
	criticality ports.Criticality
}

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu           sync.RWMutex
	entries      []entry
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker, criticality ports.Criticality) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{checker: checker, criticality: criticality})
}

// CheckAll runs every check concurrently, each under its own timeout. When
// two checkers share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()
			errs[i] = e.checker.HealthCheck(checkCtx)
		})
	}
	wg.Wait()

	report := make(ports.HealthReport, len(entries))
	for i, e := range entries {
		report[e.checker.Name()] = ports.CheckResult{Err: errs[i], Criticality: e.criticality}
	}
	return report
}
