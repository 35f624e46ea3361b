package ports

import "context"

// HealthChecker is implemented by any component that can report its health:
// the postgres pool, the remote validator, each notification sink.
type HealthChecker interface {
	// Name identifies the component, e.g. "postgres", "validator",
	// "webhook:hooks.example.com".
	Name() string

	// HealthCheck returns nil when healthy. Implementations must honor ctx.
	HealthCheck(ctx context.Context) error
}

// Criticality says whether a failing component takes the service out of
// rotation.
type Criticality int

const (
	// Critical components must be healthy to serve traffic (the store).
	Critical Criticality = iota
	// Degradable components only degrade the service when failing: the
	// validator falls back to the local heuristic and notification sinks are
	// best effort.
	Degradable
)

// HealthStatus is the overall verdict of a HealthReport.
type HealthStatus string

const (
	HealthReady    HealthStatus = "ready"
	HealthDegraded HealthStatus = "degraded"
	HealthNotReady HealthStatus = "not_ready"
)

// CheckResult is one component's outcome. Err is nil when healthy.
type CheckResult struct {
	Err         error
	Criticality Criticality
}

// HealthReport maps component names to their check results.
type HealthReport map[string]CheckResult

// Status is not_ready when any critical check failed, degraded when only
// degradable checks failed, and ready otherwise.
func (r HealthReport) Status() HealthStatus {
	status := HealthReady
	for _, res := range r {
		if res.Err == nil {
			continue
		}
		if res.Criticality == Critical {
			return HealthNotReady
		}
		status = HealthDegraded
	}
	return status
}

// HealthRegistry collects health checkers and runs them for the readiness
// endpoint.
type HealthRegistry interface {
	// Register adds checker with the given criticality.
	Register(checker HealthChecker, criticality Criticality)

	// CheckAll runs every registered check and reports the results by name.
	CheckAll(ctx context.Context) HealthReport
}
