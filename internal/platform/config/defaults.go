package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultVotingThreshold = 2

	defaultDatabaseMaxConns = 10
	defaultDatabaseMinConns = 1

	defaultValidatorMinWords      = 3
	defaultValidatorMinAlphaRatio = 0.6

	defaultNotifierMaxWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "5s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "decisionnote",

		"voting.threshold":          defaultVotingThreshold,
		"voting.timeout":            "60m",
		"voting.allow_self_approve": false,

		"store.driver": StoreDriverMemory,

		"database.url":                "",
		"database.max_conns":          defaultDatabaseMaxConns,
		"database.min_conns":          defaultDatabaseMinConns,
		"database.max_conn_lifetime":  "30m",
		"database.max_conn_idle_time": "5m",
		"database.auto_migrate":       false,

		"validator.base_url":        "",
		"validator.min_words":       defaultValidatorMinWords,
		"validator.min_alpha_ratio": defaultValidatorMinAlphaRatio,

		"notifier.webhooks":    []string{},
		"notifier.secret":      "",
		"notifier.max_workers": defaultNotifierMaxWorkers,

		"events.nats_url":       "",
		"events.subject_prefix": "decisionnote",

		"cors.allowed_origins": []string{},
	}
}
