// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Voting    VotingConfig    `koanf:"voting"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database"`
	Validator ValidatorConfig `koanf:"validator"`
	Notifier  NotifierConfig  `koanf:"notifier"`
	Events    EventsConfig    `koanf:"events"`
	CORS      CORSConfig      `koanf:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds the resilience settings shared by every outbound HTTP
// client. BaseURL is filled in per target by the caller (the validator URL,
// one webhook URL) and is not read from configuration files.
type ClientConfig struct {
	BaseURL        string               `koanf:"-"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// WithBaseURL returns a copy of c targeting baseURL.
func (c ClientConfig) WithBaseURL(baseURL string) *ClientConfig {
	c.BaseURL = baseURL
	return &c
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// VotingConfig holds the consensus policy applied to new proposals and votes.
type VotingConfig struct {
	Threshold        int           `koanf:"threshold"`
	Timeout          time.Duration `koanf:"timeout"`
	AllowSelfApprove bool          `koanf:"allow_self_approve"`
}

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `koanf:"driver"`
}

// DatabaseConfig holds PostgreSQL pool settings. Used when store.driver is
// "postgres".
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int32         `koanf:"max_conns"`
	MinConns        int32         `koanf:"min_conns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// ValidatorConfig configures the text validation gate. An empty BaseURL
// runs the local heuristic only.
type ValidatorConfig struct {
	BaseURL       string  `koanf:"base_url"`
	MinWords      int     `koanf:"min_words"`
	MinAlphaRatio float64 `koanf:"min_alpha_ratio"`
}

// NotifierConfig lists outbound webhooks that receive every event.
// Secret, when set, is sent to every webhook in the X-Hook-Secret header.
type NotifierConfig struct {
	Webhooks   []string `koanf:"webhooks"`
	Secret     string   `koanf:"secret"`
	MaxWorkers int      `koanf:"max_workers"`
}

// EventsConfig configures the NATS event publisher. An empty NATSURL
// disables it.
type EventsConfig struct {
	NATSURL       string `koanf:"nats_url"`
	SubjectPrefix string `koanf:"subject_prefix"`
}

// CORSConfig holds cross-origin settings for the HTTP API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}
