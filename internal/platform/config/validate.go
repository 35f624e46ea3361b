package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// problems collects validation failures keyed by their koanf path.
type problems []error

func (p *problems) addf(key, format string, args ...any) {
	*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
}

func (p *problems) positive(key string, ok bool) {
	if !ok {
		p.addf(key, "must be positive")
	}
}

func (p *problems) atLeast(key string, got, lower int) {
	if got < lower {
		p.addf(key, "must be >= %d, got %d", lower, got)
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	if !slices.Contains(allowed, got) {
		p.addf(key, "must be one of: %s; got %q", strings.Join(allowed, ", "), got)
	}
}

// endpoint checks that raw is an absolute URL using one of schemes.
func (p *problems) endpoint(key, raw string, schemes ...string) {
	u, err := url.Parse(raw)
	switch {
	case err != nil:
		p.addf(key, "is not a valid URL: %v", err)
	case u.Host == "":
		p.addf(key, "must be an absolute URL, got %q", raw)
	case !slices.Contains(schemes, u.Scheme):
		p.addf(key, "scheme must be one of: %s; got %q", strings.Join(schemes, ", "), u.Scheme)
	}
}

// Validate checks every section and reports all failures at once.
func (c *Config) Validate() error {
	var p problems

	p.atLeast("server.port", c.Server.Port, 1)
	if c.Server.Port > 65535 {
		p.addf("server.port", "must be <= 65535, got %d", c.Server.Port)
	}
	p.positive("server.read_timeout", c.Server.ReadTimeout > 0)
	p.positive("server.write_timeout", c.Server.WriteTimeout > 0)

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	c.Client.check(&p)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		if t.Exporter == "otlp" && t.Endpoint == "" {
			p.addf("telemetry.endpoint", "must not be empty when exporter is otlp")
		}
	}

	p.atLeast("voting.threshold", c.Voting.Threshold, 1)
	p.positive("voting.timeout", c.Voting.Timeout > 0)

	c.checkStore(&p)

	p.atLeast("validator.min_words", c.Validator.MinWords, 1)
	if r := c.Validator.MinAlphaRatio; r <= 0 || r > 1 {
		p.addf("validator.min_alpha_ratio", "must be in (0, 1], got %g", r)
	}
	if c.Validator.BaseURL != "" {
		p.endpoint("validator.base_url", c.Validator.BaseURL, "http", "https")
	}

	p.atLeast("notifier.max_workers", c.Notifier.MaxWorkers, 1)
	for i, hook := range c.Notifier.Webhooks {
		key := fmt.Sprintf("notifier.webhooks[%d]", i)
		if hook == "" {
			p.addf(key, "must not be empty")
			continue
		}
		p.endpoint(key, hook, "http", "https")
	}

	if c.Events.NATSURL != "" {
		p.endpoint("events.nats_url", c.Events.NATSURL, "nats", "tls")
		if c.Events.SubjectPrefix == "" {
			p.addf("events.subject_prefix", "must not be empty when events.nats_url is set")
		}
	}

	return errors.Join(p...)
}

func (cl *ClientConfig) check(p *problems) {
	p.positive("client.timeout", cl.Timeout > 0)
	p.atLeast("client.retry.max_attempts", cl.Retry.MaxAttempts, 1)
	p.positive("client.retry.multiplier", cl.Retry.Multiplier > 0)
	p.atLeast("client.circuit_breaker.max_failures", cl.CircuitBreaker.MaxFailures, 1)

	switch rl := cl.RateLimit; {
	case rl.RequestsPerSecond < 0:
		p.addf("client.rate_limit.requests_per_second", "must not be negative, got %g", rl.RequestsPerSecond)
	case rl.RequestsPerSecond > 0 && rl.BurstSize < 1:
		p.addf("client.rate_limit.burst_size", "must be >= 1 when rate limiting, got %d", rl.BurstSize)
	}
}

// checkStore only inspects the database section when postgres is selected.
func (c *Config) checkStore(p *problems) {
	switch c.Store.Driver {
	case StoreDriverMemory:
		return
	case StoreDriverPostgres:
	default:
		p.oneOf("store.driver", c.Store.Driver, StoreDriverMemory, StoreDriverPostgres)
		return
	}

	d := c.Database
	if d.URL == "" {
		p.addf("database.url", "must not be empty when store.driver is postgres")
	}
	if d.MaxConns < 1 {
		p.addf("database.max_conns", "must be >= 1, got %d", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		p.addf("database.min_conns", "must be between 0 and max_conns, got %d", d.MinConns)
	}
}
