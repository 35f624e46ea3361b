package acl

import "fmt"

// breakerHealth maps a circuit breaker state to a health check result.
//
// State mapping:
//   - "closed"    -- downstream is operating normally; returns nil.
//   - "half-open" -- circuit breaker is probing recovery; degraded.
//   - "open"      -- downstream is unavailable and requests are rejected.
func breakerHealth(name, state string) error {
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}
