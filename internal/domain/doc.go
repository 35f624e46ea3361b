// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/proposal, domain/decision).
// This root package holds sentinel errors and validation types that are shared
// across all entities and mapped to transport errors by the inbound adapters.
package domain
