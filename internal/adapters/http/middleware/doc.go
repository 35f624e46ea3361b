// Package middleware holds the inbound HTTP pipeline. Stack returns it in
// serving order:
//
//	Recovery → RequestID → CorrelationID → CORS → OpenTelemetry → Logging → Timeout → router
package middleware
