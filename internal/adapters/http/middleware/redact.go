package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
)

const redacted = "[REDACTED]"

// headerGroup renders request headers as a "headers" log group in key order.
// Credential headers keep their name but lose their value.
func headerGroup(h http.Header) slog.Attr {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(h[k], ",")
		if logging.IsCredentialHeader(k) {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.Group("headers", attrs...)
}
