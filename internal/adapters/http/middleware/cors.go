package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

const corsMaxAge = 10 * time.Minute

// CORS returns middleware that answers browser preflight requests and sets
// Access-Control-* headers for the given origins. rs/cors treats an empty
// origin list as "allow everything", so an empty list here disables CORS
// handling entirely instead.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders: []string{headerRequestID, headerCorrelationID},
		MaxAge:         int(corsMaxAge.Seconds()),
	})
	return c.Handler
}
