package rest

import (
	"crypto/subtle"
	"net/http"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
)

const apiKeyHeader = "X-Api-Key"

// requireAPIKey gates an endpoint behind the shared contribution key. An
// empty configured key leaves the endpoint open for sandbox development.
func requireAPIKey(apiKey string, logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" {
				provided := r.Header.Get(apiKeyHeader)
				if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
					logger.Warn("Rejected request without contribution permission",
						ports.String("path", r.URL.Path),
						ports.String("remote_addr", r.RemoteAddr),
					)
					writeJSON(w, http.StatusForbidden, errorResponse{
						Success: false,
						Error:   "you do not have permission to make online contributions",
					})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
