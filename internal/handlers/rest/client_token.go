package rest

import (
	"net/http"

	"github.com/cividesk/braintree-bridge/internal/services/clienttoken"
	"github.com/cividesk/braintree-bridge/pkg/observability"
)

// ClientTokenHandler serves browser tokenization tokens
type ClientTokenHandler struct {
	tokens *clienttoken.Service
}

// NewClientTokenHandler creates the client token handler
func NewClientTokenHandler(tokens *clienttoken.Service) *ClientTokenHandler {
	return &ClientTokenHandler{tokens: tokens}
}

// ServeHTTP handles GET /api/v1/client-token. The response is always 200
// with the envelope; gateway failures travel inside it.
func (h *ClientTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.tokens.Generate(r.Context())

	if resp.Success {
		observability.RecordClientToken("issued")
	} else {
		observability.RecordClientToken("failed")
	}

	writeJSON(w, http.StatusOK, resp)
}
