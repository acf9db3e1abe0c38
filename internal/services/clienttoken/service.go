package clienttoken

import (
	"context"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
)

// TokenResponse is the browser-facing token envelope. Failures travel inside
// the envelope, never as a transport error, so the tokenization script always
// has something to inspect.
type TokenResponse struct {
	ClientToken string `json:"clientToken,omitempty"`
	Error       string `json:"error,omitempty"`
	Success     bool   `json:"success"`
}

// Service issues browser tokenization tokens
type Service struct {
	gateway ports.ClientTokenGateway
	logger  ports.Logger
}

// NewService creates the client token service
func NewService(gateway ports.ClientTokenGateway, logger ports.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// Generate fetches a client token from the gateway. Gateway failures are
// folded into the response envelope.
func (s *Service) Generate(ctx context.Context) TokenResponse {
	token, err := s.gateway.GenerateClientToken(ctx)
	if err != nil {
		s.logger.Error("Failed to generate client token", ports.Err(err))
		return TokenResponse{Error: err.Error(), Success: false}
	}
	return TokenResponse{ClientToken: token, Success: true}
}
