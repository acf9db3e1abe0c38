package braintree

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	"github.com/cividesk/braintree-bridge/pkg/resilience"
)

// Gateway is the Braintree wire client. It speaks XML over HTTPS with basic
// auth against /merchants/{merchantID} and implements the transaction,
// payment-method, and client-token gateway ports.
type Gateway struct {
	config     *Config
	httpClient ports.HTTPClient
	logger     ports.Logger
	breaker    *CircuitBreaker
	backoff    resilience.BackoffStrategy
}

// NewGateway creates a Braintree gateway client
func NewGateway(config *Config, httpClient ports.HTTPClient, logger ports.Logger) *Gateway {
	return &Gateway{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
		breaker:    NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		backoff:    resilience.DefaultExponentialBackoff(),
	}
}

// wireResponse carries a gateway reply back to the operation that made it.
// Any HTTP status is a valid wire response; only transport failures and 5xx
// count against the circuit breaker.
type wireResponse struct {
	StatusCode int
	Body       []byte
}

// post marshals payload as XML and sends it to the merchant-scoped path.
// Retries transport errors and 5xx replies with exponential backoff; the
// circuit breaker opens after repeated failures.
func (g *Gateway) post(ctx context.Context, path string, payload any) (*wireResponse, error) {
	body, err := xml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	body = append([]byte(xml.Header), body...)

	url := fmt.Sprintf("%s/merchants/%s%s", g.config.BaseURL, g.config.Credentials.MerchantID, path)

	var response *wireResponse
	err = g.breaker.Call(func() error {
		var lastErr error
		for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
			if attempt > 0 {
				delay := g.backoff.NextDelay(attempt - 1)
				g.logger.Info("Retrying gateway request",
					ports.String("path", path),
					ports.Int("attempt", attempt),
					ports.String("backoff_delay", delay.String()),
				)
				select {
				case <-ctx.Done():
					return fmt.Errorf("retry cancelled: %w", ctx.Err())
				case <-time.After(delay):
				}
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
			req.SetBasicAuth(g.config.Credentials.PublicKey, g.config.Credentials.PrivateKey)
			req.Header.Set("Content-Type", "application/xml")
			req.Header.Set("Accept", "application/xml")
			req.Header.Set("X-ApiVersion", apiVersion)

			startTime := time.Now()
			resp, err := g.httpClient.Do(req)
			if err != nil {
				lastErr = err
				g.logger.Warn("Gateway request failed",
					ports.Err(err),
					ports.Int("attempt", attempt),
				)
				continue
			}

			respBody, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				lastErr = fmt.Errorf("failed to read response: %w", err)
				continue
			}

			g.logger.Debug("Received gateway response",
				ports.String("path", path),
				ports.Int("status_code", resp.StatusCode),
				ports.String("elapsed", time.Since(startTime).String()),
			)

			if resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("gateway returned status %d", resp.StatusCode)
				continue
			}

			response = &wireResponse{StatusCode: resp.StatusCode, Body: respBody}
			return nil
		}

		return fmt.Errorf("failed after %d retries: %w", g.config.MaxRetries, lastErr)
	})

	if err != nil {
		if err == ErrCircuitOpen {
			g.logger.Warn("Circuit breaker is open, rejecting gateway request",
				ports.String("circuit_state", g.breaker.State().String()),
			)
		}
		return nil, err
	}

	return response, nil
}
