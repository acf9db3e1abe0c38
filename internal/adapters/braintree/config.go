package braintree

import (
	"time"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

const (
	productionBaseURL = "https://api.braintreegateway.com"
	sandboxBaseURL    = "https://api.sandbox.braintreegateway.com"

	apiVersion = "6"
)

// Config contains configuration for the Braintree gateway client
type Config struct {
	// Base URL of the gateway REST surface.
	// Sandbox: https://api.sandbox.braintreegateway.com
	// Production: https://api.braintreegateway.com
	BaseURL string

	Credentials models.ProcessorCredentials

	// HTTP client timeout
	Timeout time.Duration

	// Retry configuration for transport-level failures
	MaxRetries int
}

// DefaultConfig returns the gateway configuration for the given environment
func DefaultConfig(environment string, creds models.ProcessorCredentials) *Config {
	baseURL := productionBaseURL
	if environment == "sandbox" {
		baseURL = sandboxBaseURL
	}

	return &Config{
		BaseURL:     baseURL,
		Credentials: creds,
		Timeout:     30 * time.Second,
		MaxRetries:  3,
	}
}
