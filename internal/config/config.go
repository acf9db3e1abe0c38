package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cividesk/braintree-bridge/internal/adapters/ports"
	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gateway  GatewayConfig
	Secrets  SecretsConfig
	Logger   LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Host        string
	MetricsPort int

	// APIKey authorizes the client-token endpoint. Callers without it get
	// the unauthorized envelope.
	APIKey string
}

// DatabaseConfig holds the optional payment journal database configuration.
// An empty URL disables journaling.
type DatabaseConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// GatewayConfig holds Braintree gateway configuration
type GatewayConfig struct {
	// Environment: "sandbox" or "production"
	Environment string
	Timeout     int
}

// SecretsConfig selects the credential backend and names the secret paths
type SecretsConfig struct {
	// Backend: "env", "vault", or "aws"
	Backend string

	// Vault settings
	VaultAddress    string
	VaultAuthMethod string
	VaultToken      string
	VaultRoleID     string
	VaultSecretID   string
	VaultMountPath  string

	// AWS settings
	AWSRegion   string
	AWSProfile  string
	AWSEndpoint string

	// Credential paths within the backend
	MerchantIDPath        string
	PublicKeyPath         string
	PrivateKeyPath        string
	MerchantAccountIDPath string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			MetricsPort: getEnvAsInt("METRICS_PORT", 9090),
			APIKey:      getEnv("API_KEY", ""),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			MaxConns: int32(getEnvAsInt("DB_MAX_CONNS", 25)),
			MinConns: int32(getEnvAsInt("DB_MIN_CONNS", 5)),
		},
		Gateway: GatewayConfig{
			Environment: getEnv("BRAINTREE_ENVIRONMENT", "sandbox"),
			Timeout:     getEnvAsInt("BRAINTREE_TIMEOUT", 30),
		},
		Secrets: SecretsConfig{
			Backend:         getEnv("SECRETS_BACKEND", "env"),
			VaultAddress:    getEnv("VAULT_ADDR", ""),
			VaultAuthMethod: getEnv("VAULT_AUTH_METHOD", "token"),
			VaultToken:      getEnv("VAULT_TOKEN", ""),
			VaultRoleID:     getEnv("VAULT_ROLE_ID", ""),
			VaultSecretID:   getEnv("VAULT_SECRET_ID", ""),
			VaultMountPath:  getEnv("VAULT_MOUNT_PATH", "secret"),
			AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
			AWSProfile:      getEnv("AWS_PROFILE", ""),
			AWSEndpoint:     getEnv("AWS_SECRETS_ENDPOINT", ""),

			MerchantIDPath:        getEnv("BRAINTREE_MERCHANT_ID_PATH", "braintree/merchant_id"),
			PublicKeyPath:         getEnv("BRAINTREE_PUBLIC_KEY_PATH", "braintree/public_key"),
			PrivateKeyPath:        getEnv("BRAINTREE_PRIVATE_KEY_PATH", "braintree/private_key"),
			MerchantAccountIDPath: getEnv("BRAINTREE_MERCHANT_ACCOUNT_ID_PATH", "braintree/merchant_account_id"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	switch cfg.Gateway.Environment {
	case "sandbox", "production":
	default:
		return nil, fmt.Errorf("BRAINTREE_ENVIRONMENT must be sandbox or production, got %q", cfg.Gateway.Environment)
	}

	switch cfg.Secrets.Backend {
	case "env", "vault", "aws":
	default:
		return nil, fmt.Errorf("SECRETS_BACKEND must be env, vault, or aws, got %q", cfg.Secrets.Backend)
	}

	if cfg.Secrets.Backend == "vault" && cfg.Secrets.VaultAddress == "" {
		return nil, fmt.Errorf("VAULT_ADDR is required with the vault secrets backend")
	}

	return cfg, nil
}

// LoadCredentials resolves the processor credentials through the configured
// secret backend. The merchant account id is optional.
func (c *Config) LoadCredentials(ctx context.Context, sm ports.SecretManager) (models.ProcessorCredentials, error) {
	var creds models.ProcessorCredentials

	merchantID, err := sm.GetSecret(ctx, c.Secrets.MerchantIDPath)
	if err != nil {
		return creds, fmt.Errorf("failed to load merchant id: %w", err)
	}
	publicKey, err := sm.GetSecret(ctx, c.Secrets.PublicKeyPath)
	if err != nil {
		return creds, fmt.Errorf("failed to load public key: %w", err)
	}
	privateKey, err := sm.GetSecret(ctx, c.Secrets.PrivateKeyPath)
	if err != nil {
		return creds, fmt.Errorf("failed to load private key: %w", err)
	}

	creds.MerchantID = merchantID.Value
	creds.PublicKey = publicKey.Value
	creds.PrivateKey = privateKey.Value

	if account, err := sm.GetSecret(ctx, c.Secrets.MerchantAccountIDPath); err == nil {
		creds.MerchantAccountID = account.Value
	}

	return creds, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
