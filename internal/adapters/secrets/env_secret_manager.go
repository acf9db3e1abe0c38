package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cividesk/braintree-bridge/internal/adapters/ports"
)

// envSecretManager resolves secrets from environment variables.
// WARNING: development convenience only; use Vault or AWS Secrets Manager in
// production.
type envSecretManager struct {
	logger *zap.Logger
}

// NewEnvSecretManager creates an environment-variable secret manager
func NewEnvSecretManager(logger *zap.Logger) ports.SecretManager {
	return &envSecretManager{logger: logger}
}

// GetSecret maps the path to an environment variable:
// "braintree/merchant_id" -> BRAINTREE_MERCHANT_ID
func (m *envSecretManager) GetSecret(ctx context.Context, path string) (*ports.Secret, error) {
	key := pathToEnvKey(path)

	m.logger.Debug("Reading secret from environment",
		zap.String("path", path),
		zap.String("env_key", key),
	)

	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil, fmt.Errorf("secret not found: %s (env %s)", path, key)
	}

	return &ports.Secret{Value: value, Version: "env"}, nil
}

func pathToEnvKey(path string) string {
	key := strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(path)
	return strings.ToUpper(key)
}
