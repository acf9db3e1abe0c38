package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cividesk/braintree-bridge/internal/adapters/secrets"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sandbox", cfg.Gateway.Environment)
	assert.Equal(t, "env", cfg.Secrets.Backend)
	assert.Equal(t, "braintree/merchant_id", cfg.Secrets.MerchantIDPath)
}

func TestLoadFromEnv_RejectsBadEnvironment(t *testing.T) {
	t.Setenv("BRAINTREE_ENVIRONMENT", "staging")

	_, err := LoadFromEnv()

	assert.Error(t, err)
}

func TestLoadFromEnv_RejectsBadSecretsBackend(t *testing.T) {
	t.Setenv("SECRETS_BACKEND", "sticky-note")

	_, err := LoadFromEnv()

	assert.Error(t, err)
}

func TestLoadFromEnv_VaultRequiresAddress(t *testing.T) {
	t.Setenv("SECRETS_BACKEND", "vault")

	_, err := LoadFromEnv()

	assert.Error(t, err)
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("BRAINTREE_MERCHANT_ID", "merchant123")
	t.Setenv("BRAINTREE_PUBLIC_KEY", "pub_key")
	t.Setenv("BRAINTREE_PRIVATE_KEY", "priv_key")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	sm := secrets.NewEnvSecretManager(zap.NewNop())
	creds, err := cfg.LoadCredentials(context.Background(), sm)

	require.NoError(t, err)
	assert.Equal(t, "merchant123", creds.MerchantID)
	assert.Equal(t, "pub_key", creds.PublicKey)
	assert.Equal(t, "priv_key", creds.PrivateKey)
	// Merchant account id is optional
	assert.Empty(t, creds.MerchantAccountID)
	assert.Empty(t, creds.MissingCredentials())
}

func TestLoadCredentials_MissingKeyFails(t *testing.T) {
	t.Setenv("BRAINTREE_MERCHANT_ID", "merchant123")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	sm := secrets.NewEnvSecretManager(zap.NewNop())
	_, err = cfg.LoadCredentials(context.Background(), sm)

	assert.Error(t, err)
}
