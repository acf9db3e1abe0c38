package secrets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cividesk/braintree-bridge/internal/adapters/ports"
)

func TestEnvSecretManager(t *testing.T) {
	t.Setenv("BRAINTREE_MERCHANT_ID", "merchant123")

	m := NewEnvSecretManager(zap.NewNop())

	secret, err := m.GetSecret(context.Background(), "braintree/merchant_id")
	require.NoError(t, err)
	assert.Equal(t, "merchant123", secret.Value)

	_, err = m.GetSecret(context.Background(), "braintree/no_such_key")
	assert.Error(t, err)
}

func TestPathToEnvKey(t *testing.T) {
	assert.Equal(t, "BRAINTREE_MERCHANT_ID", pathToEnvKey("braintree/merchant_id"))
	assert.Equal(t, "BRAINTREE_PRIVATE_KEY", pathToEnvKey("braintree.private-key"))
}

func TestSecretCache_TTL(t *testing.T) {
	cache := newSecretCache(true, 20*time.Millisecond)
	secret := &ports.Secret{Value: "s3cret", Version: "1"}

	cache.set("key", secret)
	assert.Equal(t, secret, cache.get("key"))

	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, cache.get("key"))
}

func TestSecretCache_Disabled(t *testing.T) {
	cache := newSecretCache(false, time.Minute)
	cache.set("key", &ports.Secret{Value: "s3cret"})

	assert.Nil(t, cache.get("key"))
}
