package clienttoken

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cividesk/braintree-bridge/test/mocks"
)

func TestGenerate_Success(t *testing.T) {
	gateway := &mocks.MockClientTokenGateway{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "token-xyz", nil
		},
	}
	svc := NewService(gateway, mocks.NewMockLogger())

	resp := svc.Generate(context.Background())

	assert.True(t, resp.Success)
	assert.Equal(t, "token-xyz", resp.ClientToken)
	assert.Empty(t, resp.Error)
}

func TestGenerate_GatewayFailureStaysInEnvelope(t *testing.T) {
	gateway := &mocks.MockClientTokenGateway{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("gateway unavailable")
		},
	}
	svc := NewService(gateway, mocks.NewMockLogger())

	resp := svc.Generate(context.Background())

	assert.False(t, resp.Success)
	assert.Empty(t, resp.ClientToken)
	assert.Equal(t, "gateway unavailable", resp.Error)
}
