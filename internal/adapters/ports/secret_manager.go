package ports

import (
	"context"
)

// Secret is a retrieved secret with its version metadata
type Secret struct {
	Value   string
	Version string
}

// SecretManager is the read-side port for secret backends. The bridge only
// ever reads processor credentials; rotation happens out of band in the
// backend itself.
//
// Path format depends on the implementation:
//   - env: "braintree/merchant_id" -> BRAINTREE_MERCHANT_ID
//   - Vault: KV v2 path under the configured mount
//   - AWS: the Secrets Manager secret name
type SecretManager interface {
	GetSecret(ctx context.Context, path string) (*Secret, error)
}
