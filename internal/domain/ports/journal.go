package ports

import (
	"context"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

// PaymentJournal records payment attempts for reconciliation. Journal writes
// are best-effort and never fail a payment.
type PaymentJournal interface {
	Record(ctx context.Context, record models.PaymentRecord) error
}
