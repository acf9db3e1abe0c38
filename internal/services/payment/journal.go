package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// recordAttempt writes one attempt to the reconciliation journal. Journal
// writes never fail a payment; failures are logged and dropped.
func recordAttempt(
	ctx context.Context,
	journal ports.PaymentJournal,
	logger ports.Logger,
	kind models.ProcessorKind,
	bundle models.RequestBundle,
	amount decimal.Decimal,
	result *ports.SaleResult,
	attemptErr error,
) {
	if journal == nil {
		return
	}

	record := models.PaymentRecord{
		ID:        uuid.New().String(),
		Processor: kind,
		ContactID: bundle.Get(models.FieldContactID),
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if attemptErr != nil {
		record.Status = models.PaymentStatusFailed
		record.Message = attemptErr.Error()
		if perr, ok := attemptErr.(*pkgerrors.ProcessorError); ok {
			record.ResponseCode = perr.Code
			record.Message = perr.Message
		}
	} else if result != nil {
		record.Status = models.PaymentStatusCompleted
		record.TransactionID = result.TransactionID
		record.ResponseCode = result.ProcessorResponseCode
		record.Message = result.ProcessorResponseText
	}

	if err := journal.Record(ctx, record); err != nil {
		logger.Warn("Failed to journal payment attempt",
			ports.Err(err),
			ports.String("contact_id", record.ContactID),
		)
	}
}
