package postgres

import (
	"context"
	"fmt"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

const insertPaymentRecord = `
INSERT INTO payment_journal (
    id, processor, contact_id, amount, status,
    transaction_id, response_code, message, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// JournalRepository persists payment attempts for reconciliation
type JournalRepository struct {
	db *Adapter
}

// NewJournalRepository creates the journal repository
func NewJournalRepository(db *Adapter) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record writes one payment attempt
func (r *JournalRepository) Record(ctx context.Context, record models.PaymentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.config.WriteTimeout)
	defer cancel()

	_, err := r.db.pool.Exec(ctx, insertPaymentRecord,
		record.ID,
		string(record.Processor),
		record.ContactID,
		record.Amount,
		int(record.Status),
		record.TransactionID,
		record.ResponseCode,
		record.Message,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment record: %w", err)
	}
	return nil
}
