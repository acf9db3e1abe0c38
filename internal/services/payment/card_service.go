package payment

import (
	"context"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// CardService processes credit-card payments: one direct sale with the raw
// card data the host form collected.
type CardService struct {
	gateway ports.TransactionGateway
	creds   models.ProcessorCredentials
	regions ports.RegionCatalog
	journal ports.PaymentJournal
	logger  ports.Logger
}

// NewCardService creates the credit-card payment service. journal may be nil
// when no reconciliation store is configured.
func NewCardService(
	gateway ports.TransactionGateway,
	creds models.ProcessorCredentials,
	regions ports.RegionCatalog,
	journal ports.PaymentJournal,
	logger ports.Logger,
) *CardService {
	return &CardService{
		gateway: gateway,
		creds:   creds,
		regions: regions,
		journal: journal,
		logger:  logger,
	}
}

// Name returns the processor registry key
func (s *CardService) Name() models.ProcessorKind {
	return models.ProcessorCard
}

// CheckConfig reports missing processor credentials
func (s *CardService) CheckConfig() error {
	if problems := s.creds.MissingCredentials(); len(problems) > 0 {
		return &pkgerrors.ConfigError{Problems: problems}
	}
	return nil
}

// FormFields returns nil: the host renders its standard card fields
func (s *CardService) FormFields() []models.FormField {
	return nil
}

// ProcessPayment runs one credit-card sale. A zero or absent amount is a
// no-op success and never reaches the gateway.
func (s *CardService) ProcessPayment(ctx context.Context, bundle models.RequestBundle) (*models.PaymentOutcome, error) {
	amount, err := bundle.Amount()
	if err != nil {
		return nil, pkgerrors.NewValidationError(models.FieldAmount, "amount is not a valid number")
	}
	if amount.IsZero() {
		s.logger.Info("Zero amount, skipping gateway call",
			ports.String("contact_id", bundle.Get(models.FieldContactID)),
		)
		return models.NoOpOutcome(bundle), nil
	}

	month, year := bundle.CardExpiry()
	req := ports.SaleRequest{
		Amount:            amount,
		MerchantAccountID: s.creds.MerchantAccountID,
		CreditCard: &ports.CardDetails{
			Number:          bundle.Get(models.FieldCardNumber),
			ExpirationMonth: month,
			ExpirationYear:  year,
			CVV:             bundle.Get(models.FieldCVV),
		},
		Customer:            buildCustomer(bundle, models.FieldEmailBilling, models.FieldEmailPrimary),
		Billing:             buildBilling(bundle, s.regions),
		SubmitForSettlement: true,
	}

	result, err := s.gateway.Sale(ctx, req)
	if err != nil {
		s.logger.Error("Credit card sale failed",
			ports.Err(err),
			ports.String("contact_id", bundle.Get(models.FieldContactID)),
		)
		recordAttempt(ctx, s.journal, s.logger, models.ProcessorCard, bundle, amount, nil, err)
		return nil, err
	}

	outcome := models.CompletedOutcome(bundle, result.TransactionID, result.Amount)
	recordAttempt(ctx, s.journal, s.logger, models.ProcessorCard, bundle, amount, result, nil)

	s.logger.Info("Credit card payment completed",
		ports.String("transaction_id", result.TransactionID),
		ports.String("amount", result.Amount),
	)
	return outcome, nil
}
