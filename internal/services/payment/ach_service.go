package payment

import (
	"context"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// achRequiredFields must all be present before the gateway is called. The
// nonce comes from browser-side tokenization; the rest feed the customer and
// billing blocks of the sale.
var achRequiredFields = []string{
	models.FieldPaymentMethodNonce,
	models.FieldBillingFirstName,
	models.FieldBillingLastName,
	models.FieldEmail,
}

// ACHService processes direct-debit payments in two gateway steps: vault the
// browser-issued nonce into a reusable token, then run a sale against it.
type ACHService struct {
	transactions   ports.TransactionGateway
	paymentMethods ports.PaymentMethodGateway
	creds          models.ProcessorCredentials
	regions        ports.RegionCatalog
	journal        ports.PaymentJournal
	logger         ports.Logger
}

// NewACHService creates the direct-debit payment service. journal may be nil
// when no reconciliation store is configured.
func NewACHService(
	transactions ports.TransactionGateway,
	paymentMethods ports.PaymentMethodGateway,
	creds models.ProcessorCredentials,
	regions ports.RegionCatalog,
	journal ports.PaymentJournal,
	logger ports.Logger,
) *ACHService {
	return &ACHService{
		transactions:   transactions,
		paymentMethods: paymentMethods,
		creds:          creds,
		regions:        regions,
		journal:        journal,
		logger:         logger,
	}
}

// Name returns the processor registry key
func (s *ACHService) Name() models.ProcessorKind {
	return models.ProcessorACH
}

// CheckConfig reports missing processor credentials
func (s *ACHService) CheckConfig() error {
	if problems := s.creds.MissingCredentials(); len(problems) > 0 {
		return &pkgerrors.ConfigError{Problems: problems}
	}
	return nil
}

// FormFields returns the bank-account descriptors the host form renders
func (s *ACHService) FormFields() []models.FormField {
	return models.ACHFormFields()
}

// ProcessPayment vaults the nonce and sells against the resulting token. A
// zero or absent amount is a no-op success and never reaches the gateway.
func (s *ACHService) ProcessPayment(ctx context.Context, bundle models.RequestBundle) (*models.PaymentOutcome, error) {
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

	for _, field := range achRequiredFields {
		if !bundle.Has(field) {
			return nil, pkgerrors.MissingFieldError(field)
		}
	}

	vaulted, err := s.paymentMethods.VaultPaymentMethod(ctx, ports.VaultRequest{
		CustomerID:                    bundle.Get(models.FieldContactID),
		PaymentMethodNonce:            bundle.Get(models.FieldPaymentMethodNonce),
		VerificationMerchantAccountID: s.creds.MerchantAccountID,
	})
	if err != nil {
		s.logger.Error("Failed to vault bank account",
			ports.Err(err),
			ports.String("contact_id", bundle.Get(models.FieldContactID)),
		)
		recordAttempt(ctx, s.journal, s.logger, models.ProcessorACH, bundle, amount, nil, err)
		return nil, err
	}

	threeDSecure := false
	req := ports.SaleRequest{
		Amount:             amount,
		MerchantAccountID:  s.creds.MerchantAccountID,
		PaymentMethodToken: vaulted.Token,
		Customer: buildCustomer(bundle,
			models.FieldEmailBilling, models.FieldEmailPrimary, models.FieldEmail),
		Billing:              buildBilling(bundle, s.regions),
		SubmitForSettlement:  true,
		ThreeDSecureRequired: &threeDSecure,
	}

	result, err := s.transactions.Sale(ctx, req)
	if err != nil {
		s.logger.Error("Direct debit sale failed",
			ports.Err(err),
			ports.String("contact_id", bundle.Get(models.FieldContactID)),
		)
		recordAttempt(ctx, s.journal, s.logger, models.ProcessorACH, bundle, amount, nil, err)
		return nil, err
	}

	outcome := models.CompletedOutcome(bundle, result.TransactionID, result.Amount)
	recordAttempt(ctx, s.journal, s.logger, models.ProcessorACH, bundle, amount, result, nil)

	s.logger.Info("Direct debit payment completed",
		ports.String("transaction_id", result.TransactionID),
		ports.String("amount", result.Amount),
	)
	return outcome, nil
}
