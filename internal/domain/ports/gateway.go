package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CardDetails carries raw card data for a direct sale
type CardDetails struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	CVV             string
}

// CustomerDetails is the gateway-side customer snapshot attached to a sale
type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
}

// AddressDetails is the billing address attached to a sale
type AddressDetails struct {
	FirstName         string
	LastName          string
	StreetAddress     string
	Locality          string
	Region            string
	PostalCode        string
	CountryCodeAlpha2 string
}

// SaleRequest describes one transaction sale. Exactly one funding source is
// set: CreditCard for raw card data, or PaymentMethodToken for a vaulted
// instrument.
type SaleRequest struct {
	Amount             decimal.Decimal
	MerchantAccountID  string
	CreditCard         *CardDetails
	PaymentMethodToken string
	CustomerID         string
	Customer           *CustomerDetails
	Billing            *AddressDetails
	SubmitForSettlement bool
	// ThreeDSecureRequired, when set, overrides the gateway-side 3DS rule
	ThreeDSecureRequired *bool
}

// SaleResult is the gateway's view of a settled or authorized transaction
type SaleResult struct {
	TransactionID         string
	Amount                string
	Status                string
	ProcessorResponseCode string
	ProcessorResponseText string
}

// VaultRequest converts a client-side nonce into a reusable payment method
type VaultRequest struct {
	CustomerID         string
	PaymentMethodNonce string
	// VerificationMerchantAccountID, when set, runs the bank-account
	// verification against that sub-merchant account
	VerificationMerchantAccountID string
}

// VaultResult carries the token of the newly vaulted payment method
type VaultResult struct {
	Token string
}

// TransactionGateway performs sales against the gateway
type TransactionGateway interface {
	Sale(ctx context.Context, req SaleRequest) (*SaleResult, error)
}

// PaymentMethodGateway vaults client-side nonces into server-side tokens
type PaymentMethodGateway interface {
	VaultPaymentMethod(ctx context.Context, req VaultRequest) (*VaultResult, error)
}

// ClientTokenGateway issues tokens that authorize browser-side tokenization
type ClientTokenGateway interface {
	GenerateClientToken(ctx context.Context) (string, error)
}
