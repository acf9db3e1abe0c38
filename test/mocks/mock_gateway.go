package mocks

import (
	"context"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
)

// MockTransactionGateway is a mock implementation of TransactionGateway
type MockTransactionGateway struct {
	SaleFunc  func(ctx context.Context, req ports.SaleRequest) (*ports.SaleResult, error)
	SaleCalls []ports.SaleRequest
}

func (m *MockTransactionGateway) Sale(ctx context.Context, req ports.SaleRequest) (*ports.SaleResult, error) {
	m.SaleCalls = append(m.SaleCalls, req)
	if m.SaleFunc != nil {
		return m.SaleFunc(ctx, req)
	}
	return &ports.SaleResult{
		TransactionID: "mock-txn",
		Amount:        req.Amount.StringFixed(2),
		Status:        "submitted_for_settlement",
	}, nil
}

// MockPaymentMethodGateway is a mock implementation of PaymentMethodGateway
type MockPaymentMethodGateway struct {
	VaultFunc  func(ctx context.Context, req ports.VaultRequest) (*ports.VaultResult, error)
	VaultCalls []ports.VaultRequest
}

func (m *MockPaymentMethodGateway) VaultPaymentMethod(ctx context.Context, req ports.VaultRequest) (*ports.VaultResult, error) {
	m.VaultCalls = append(m.VaultCalls, req)
	if m.VaultFunc != nil {
		return m.VaultFunc(ctx, req)
	}
	return &ports.VaultResult{Token: "mock-token"}, nil
}

// MockClientTokenGateway is a mock implementation of ClientTokenGateway
type MockClientTokenGateway struct {
	GenerateFunc  func(ctx context.Context) (string, error)
	GenerateCalls int
}

func (m *MockClientTokenGateway) GenerateClientToken(ctx context.Context) (string, error) {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "mock-client-token", nil
}

// MockPaymentJournal is a mock implementation of PaymentJournal
type MockPaymentJournal struct {
	RecordFunc  func(ctx context.Context, record models.PaymentRecord) error
	RecordCalls []models.PaymentRecord
}

func (m *MockPaymentJournal) Record(ctx context.Context, record models.PaymentRecord) error {
	m.RecordCalls = append(m.RecordCalls, record)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, record)
	}
	return nil
}
