package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the host-side contribution status code written back into
// the bundle after an attempt.
type PaymentStatus int

const (
	PaymentStatusCompleted PaymentStatus = 1
	PaymentStatusPending   PaymentStatus = 2
	PaymentStatusFailed    PaymentStatus = 4
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusCompleted:
		return "completed"
	case PaymentStatusPending:
		return "pending"
	case PaymentStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProcessorKind distinguishes the two adapter flavors
type ProcessorKind string

const (
	ProcessorCard ProcessorKind = "credit_card"
	ProcessorACH  ProcessorKind = "ach"
)

// PaymentOutcome is the result of one ProcessPayment call. Bundle is the
// host map with the status fields applied; the typed fields mirror what was
// written so callers never re-parse the map.
type PaymentOutcome struct {
	Bundle        RequestBundle
	TransactionID string
	GrossAmount   string
	Status        PaymentStatus
	// NoOp marks a zero-amount request that never reached the gateway
	NoOp bool
}

// CompletedOutcome applies a successful gateway sale to a copy of the bundle
func CompletedOutcome(bundle RequestBundle, transactionID, grossAmount string) *PaymentOutcome {
	out := bundle.Clone()
	out[FieldTrxnID] = transactionID
	out[FieldGrossAmount] = grossAmount
	out[FieldPaymentStatusID] = strconv.Itoa(int(PaymentStatusCompleted))
	return &PaymentOutcome{
		Bundle:        out,
		TransactionID: transactionID,
		GrossAmount:   grossAmount,
		Status:        PaymentStatusCompleted,
	}
}

// NoOpOutcome passes a zero-amount bundle through unchanged
func NoOpOutcome(bundle RequestBundle) *PaymentOutcome {
	return &PaymentOutcome{
		Bundle: bundle,
		Status: PaymentStatusCompleted,
		NoOp:   true,
	}
}

// PaymentRecord is one journal row: a payment attempt and its outcome
type PaymentRecord struct {
	ID            string
	Processor     ProcessorKind
	ContactID     string
	Amount        decimal.Decimal
	Status        PaymentStatus
	TransactionID string
	ResponseCode  string
	Message       string
	CreatedAt     time.Time
}
