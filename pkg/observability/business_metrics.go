package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	// Payment transaction metrics
	paymentTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_transactions_total",
		Help: "Total number of payment transactions",
	}, []string{
		"processor",     // credit_card, ach
		"status",        // completed, failed, no_op
		"response_code", // gateway processor response code, when present
	})

	paymentAmountCents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_amount_cents_total",
		Help: "Total payment amount in cents (for revenue tracking)",
	}, []string{
		"processor",
		"status",
	})

	// End-to-end processing duration, including both gateway round trips
	// on the direct-debit path
	paymentProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_processing_duration_seconds",
		Help:    "Total time to process a payment attempt",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{
		"processor",
		"status",
	})

	clientTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "client_tokens_total",
		Help: "Total browser tokenization tokens issued",
	}, []string{
		"status", // issued, failed
	})
)

// RecordPayment records one payment attempt
func RecordPayment(processor, status, responseCode string, amount decimal.Decimal, elapsed time.Duration) {
	paymentTransactionsTotal.WithLabelValues(processor, status, responseCode).Inc()
	paymentProcessingDuration.WithLabelValues(processor, status).Observe(elapsed.Seconds())

	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	if cents > 0 {
		paymentAmountCents.WithLabelValues(processor, status).Add(float64(cents))
	}
}

// RecordClientToken records one client token request
func RecordClientToken(status string) {
	clientTokensTotal.WithLabelValues(status).Inc()
}
