package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleAmount(t *testing.T) {
	amount, err := RequestBundle{FieldAmount: "25.50"}.Amount()
	require.NoError(t, err)
	assert.Equal(t, "25.5", amount.String())

	amount, err = RequestBundle{}.Amount()
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	amount, err = RequestBundle{FieldAmount: "  "}.Amount()
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = RequestBundle{FieldAmount: "abc"}.Amount()
	assert.Error(t, err)
}

func TestBundleClone(t *testing.T) {
	original := RequestBundle{FieldAmount: "10.00"}
	clone := original.Clone()
	clone[FieldTrxnID] = "txn1"

	assert.False(t, original.Has(FieldTrxnID))
	assert.Equal(t, "10.00", clone.Get(FieldAmount))
}

func TestBundleFirstNonEmpty(t *testing.T) {
	bundle := RequestBundle{
		FieldEmailPrimary: "primary@example.org",
		FieldEmail:        "generic@example.org",
	}

	assert.Equal(t, "primary@example.org",
		bundle.FirstNonEmpty(FieldEmailBilling, FieldEmailPrimary, FieldEmail))

	bundle[FieldEmailBilling] = "billing@example.org"
	assert.Equal(t, "billing@example.org",
		bundle.FirstNonEmpty(FieldEmailBilling, FieldEmailPrimary, FieldEmail))

	assert.Equal(t, "", RequestBundle{}.FirstNonEmpty(FieldEmailBilling))
}

func TestBundleCardExpiry(t *testing.T) {
	month, year := RequestBundle{FieldCardExpDate: "12/2030"}.CardExpiry()
	assert.Equal(t, "12", month)
	assert.Equal(t, "2030", year)

	month, year = RequestBundle{FieldCardExpDate: "bogus"}.CardExpiry()
	assert.Empty(t, month)
	assert.Empty(t, year)
}

func TestCompletedOutcome(t *testing.T) {
	bundle := RequestBundle{FieldAmount: "25.00"}
	outcome := CompletedOutcome(bundle, "txn123", "25.00")

	assert.Equal(t, "txn123", outcome.Bundle.Get(FieldTrxnID))
	assert.Equal(t, "25.00", outcome.Bundle.Get(FieldGrossAmount))
	assert.Equal(t, "1", outcome.Bundle.Get(FieldPaymentStatusID))
	assert.False(t, bundle.Has(FieldTrxnID))
}
