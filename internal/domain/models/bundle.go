package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Host-side field names. The host CRM owns these names; the numeric suffix
// on billing fields is the host's billing location type.
const (
	FieldAmount            = "amount"
	FieldContactID         = "contactID"
	FieldPaymentMethodNonce = "payment_method_nonce"

	FieldCardNumber  = "credit_card_number"
	FieldCardExpDate = "credit_card_exp_date"
	FieldCVV         = "cvv2"

	FieldFirstName = "first_name"
	FieldLastName  = "last_name"

	FieldBillingFirstName = "billing_first_name"
	FieldBillingLastName  = "billing_last_name"
	FieldBillingStreet    = "billing_street_address-5"
	FieldBillingCity      = "billing_city-5"
	FieldBillingStateID   = "billing_state_province_id-5"
	FieldBillingPostal    = "billing_postal_code-5"
	FieldBillingCountryID = "billing_country_id-5"

	FieldEmailBilling = "email-5"
	FieldEmailPrimary = "email-Primary"
	FieldEmail        = "email"

	FieldRoutingNumber   = "bank_identification_number"
	FieldAccountNumber   = "bank_account_number"
	FieldBankAccountType = "bank_account_type"

	FieldTrxnID          = "trxn_id"
	FieldGrossAmount     = "gross_amount"
	FieldPaymentStatusID = "payment_status_id"
	FieldErrorMessage    = "error_message"
)

// RequestBundle is the flat field-name-keyed payment parameter map supplied
// by the host for one payment attempt. It lives only for the request.
type RequestBundle map[string]string

// Get returns the value for key, or "" when absent
func (b RequestBundle) Get(key string) string {
	return b[key]
}

// Has reports whether key is present and non-empty
func (b RequestBundle) Has(key string) bool {
	return strings.TrimSpace(b[key]) != ""
}

// Clone returns a shallow copy so result fields never mutate the host's map
func (b RequestBundle) Clone() RequestBundle {
	out := make(RequestBundle, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Amount parses the bundle amount. A missing or empty amount parses as zero.
func (b RequestBundle) Amount() (decimal.Decimal, error) {
	raw := strings.TrimSpace(b[FieldAmount])
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// FirstNonEmpty returns the value of the first present, non-empty key
func (b RequestBundle) FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		if b.Has(key) {
			return b[key]
		}
	}
	return ""
}

// CardExpiry splits the host expiry value ("MM/YYYY") into month and year.
// The host form always submits both components; malformed input surfaces as
// an empty pair and fails gateway-side validation.
func (b RequestBundle) CardExpiry() (month, year string) {
	parts := strings.SplitN(b[FieldCardExpDate], "/", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
