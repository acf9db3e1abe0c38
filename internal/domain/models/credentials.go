package models

// ProcessorCredentials holds the three Braintree keys plus the optional
// merchant account a processor instance settles into.
type ProcessorCredentials struct {
	MerchantID        string
	PublicKey         string
	PrivateKey        string
	MerchantAccountID string
}

// MissingCredentials lists the credential fields that are unset, using the
// labels the host shows on the processor configuration screen.
func (c ProcessorCredentials) MissingCredentials() []string {
	var missing []string
	if c.MerchantID == "" {
		missing = append(missing, "Merchant Id is not set for this payment processor")
	}
	if c.PublicKey == "" {
		missing = append(missing, "Public Key is not set for this payment processor")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "Private Key is not set for this payment processor")
	}
	return missing
}
