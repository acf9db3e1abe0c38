package models

// Host payment instrument codes
const (
	PaymentInstrumentCard = 1
	PaymentInstrumentACH  = 2
)

// ProcessorTypeRecord is the registration record the host needs to list a
// processor type and label its credential fields.
type ProcessorTypeRecord struct {
	Name           string        `json:"name"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Kind           ProcessorKind `json:"kind"`
	UserNameLabel  string        `json:"user_name_label"`
	PasswordLabel  string        `json:"password_label"`
	SignatureLabel string        `json:"signature_label"`
	SupportsRecur  bool          `json:"is_recur"`
	PaymentType    int           `json:"payment_type"`
	URLSiteDefault string        `json:"url_site_default"`
	URLSiteTest    string        `json:"url_site_test"`
}

// ProcessorTypes returns the registration records for both adapters
func ProcessorTypes() []ProcessorTypeRecord {
	return []ProcessorTypeRecord{
		{
			Name:           "Braintree",
			Title:          "Braintree cividesk",
			Description:    "Braintree credit card processor",
			Kind:           ProcessorCard,
			UserNameLabel:  "Merchant Id",
			PasswordLabel:  "Public Key",
			SignatureLabel: "Private Key",
			SupportsRecur:  true,
			PaymentType:    PaymentInstrumentCard,
			URLSiteDefault: "https://api.braintreegateway.com",
			URLSiteTest:    "https://api.sandbox.braintreegateway.com",
		},
		{
			Name:           "BraintreeACH",
			Title:          "Braintree ACH",
			Description:    "Braintree direct debit processor",
			Kind:           ProcessorACH,
			UserNameLabel:  "Merchant Id",
			PasswordLabel:  "Public Key",
			SignatureLabel: "Private Key",
			SupportsRecur:  true,
			PaymentType:    PaymentInstrumentACH,
			URLSiteDefault: "https://api.braintreegateway.com",
			URLSiteTest:    "https://api.sandbox.braintreegateway.com",
		},
	}
}
