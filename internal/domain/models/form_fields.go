package models

// FieldRule references a host-side validation rule for a form field
type FieldRule struct {
	Name    string `json:"rule_name"`
	Message string `json:"rule_message"`
}

// FormField describes one payment form field for the host's form renderer
type FormField struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	HTMLType    string            `json:"html_type"`
	Size        int               `json:"size,omitempty"`
	MaxLength   int               `json:"max_length,omitempty"`
	Required    bool              `json:"is_required"`
	Options     map[string]string `json:"options,omitempty"`
	Rules       []FieldRule       `json:"rules,omitempty"`
}

var noPunctuationRule = FieldRule{
	Name:    "nopunctuation",
	Message: "Please enter a valid Bank Identification Number (value must not contain punctuation characters).",
}

// ACHFormFields returns the descriptors for the direct-debit payment form
func ACHFormFields() []FormField {
	return []FormField{
		{
			Name:        "account_holder",
			Title:       "Name on Account",
			Description: "The name of the person or business that holds the bank account",
			HTMLType:    "text",
			Size:        20,
			MaxLength:   22,
			Required:    true,
		},
		{
			// US account number, max 17 digits
			Name:        "bank_account_number",
			Title:       "Account Number",
			Description: "Usually between 8 and 12 digits - identifies your individual account",
			HTMLType:    "text",
			Size:        20,
			MaxLength:   17,
			Required:    true,
			Rules:       []FieldRule{noPunctuationRule},
		},
		{
			Name:        "bank_identification_number",
			Title:       "Routing Number",
			Description: "A 9-digit code (ABA number) that is used to identify where your bank account was opened (eg. 211287748)",
			HTMLType:    "text",
			Size:        20,
			MaxLength:   9,
			Required:    true,
			Rules:       []FieldRule{noPunctuationRule},
		},
		{
			Name:        "bank_name",
			Title:       "Bank Name",
			Description: "The name of your bank or financial institution",
			HTMLType:    "text",
			Size:        20,
			MaxLength:   50,
			Required:    true,
		},
		{
			Name:        "bank_account_type",
			Title:       "Account Type",
			Description: "Indicates whether the bank account is a checking or savings account",
			HTMLType:    "select",
			Required:    true,
			Options: map[string]string{
				"checking": "Checking",
				"savings":  "Savings",
			},
		},
		{
			Name:        "bank_ownership_type",
			Title:       "Ownership Type",
			Description: "Indicates whether the bank account is a personal or business account",
			HTMLType:    "select",
			Required:    true,
			Options: map[string]string{
				"personal": "Personal",
				"business": "Business",
			},
		},
	}
}
