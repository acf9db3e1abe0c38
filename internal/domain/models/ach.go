package models

// BankAccountType represents the type of bank account
type BankAccountType string

const (
	AccountTypeChecking BankAccountType = "checking"
	AccountTypeSavings  BankAccountType = "savings"
)

// BankOwnershipType represents who owns the bank account
type BankOwnershipType string

const (
	OwnershipPersonal BankOwnershipType = "personal"
	OwnershipBusiness BankOwnershipType = "business"
)

// ValidRoutingNumber reports whether s is a 9-digit ABA routing number with
// a correct checksum. Digits are weighted 3, 7, 1 per position within each
// triple; the weighted sum over all nine digits must be a multiple of 10.
func ValidRoutingNumber(s string) bool {
	if len(s) != 9 || !allDigits(s) {
		return false
	}
	sum := 0
	for i := 0; i < 9; i += 3 {
		sum += int(s[i]-'0')*3 +
			int(s[i+1]-'0')*7 +
			int(s[i+2]-'0')
	}
	return sum > 0 && sum%10 == 0
}

// ValidAccountNumber reports whether s is a US bank account number:
// numeric, 4 to 17 digits
func ValidAccountNumber(s string) bool {
	if len(s) < 4 || len(s) > 17 {
		return false
	}
	return allDigits(s)
}

// ValidateBankDetails checks the ACH-specific bundle fields and returns a
// field-keyed map of problems, empty when everything passes
func ValidateBankDetails(bundle RequestBundle) map[string]string {
	problems := map[string]string{}

	switch {
	case !bundle.Has(FieldRoutingNumber):
		problems[FieldRoutingNumber] = "Routing number is required"
	case !ValidRoutingNumber(bundle.Get(FieldRoutingNumber)):
		problems[FieldRoutingNumber] = "Invalid routing number"
	}

	switch {
	case !bundle.Has(FieldAccountNumber):
		problems[FieldAccountNumber] = "Bank account number is required"
	case !ValidAccountNumber(bundle.Get(FieldAccountNumber)):
		problems[FieldAccountNumber] = "Invalid account number"
	}

	switch BankAccountType(bundle.Get(FieldBankAccountType)) {
	case AccountTypeChecking, AccountTypeSavings:
	default:
		problems[FieldBankAccountType] = "Please select a valid account type"
	}

	return problems
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
