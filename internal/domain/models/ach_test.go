package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRoutingNumber(t *testing.T) {
	tests := []struct {
		name    string
		routing string
		want    bool
	}{
		{"chase", "021000021", true},
		{"bank of america", "026009593", true},
		{"wells fargo", "121000248", true},
		{"bad checksum", "123456789", false},
		{"too short", "02100002", false},
		{"too long", "0210000211", false},
		{"letters", "02100002a", false},
		{"all zeros", "000000000", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRoutingNumber(tt.routing))
		})
	}
}

func TestValidAccountNumber(t *testing.T) {
	assert.True(t, ValidAccountNumber("1234"))
	assert.True(t, ValidAccountNumber("12345678901234567"))
	assert.False(t, ValidAccountNumber("123"))
	assert.False(t, ValidAccountNumber("123456789012345678"))
	assert.False(t, ValidAccountNumber("12a4"))
	assert.False(t, ValidAccountNumber(""))
}

func TestValidateBankDetails(t *testing.T) {
	bundle := RequestBundle{
		FieldRoutingNumber:   "021000021",
		FieldAccountNumber:   "12345678",
		FieldBankAccountType: "checking",
	}
	assert.Empty(t, ValidateBankDetails(bundle))

	bad := RequestBundle{
		FieldRoutingNumber:   "123456789",
		FieldAccountNumber:   "12",
		FieldBankAccountType: "offshore",
	}
	problems := ValidateBankDetails(bad)
	assert.Equal(t, "Invalid routing number", problems[FieldRoutingNumber])
	assert.Equal(t, "Invalid account number", problems[FieldAccountNumber])
	assert.Equal(t, "Please select a valid account type", problems[FieldBankAccountType])

	missing := RequestBundle{FieldBankAccountType: "savings"}
	problems = ValidateBankDetails(missing)
	assert.Equal(t, "Routing number is required", problems[FieldRoutingNumber])
	assert.Equal(t, "Bank account number is required", problems[FieldAccountNumber])
}
