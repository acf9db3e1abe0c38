package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessorError_Error(t *testing.T) {
	err := NewProcessorError("2001", "Insufficient Funds", CategoryDeclined, true)
	assert.Equal(t, "2001: Insufficient Funds", err.Error())

	err.GatewayMessage = "Processor declined"
	assert.Equal(t, "2001: Insufficient Funds (gateway: Processor declined)", err.Error())

	bare := &ProcessorError{Message: "something broke"}
	assert.Equal(t, "something broke", bare.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", "amount is not a valid number")
	assert.Equal(t, "validation error on field 'amount': amount is not a valid number", err.Error())
}

func TestMissingFieldError(t *testing.T) {
	err := MissingFieldError("billing_last_name")
	assert.Equal(t, "billing_last_name", err.Field)
	assert.Equal(t, "missing required field: billing_last_name", err.Message)
}

func TestConfigError_JoinsProblems(t *testing.T) {
	err := &ConfigError{Problems: []string{
		"Merchant Id is not set for this payment processor",
		"Public Key is not set for this payment processor",
	}}
	assert.Equal(t,
		"Merchant Id is not set for this payment processor; Public Key is not set for this payment processor",
		err.Error())
}
