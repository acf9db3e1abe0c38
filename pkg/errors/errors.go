package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of error for handling
type ErrorCategory string

const (
	CategoryApproved        ErrorCategory = "approved"
	CategoryDeclined        ErrorCategory = "declined"
	CategoryGatewayRejected ErrorCategory = "gateway_rejected"
	CategoryVaultFailed     ErrorCategory = "vault_failed"
	CategorySystemError     ErrorCategory = "system_error"
	CategoryNetworkError    ErrorCategory = "network_error"
	CategoryInvalidRequest  ErrorCategory = "invalid_request"
)

// ProcessorError represents a payment processing error with gateway context.
// Code carries the gateway's processor response code when one was produced.
type ProcessorError struct {
	Code           string
	Message        string
	GatewayMessage string
	IsRetriable    bool
	Category       ErrorCategory
}

func (e *ProcessorError) Error() string {
	if e.GatewayMessage != "" {
		return fmt.Sprintf("%s: %s (gateway: %s)", e.Code, e.Message, e.GatewayMessage)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// NewProcessorError creates a new processor error
func NewProcessorError(code, message string, category ErrorCategory, retriable bool) *ProcessorError {
	return &ProcessorError{
		Code:        code,
		Message:     message,
		Category:    category,
		IsRetriable: retriable,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// MissingFieldError reports a required field that was absent from the input
func MissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("missing required field: %s", field),
	}
}

// ConfigError joins per-credential messages into one human-readable error
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return strings.Join(e.Problems, "; ")
}
