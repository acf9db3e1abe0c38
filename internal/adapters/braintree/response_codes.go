package braintree

import (
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// ResponseCodeInfo describes one processor response code
type ResponseCodeInfo struct {
	Code        string
	Display     string
	IsApproved  bool
	IsDeclined  bool
	IsRetriable bool
	Category    pkgerrors.ErrorCategory
	UserMessage string
}

// Processor response codes for the 1000 (approved), 2000 (declined by the
// customer's bank), and 3000 (processor network) series
var responseCodes = map[string]ResponseCodeInfo{
	"1000": {
		Code:        "1000",
		Display:     "APPROVED",
		IsApproved:  true,
		Category:    pkgerrors.CategoryApproved,
		UserMessage: "Payment successful",
	},
	"2000": {
		Code:        "2000",
		Display:     "DO NOT HONOR",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The card was declined. Please contact your bank or use a different payment method.",
	},
	"2001": {
		Code:        "2001",
		Display:     "INSUFFICIENT FUNDS",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "Insufficient funds. Please use a different payment method.",
	},
	"2002": {
		Code:        "2002",
		Display:     "LIMIT EXCEEDED",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The card's activity limit was exceeded.",
	},
	"2004": {
		Code:        "2004",
		Display:     "EXPIRED CARD",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The card has expired. Please use a different payment method.",
	},
	"2005": {
		Code:        "2005",
		Display:     "INVALID NUMBER",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "Invalid card number. Please check your card details.",
	},
	"2010": {
		Code:        "2010",
		Display:     "CVV DECLINED",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "Incorrect security code. Please check the code on your card.",
	},
	"2038": {
		Code:        "2038",
		Display:     "PROCESSOR DECLINED",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The payment was declined by the processor.",
	},
	"2046": {
		Code:        "2046",
		Display:     "DECLINED",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The payment was declined. Please contact your bank.",
	},
	"3000": {
		Code:        "3000",
		Display:     "PROCESSOR NETWORK UNAVAILABLE",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryNetworkError,
		UserMessage: "The payment network is temporarily unavailable. Please try again.",
	},
}

// LookupResponseCode returns info for a processor response code. Unknown
// codes come back as a generic non-retriable decline.
func LookupResponseCode(code string) ResponseCodeInfo {
	if info, ok := responseCodes[code]; ok {
		return info
	}
	return ResponseCodeInfo{
		Code:        code,
		Display:     "DECLINED",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "The payment was declined.",
	}
}
