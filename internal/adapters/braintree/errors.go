package braintree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// apiErrorResponse is the envelope the gateway returns with a 422. The
// embedded transaction is only present when the processor itself declined;
// pure validation failures carry only the nested error tree.
type apiErrorResponse struct {
	XMLName     xml.Name          `xml:"api-error-response"`
	Message     string            `xml:"message"`
	Transaction *transactionReply `xml:"transaction"`
}

// parseGatewayError converts a non-2xx gateway reply into a typed error
func parseGatewayError(resp *wireResponse) error {
	switch resp.StatusCode {
	case 401:
		return pkgerrors.NewProcessorError("AUTHENTICATION",
			"gateway authentication failed, check processor credentials",
			pkgerrors.CategoryGatewayRejected, false)
	case 403:
		return pkgerrors.NewProcessorError("AUTHORIZATION",
			"gateway rejected the request as unauthorized",
			pkgerrors.CategoryGatewayRejected, false)
	case 404:
		return pkgerrors.NewProcessorError("NOT_FOUND",
			"gateway resource not found, check the merchant id",
			pkgerrors.CategoryGatewayRejected, false)
	case 422:
		return parseUnprocessable(resp.Body)
	default:
		return pkgerrors.NewProcessorError("GATEWAY_ERROR",
			fmt.Sprintf("unexpected gateway status %d", resp.StatusCode),
			pkgerrors.CategorySystemError, false)
	}
}

func parseUnprocessable(body []byte) error {
	var envelope apiErrorResponse
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return pkgerrors.NewProcessorError("GATEWAY_ERROR",
			fmt.Sprintf("failed to decode gateway error response: %v", err),
			pkgerrors.CategorySystemError, false)
	}

	// A decline reaches the processor and comes back with a response code;
	// a validation failure never leaves the gateway.
	if txn := envelope.Transaction; txn != nil && txn.ProcessorResponseCode != "" {
		info := LookupResponseCode(txn.ProcessorResponseCode)
		message := txn.ProcessorResponseText
		if message == "" {
			message = envelope.Message
		}
		perr := pkgerrors.NewProcessorError(txn.ProcessorResponseCode, message, info.Category, info.IsRetriable)
		perr.GatewayMessage = envelope.Message
		return perr
	}

	messages := deepAllMessages(body)
	message := strings.Join(messages, " ")
	if message == "" {
		message = envelope.Message
	}
	return pkgerrors.NewProcessorError("GATEWAY_VALIDATION", message,
		pkgerrors.CategoryGatewayRejected, false)
}

// deepAllMessages walks the whole error tree and collects every nested
// <error><message> text in document order
func deepAllMessages(body []byte) []string {
	var messages []string
	var stack []string

	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) >= 2 &&
				stack[len(stack)-1] == "message" &&
				stack[len(stack)-2] == "error" {
				if text := strings.TrimSpace(string(t)); text != "" {
					messages = append(messages, text)
				}
			}
		}
	}

	return messages
}
