package braintree

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

type paymentMethodOptions struct {
	VerificationMerchantAccountID string `xml:"verification-merchant-account-id,omitempty"`
}

type paymentMethodRequest struct {
	XMLName            xml.Name              `xml:"payment-method"`
	CustomerID         string                `xml:"customer-id"`
	PaymentMethodNonce string                `xml:"payment-method-nonce"`
	Options            *paymentMethodOptions `xml:"options,omitempty"`
}

// VaultPaymentMethod exchanges a client-side nonce for a reusable token.
// The reply's root element varies by instrument type (us-bank-account,
// credit-card), so the token is pulled out of the document by name.
func (g *Gateway) VaultPaymentMethod(ctx context.Context, req ports.VaultRequest) (*ports.VaultResult, error) {
	wire := &paymentMethodRequest{
		CustomerID:         req.CustomerID,
		PaymentMethodNonce: req.PaymentMethodNonce,
	}
	if req.VerificationMerchantAccountID != "" {
		wire.Options = &paymentMethodOptions{
			VerificationMerchantAccountID: req.VerificationMerchantAccountID,
		}
	}

	g.logger.Info("Vaulting payment method",
		ports.String("customer_id", req.CustomerID),
	)

	resp, err := g.post(ctx, "/payment_methods", wire)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		err := parseGatewayError(resp)
		if perr, ok := err.(*pkgerrors.ProcessorError); ok {
			perr.Category = pkgerrors.CategoryVaultFailed
		}
		return nil, err
	}

	token := firstElementText(resp.Body, "token")
	if token == "" {
		return nil, pkgerrors.NewProcessorError("GATEWAY_ERROR",
			"vault response carried no payment method token",
			pkgerrors.CategoryVaultFailed, false)
	}

	return &ports.VaultResult{Token: token}, nil
}

// firstElementText returns the text of the first element with the given
// local name, anywhere in the document
func firstElementText(body []byte, name string) string {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	var inTarget bool
	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}

		switch t := token.(type) {
		case xml.StartElement:
			inTarget = t.Name.Local == name
		case xml.EndElement:
			inTarget = false
		case xml.CharData:
			if inTarget {
				if text := strings.TrimSpace(string(t)); text != "" {
					return text
				}
			}
		}
	}
}
