package braintree

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

// The gateway wants typed scalars as attributed elements,
// e.g. <submit-for-settlement type="boolean">true</submit-for-settlement>
type wireBool struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

func newWireBool(v bool) wireBool {
	return wireBool{Type: "boolean", Value: strconv.FormatBool(v)}
}

type creditCard struct {
	Number          string `xml:"number"`
	ExpirationMonth string `xml:"expiration-month"`
	ExpirationYear  string `xml:"expiration-year"`
	CVV             string `xml:"cvv,omitempty"`
}

type customer struct {
	FirstName string `xml:"first-name,omitempty"`
	LastName  string `xml:"last-name,omitempty"`
	Email     string `xml:"email,omitempty"`
}

type address struct {
	FirstName         string `xml:"first-name,omitempty"`
	LastName          string `xml:"last-name,omitempty"`
	StreetAddress     string `xml:"street-address,omitempty"`
	Locality          string `xml:"locality,omitempty"`
	Region            string `xml:"region,omitempty"`
	PostalCode        string `xml:"postal-code,omitempty"`
	CountryCodeAlpha2 string `xml:"country-code-alpha2,omitempty"`
}

type threeDSecureOptions struct {
	Required wireBool `xml:"required"`
}

type transactionOptions struct {
	SubmitForSettlement wireBool             `xml:"submit-for-settlement"`
	ThreeDSecure        *threeDSecureOptions `xml:"three-d-secure,omitempty"`
}

type transactionRequest struct {
	XMLName            xml.Name            `xml:"transaction"`
	Type               string              `xml:"type"`
	Amount             string              `xml:"amount"`
	MerchantAccountID  string              `xml:"merchant-account-id,omitempty"`
	CreditCard         *creditCard         `xml:"credit-card,omitempty"`
	PaymentMethodToken string              `xml:"payment-method-token,omitempty"`
	CustomerID         string              `xml:"customer-id,omitempty"`
	Customer           *customer           `xml:"customer,omitempty"`
	Billing            *address            `xml:"billing,omitempty"`
	Options            *transactionOptions `xml:"options"`
}

// transactionReply is the gateway's transaction document, returned directly
// on success and embedded in the error envelope on a processor decline
type transactionReply struct {
	ID                    string `xml:"id"`
	Type                  string `xml:"type"`
	Status                string `xml:"status"`
	Amount                string `xml:"amount"`
	ProcessorResponseCode string `xml:"processor-response-code"`
	ProcessorResponseText string `xml:"processor-response-text"`
}

// Sale performs a transaction sale
func (g *Gateway) Sale(ctx context.Context, req ports.SaleRequest) (*ports.SaleResult, error) {
	wire := &transactionRequest{
		Type:               "sale",
		Amount:             req.Amount.StringFixed(2),
		MerchantAccountID:  req.MerchantAccountID,
		PaymentMethodToken: req.PaymentMethodToken,
		CustomerID:         req.CustomerID,
		Options: &transactionOptions{
			SubmitForSettlement: newWireBool(req.SubmitForSettlement),
		},
	}
	if req.CreditCard != nil {
		wire.CreditCard = &creditCard{
			Number:          req.CreditCard.Number,
			ExpirationMonth: req.CreditCard.ExpirationMonth,
			ExpirationYear:  req.CreditCard.ExpirationYear,
			CVV:             req.CreditCard.CVV,
		}
	}
	if req.Customer != nil {
		wire.Customer = &customer{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
		}
	}
	if req.Billing != nil {
		wire.Billing = &address{
			FirstName:         req.Billing.FirstName,
			LastName:          req.Billing.LastName,
			StreetAddress:     req.Billing.StreetAddress,
			Locality:          req.Billing.Locality,
			Region:            req.Billing.Region,
			PostalCode:        req.Billing.PostalCode,
			CountryCodeAlpha2: req.Billing.CountryCodeAlpha2,
		}
	}
	if req.ThreeDSecureRequired != nil {
		wire.Options.ThreeDSecure = &threeDSecureOptions{
			Required: newWireBool(*req.ThreeDSecureRequired),
		}
	}

	g.logger.Info("Processing gateway sale",
		ports.String("amount", wire.Amount),
		ports.Bool("vaulted", req.PaymentMethodToken != ""),
	)

	resp, err := g.post(ctx, "/transactions", wire)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, parseGatewayError(resp)
	}

	var reply transactionReply
	if err := xml.Unmarshal(resp.Body, &reply); err != nil {
		return nil, pkgerrors.NewProcessorError("GATEWAY_ERROR",
			fmt.Sprintf("failed to decode sale response: %v", err),
			pkgerrors.CategorySystemError, false)
	}

	g.logger.Info("Gateway sale completed",
		ports.String("transaction_id", reply.ID),
		ports.String("status", reply.Status),
	)

	return &ports.SaleResult{
		TransactionID:         reply.ID,
		Amount:                reply.Amount,
		Status:                reply.Status,
		ProcessorResponseCode: reply.ProcessorResponseCode,
		ProcessorResponseText: reply.ProcessorResponseText,
	}, nil
}
