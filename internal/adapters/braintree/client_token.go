package braintree

import (
	"context"
	"encoding/xml"
	"fmt"

	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

type wireInt struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type clientTokenRequest struct {
	XMLName           xml.Name `xml:"client-token"`
	Version           wireInt  `xml:"version"`
	MerchantAccountID string   `xml:"merchant-account-id,omitempty"`
}

type clientTokenReply struct {
	XMLName xml.Name `xml:"client-token"`
	Value   string   `xml:"value"`
}

// GenerateClientToken issues a one-time token the browser SDK uses to
// authorize client-side tokenization. Tokens are scoped to the configured
// sub-merchant account when one is set.
func (g *Gateway) GenerateClientToken(ctx context.Context) (string, error) {
	wire := &clientTokenRequest{
		Version:           wireInt{Type: "integer", Value: "2"},
		MerchantAccountID: g.config.Credentials.MerchantAccountID,
	}

	resp, err := g.post(ctx, "/client_token", wire)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", parseGatewayError(resp)
	}

	var reply clientTokenReply
	if err := xml.Unmarshal(resp.Body, &reply); err != nil {
		return "", pkgerrors.NewProcessorError("GATEWAY_ERROR",
			fmt.Sprintf("failed to decode client token response: %v", err),
			pkgerrors.CategorySystemError, false)
	}
	if reply.Value == "" {
		return "", pkgerrors.NewProcessorError("GATEWAY_ERROR",
			"gateway returned an empty client token",
			pkgerrors.CategorySystemError, false)
	}

	return reply.Value, nil
}
