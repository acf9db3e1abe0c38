package braintree

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	"github.com/cividesk/braintree-bridge/pkg/resilience"
	"github.com/cividesk/braintree-bridge/test/mocks"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
)

func testGateway(client ports.HTTPClient) *Gateway {
	creds := models.ProcessorCredentials{
		MerchantID: "merchant123",
		PublicKey:  "pub_key",
		PrivateKey: "priv_key",
	}
	g := NewGateway(DefaultConfig("sandbox", creds), client, mocks.NewMockLogger())
	g.backoff = &resilience.FixedBackoff{Delay: time.Millisecond}
	return g
}

func xmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestSale_Success(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<transaction>
  <id>txn123</id>
  <type>sale</type>
  <status>submitted_for_settlement</status>
  <amount>25.00</amount>
  <processor-response-code>1000</processor-response-code>
  <processor-response-text>Approved</processor-response-text>
</transaction>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(201, reply), nil
	})
	g := testGateway(client)

	result, err := g.Sale(context.Background(), ports.SaleRequest{
		Amount: decimal.RequireFromString("25"),
		CreditCard: &ports.CardDetails{
			Number:          "4111111111111111",
			ExpirationMonth: "12",
			ExpirationYear:  "2030",
			CVV:             "123",
		},
		SubmitForSettlement: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "txn123", result.TransactionID)
	assert.Equal(t, "25.00", result.Amount)
	assert.Equal(t, "submitted_for_settlement", result.Status)

	require.Len(t, client.Calls, 1)
	req := client.Calls[0]
	assert.Equal(t, "/merchants/merchant123/transactions", req.URL.Path)
	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "pub_key", user)
	assert.Equal(t, "priv_key", pass)

	body, _ := io.ReadAll(req.Body)
	assert.Contains(t, string(body), "<type>sale</type>")
	assert.Contains(t, string(body), "<amount>25.00</amount>")
	assert.Contains(t, string(body), `<submit-for-settlement type="boolean">true</submit-for-settlement>`)
}

func TestSale_ProcessorDecline(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<api-error-response>
  <message>Insufficient Funds</message>
  <transaction>
    <id>txn999</id>
    <status>processor_declined</status>
    <amount>25.00</amount>
    <processor-response-code>2001</processor-response-code>
    <processor-response-text>Insufficient Funds</processor-response-text>
  </transaction>
</api-error-response>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(422, reply), nil
	})
	g := testGateway(client)

	_, err := g.Sale(context.Background(), ports.SaleRequest{
		Amount:              decimal.RequireFromString("25"),
		PaymentMethodToken:  "tok123",
		SubmitForSettlement: true,
	})

	require.Error(t, err)
	var perr *pkgerrors.ProcessorError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "2001", perr.Code)
	assert.Equal(t, "Insufficient Funds", perr.Message)
	assert.Equal(t, pkgerrors.CategoryDeclined, perr.Category)
	assert.True(t, perr.IsRetriable)
}

func TestSale_ValidationFailureConcatenatesMessages(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<api-error-response>
  <message>Amount is required.</message>
  <errors>
    <transaction>
      <errors type="array">
        <error>
          <code>81503</code>
          <attribute type="symbol">amount</attribute>
          <message>Amount is required.</message>
        </error>
        <error>
          <code>91517</code>
          <attribute type="symbol">base</attribute>
          <message>Credit card type is not accepted by this merchant account.</message>
        </error>
      </errors>
    </transaction>
  </errors>
</api-error-response>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(422, reply), nil
	})
	g := testGateway(client)

	_, err := g.Sale(context.Background(), ports.SaleRequest{
		Amount:              decimal.RequireFromString("25"),
		PaymentMethodToken:  "tok123",
		SubmitForSettlement: true,
	})

	require.Error(t, err)
	var perr *pkgerrors.ProcessorError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "GATEWAY_VALIDATION", perr.Code)
	assert.Equal(t,
		"Amount is required. Credit card type is not accepted by this merchant account.",
		perr.Message)
}

func TestSale_RetriesTransportErrors(t *testing.T) {
	reply := `<transaction><id>txn42</id><status>submitted_for_settlement</status><amount>10.00</amount></transaction>`

	attempts := 0
	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection reset")
		}
		return xmlResponse(201, reply), nil
	})
	g := testGateway(client)

	result, err := g.Sale(context.Background(), ports.SaleRequest{
		Amount:              decimal.RequireFromString("10"),
		PaymentMethodToken:  "tok123",
		SubmitForSettlement: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "txn42", result.TransactionID)
	assert.Equal(t, 3, attempts)
}

func TestSale_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	g := testGateway(client)
	g.config.MaxRetries = 0

	req := ports.SaleRequest{
		Amount:              decimal.RequireFromString("10"),
		PaymentMethodToken:  "tok123",
		SubmitForSettlement: true,
	}
	for i := 0; i < 5; i++ {
		_, err := g.Sale(context.Background(), req)
		require.Error(t, err)
	}

	assert.Equal(t, StateOpen, g.breaker.State())
	_, err := g.Sale(context.Background(), req)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestVaultPaymentMethod_Success(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<us-bank-account>
  <token>ch6byss</token>
  <last-4>1234</last-4>
</us-bank-account>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(201, reply), nil
	})
	g := testGateway(client)

	result, err := g.VaultPaymentMethod(context.Background(), ports.VaultRequest{
		CustomerID:         "contact42",
		PaymentMethodNonce: "nonce-from-client",
	})

	require.NoError(t, err)
	assert.Equal(t, "ch6byss", result.Token)

	require.Len(t, client.Calls, 1)
	assert.Equal(t, "/merchants/merchant123/payment_methods", client.Calls[0].URL.Path)
	body, _ := io.ReadAll(client.Calls[0].Body)
	assert.Contains(t, string(body), "<customer-id>contact42</customer-id>")
	assert.Contains(t, string(body), "<payment-method-nonce>nonce-from-client</payment-method-nonce>")
}

func TestVaultPaymentMethod_GatewayRejection(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<api-error-response>
  <message>Nonce is invalid.</message>
  <errors>
    <payment-method>
      <errors type="array">
        <error>
          <code>93107</code>
          <attribute type="symbol">payment_method_nonce</attribute>
          <message>Nonce is invalid.</message>
        </error>
      </errors>
    </payment-method>
  </errors>
</api-error-response>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(422, reply), nil
	})
	g := testGateway(client)

	_, err := g.VaultPaymentMethod(context.Background(), ports.VaultRequest{
		CustomerID:         "contact42",
		PaymentMethodNonce: "bad-nonce",
	})

	require.Error(t, err)
	var perr *pkgerrors.ProcessorError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pkgerrors.CategoryVaultFailed, perr.Category)
	assert.Equal(t, "Nonce is invalid.", perr.Message)
}

func TestGenerateClientToken(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<client-token>
  <value>eyJ2ZXJzaW9uIjoyfQ==</value>
</client-token>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(201, reply), nil
	})
	g := testGateway(client)

	token, err := g.GenerateClientToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "eyJ2ZXJzaW9uIjoyfQ==", token)

	require.Len(t, client.Calls, 1)
	assert.Equal(t, "/merchants/merchant123/client_token", client.Calls[0].URL.Path)
	body, _ := io.ReadAll(client.Calls[0].Body)
	assert.Contains(t, string(body), `<version type="integer">2</version>`)
	assert.NotContains(t, string(body), "merchant-account-id")
}

func TestGenerateClientToken_ScopedToSubMerchantAccount(t *testing.T) {
	reply := `<?xml version="1.0" encoding="UTF-8"?>
<client-token>
  <value>eyJ2ZXJzaW9uIjoyfQ==</value>
</client-token>`

	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(201, reply), nil
	})
	creds := models.ProcessorCredentials{
		MerchantID:        "merchant123",
		PublicKey:         "pub_key",
		PrivateKey:        "priv_key",
		MerchantAccountID: "submerchant",
	}
	g := NewGateway(DefaultConfig("sandbox", creds), client, mocks.NewMockLogger())

	_, err := g.GenerateClientToken(context.Background())

	require.NoError(t, err)
	require.Len(t, client.Calls, 1)
	body, _ := io.ReadAll(client.Calls[0].Body)
	assert.Contains(t, string(body), `<merchant-account-id>submerchant</merchant-account-id>`)
}

func TestGenerateClientToken_AuthenticationFailure(t *testing.T) {
	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return xmlResponse(401, ""), nil
	})
	g := testGateway(client)

	_, err := g.GenerateClientToken(context.Background())

	require.Error(t, err)
	var perr *pkgerrors.ProcessorError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "AUTHENTICATION", perr.Code)
	assert.True(t, strings.Contains(perr.Message, "credentials"))
}

func TestDefaultConfig_Environments(t *testing.T) {
	creds := models.ProcessorCredentials{MerchantID: "m"}

	sandbox := DefaultConfig("sandbox", creds)
	assert.Equal(t, "https://api.sandbox.braintreegateway.com", sandbox.BaseURL)

	production := DefaultConfig("production", creds)
	assert.Equal(t, "https://api.braintreegateway.com", production.BaseURL)
}
