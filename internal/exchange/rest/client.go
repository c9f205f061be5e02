// internal/exchange/rest/client.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.coinbase.com"

// Config holds the connection parameters for the REST client.
type Config struct {
	BaseURL    string // Defaults to DefaultBaseURL when empty
	APIKey     string
	APISecret  string
	APIVersion string // Sent as the CB-VERSION header
}

// Client implements exchange.Exchange against the v2 REST API. Every method
// is a single signed request; errors reported by the remote error envelope
// are surfaced with the remote message intact.
type Client struct {
	config     Config
	signer     *Signer
	httpClient *http.Client
	now        func() time.Time
}

var _ exchange.Exchange = (*Client)(nil)

// NewClient creates a REST client for the given credentials.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: config,
		signer: NewSigner(config.APIKey, config.APISecret),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// ListAccounts returns all accounts for the current user.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var envelope accountListEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/accounts", nil, &envelope); err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, len(envelope.Data))
	for i, wire := range envelope.Data {
		accounts[i] = wire.toDomain()
	}
	return accounts, nil
}

// FindAccount returns one account by resource id, or "primary".
func (c *Client) FindAccount(ctx context.Context, id string) (domain.Account, error) {
	var envelope accountEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/accounts/"+id, nil, &envelope); err != nil {
		return domain.Account{}, err
	}
	return envelope.Data.toDomain(), nil
}

// ListPaymentMethods returns all payment methods for the current user.
func (c *Client) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var envelope paymentMethodListEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/payment-methods", nil, &envelope); err != nil {
		return nil, err
	}
	methods := make([]domain.PaymentMethod, len(envelope.Data))
	for i, wire := range envelope.Data {
		methods[i] = wire.toDomain()
	}
	return methods, nil
}

// FindPaymentMethod returns one payment method by resource id.
func (c *Client) FindPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	var envelope paymentMethodEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/payment-methods/"+id, nil, &envelope); err != nil {
		return domain.PaymentMethod{}, err
	}
	return envelope.Data.toDomain(), nil
}

// BuyPrice returns the total price to buy one unit of the base currency.
func (c *Client) BuyPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.price(ctx, pair, "buy")
}

// SellPrice returns the total price to sell one unit of the base currency.
func (c *Client) SellPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.price(ctx, pair, "sell")
}

// SpotPrice returns the current market price without fees.
func (c *Client) SpotPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.price(ctx, pair, "spot")
}

func (c *Client) price(ctx context.Context, pair, side string) (domain.Price, error) {
	var envelope priceEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/prices/"+pair+"/"+side, nil, &envelope); err != nil {
		return domain.Price{}, err
	}
	return domain.Price(envelope.Data), nil
}

// ServerTime returns the API server time.
func (c *Client) ServerTime(ctx context.Context) (domain.Time, error) {
	var envelope timeEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/time", nil, &envelope); err != nil {
		return domain.Time{}, err
	}
	return domain.Time(envelope.Data), nil
}

// PlaceBuy creates a buy order on the account.
func (c *Client) PlaceBuy(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	return c.placeOrder(ctx, "/v2/accounts/"+accountID+"/buys", domain.OrderKindBuy, req)
}

// PlaceSell creates a sell order on the account.
func (c *Client) PlaceSell(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	return c.placeOrder(ctx, "/v2/accounts/"+accountID+"/sells", domain.OrderKindSell, req)
}

// PlaceWithdrawal creates a withdrawal on the account.
func (c *Client) PlaceWithdrawal(ctx context.Context, accountID string, req exchange.WithdrawalRequest) (domain.Order, error) {
	var envelope orderEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/accounts/"+accountID+"/withdrawals", req, &envelope); err != nil {
		return domain.Order{}, err
	}
	return envelope.Data.toDomain(domain.OrderKindWithdrawal), nil
}

func (c *Client) placeOrder(ctx context.Context, path string, kind domain.OrderKind, req exchange.OrderRequest) (domain.Order, error) {
	var envelope orderEnvelope
	if err := c.do(ctx, http.MethodPost, path, req, &envelope); err != nil {
		return domain.Order{}, err
	}
	return envelope.Data.toDomain(kind), nil
}

// CommitOrder finalizes an uncommitted order.
func (c *Client) CommitOrder(ctx context.Context, accountID string, kind domain.OrderKind, orderID string) (domain.Order, error) {
	path := fmt.Sprintf("/v2/accounts/%s/%ss/%s/commit", accountID, kind, orderID)
	if kind == domain.OrderKindWithdrawal {
		path = fmt.Sprintf("/v2/accounts/%s/withdrawals/%s/commit", accountID, orderID)
	}
	var envelope orderEnvelope
	if err := c.do(ctx, http.MethodPost, path, nil, &envelope); err != nil {
		return domain.Order{}, err
	}
	return envelope.Data.toDomain(kind), nil
}

// do performs one signed request and decodes the response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIVersion != "" {
		req.Header.Set("CB-VERSION", c.config.APIVersion)
	}
	for key, value := range c.signer.Headers(c.now().Unix(), method, path, string(payload)) {
		req.Header.Set(key, value)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	slog.Debug("exchange request", "method", method, "path", path, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return remoteError(res.StatusCode, resBody)
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// remoteError extracts the remote message from the error envelope, falling
// back to the raw status and body when the envelope does not parse.
func remoteError(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return fmt.Errorf("%s", envelope.Errors[0].Message)
	}
	return fmt.Errorf("got http response code %d and body %s", status, body)
}
