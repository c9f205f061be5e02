// internal/exchange/facade.go
package exchange

import (
	"context"

	"coinbase-cli/internal/domain"
)

// Client is the entry facade over an Exchange. It mints Account facades and
// owns the identity mapping from remote records to facade values for the
// duration of one command invocation. Facades are plain values: mutating
// operations return new facades, they never update an existing one.
type Client struct {
	ex Exchange
}

// NewClient wraps an Exchange implementation in the facade layer.
func NewClient(ex Exchange) *Client {
	return &Client{ex: ex}
}

// Accounts fetches all accounts and wraps each record, preserving the
// remote-provided order. Callers that need a particular order sort the
// result themselves.
func (c *Client) Accounts(ctx context.Context) ([]*Account, error) {
	records, err := c.ex.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]*Account, len(records))
	for i, record := range records {
		accounts[i] = &Account{Account: record, ex: c.ex}
	}
	return accounts, nil
}

// Account fetches a single account by its resource id.
func (c *Client) Account(ctx context.Context, id string) (*Account, error) {
	record, err := c.ex.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Account{Account: record, ex: c.ex}, nil
}

// PaymentMethods fetches all payment methods in remote-provided order.
func (c *Client) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return c.ex.ListPaymentMethods(ctx)
}

// PaymentMethod fetches a single payment method by its resource id.
func (c *Client) PaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	return c.ex.FindPaymentMethod(ctx, id)
}

// BuyPrice returns the current buy price for a currency pair like "BTC-EUR".
func (c *Client) BuyPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.ex.BuyPrice(ctx, pair)
}

// SellPrice returns the current sell price for a currency pair.
func (c *Client) SellPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.ex.SellPrice(ctx, pair)
}

// SpotPrice returns the current spot price for a currency pair.
func (c *Client) SpotPrice(ctx context.Context, pair string) (domain.Price, error) {
	return c.ex.SpotPrice(ctx, pair)
}

// ServerTime returns the exchange's current time.
func (c *Client) ServerTime(ctx context.Context) (domain.Time, error) {
	return c.ex.ServerTime(ctx)
}

// Account is the facade over one account record. It carries the Exchange it
// was fetched through so orders can be placed on it directly.
type Account struct {
	domain.Account

	ex Exchange
}

// Buy places a buy order funded by the given payment method. The returned
// Order references this account.
func (a *Account) Buy(ctx context.Context, req OrderRequest) (*Order, error) {
	record, err := a.ex.PlaceBuy(ctx, a.ID, req)
	if err != nil {
		return nil, err
	}
	return &Order{Order: record, account: a, ex: a.ex}, nil
}

// Sell places a sell order paying out to the given payment method.
func (a *Account) Sell(ctx context.Context, req OrderRequest) (*Order, error) {
	record, err := a.ex.PlaceSell(ctx, a.ID, req)
	if err != nil {
		return nil, err
	}
	return &Order{Order: record, account: a, ex: a.ex}, nil
}

// Withdraw places a withdrawal of fiat money to the given payment method.
func (a *Account) Withdraw(ctx context.Context, req WithdrawalRequest) (*Order, error) {
	record, err := a.ex.PlaceWithdrawal(ctx, a.ID, req)
	if err != nil {
		return nil, err
	}
	return &Order{Order: record, account: a, ex: a.ex}, nil
}

// Order is the facade over one order record. The back-reference to the
// owning account exists for display and for the commit call only; committing
// never propagates any mutation into the Account facade.
type Order struct {
	domain.Order

	account *Account
	ex      Exchange
}

// Account returns the account this order was placed on.
func (o *Order) Account() *Account {
	return o.account
}

// Commit finalizes an uncommitted order and returns the resulting Order as a
// new facade; the receiver is left untouched. The exchange rejects commits
// of orders that are not in "created" status, and that error is returned
// unchanged.
func (o *Order) Commit(ctx context.Context) (*Order, error) {
	record, err := o.ex.CommitOrder(ctx, o.account.ID, o.Kind, o.Order.ID)
	if err != nil {
		return nil, err
	}
	return &Order{Order: record, account: o.account, ex: o.ex}, nil
}
