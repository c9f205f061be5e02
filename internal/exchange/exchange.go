// internal/exchange/exchange.go
package exchange

import (
	"context"

	"coinbase-cli/internal/domain"
)

// OrderRequest carries the parameters for placing a buy or sell order.
// With Commit false the exchange creates the order in "created" status and
// waits for an explicit commit; with Quote true it returns a non-committable
// price preview instead.
type OrderRequest struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	Commit        bool   `json:"commit"`
	Quote         bool   `json:"quote,omitempty"`
}

// WithdrawalRequest carries the parameters for withdrawing fiat money to a
// payment method. Withdrawals have no quote option.
type WithdrawalRequest struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	Commit        bool   `json:"commit"`
}

// Exchange defines the remote API boundary. Every method performs exactly
// one request against the remote side and returns its result or its error
// unchanged; there is no caching, no deduplication and no retrying at this
// layer. List results come back in remote-provided order.
type Exchange interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	FindAccount(ctx context.Context, id string) (domain.Account, error)

	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	FindPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error)

	BuyPrice(ctx context.Context, pair string) (domain.Price, error)
	SellPrice(ctx context.Context, pair string) (domain.Price, error)
	SpotPrice(ctx context.Context, pair string) (domain.Price, error)
	ServerTime(ctx context.Context) (domain.Time, error)

	PlaceBuy(ctx context.Context, accountID string, req OrderRequest) (domain.Order, error)
	PlaceSell(ctx context.Context, accountID string, req OrderRequest) (domain.Order, error)
	PlaceWithdrawal(ctx context.Context, accountID string, req WithdrawalRequest) (domain.Order, error)

	// CommitOrder finalizes an uncommitted order. The exchange owns the state
	// machine: committing anything other than a "created" order fails there.
	CommitOrder(ctx context.Context, accountID string, kind domain.OrderKind, orderID string) (domain.Order, error)
}
